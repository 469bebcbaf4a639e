package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/service"
)

// AgentHandler expone los agentes stub como endpoints independientes.
type AgentHandler struct {
	logger *zap.Logger
}

func NewAgentHandler(logger *zap.Logger) *AgentHandler {
	return &AgentHandler{logger: logger}
}

type agentRequest struct {
	Task       string         `json:"task" binding:"required"`
	Parameters map[string]any `json:"parameters"`
}

// Tutor maneja POST /tutor.
func (h *AgentHandler) Tutor(c *gin.Context) {
	var req agentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid tutor request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"response": service.TutorAgentResponse(req.Task, req.Parameters),
	})
}

// Resume maneja POST /resume.
func (h *AgentHandler) Resume(c *gin.Context) {
	var req agentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid resume request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"resume_response": service.ResumeAgentResponse(req.Task, req.Parameters),
	})
}

// Startup maneja POST /startup.
func (h *AgentHandler) Startup(c *gin.Context) {
	var req agentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid startup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"startup_advice": service.StartupAgentResponse(req.Task, req.Parameters),
	})
}
