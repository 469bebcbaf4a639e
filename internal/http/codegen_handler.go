package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/service"
)

// CodeGenHandler mantiene dependencias para los endpoints de codigo.
type CodeGenHandler struct {
	logger      *zap.Logger
	codegenServ *service.CodeGenService
}

func NewCodeGenHandler(logger *zap.Logger, codegenServ *service.CodeGenService) *CodeGenHandler {
	return &CodeGenHandler{
		logger:      logger,
		codegenServ: codegenServ,
	}
}

// GenerateCode maneja POST /generate-code.
func (h *CodeGenHandler) GenerateCode(c *gin.Context) {
	var req struct {
		Prompt  string `json:"prompt" binding:"required"`
		Context *struct {
			Board   string   `json:"board"`
			Sensors []string `json:"sensors"`
		} `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate code request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'prompt'"})
		return
	}

	var codeCtx *service.CodeContext
	if req.Context != nil {
		codeCtx = &service.CodeContext{
			Board:   req.Context.Board,
			Sensors: req.Context.Sensors,
		}
	}

	code := h.codegenServ.Generate(c.Request.Context(), req.Prompt, codeCtx)
	c.JSON(http.StatusOK, gin.H{"code": code})
}

// DeviceTemplate maneja GET /templates/device/:board/:sensor.
func (h *CodeGenHandler) DeviceTemplate(c *gin.Context) {
	board := c.Param("board")
	sensor := c.Param("sensor")

	code, ok := service.DeviceTemplate(board, sensor)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}
