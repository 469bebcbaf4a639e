package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/service"
)

// RecommendHandler mantiene dependencias para el endpoint de recomendacion.
type RecommendHandler struct {
	logger        *zap.Logger
	recommendServ *service.RecommendService
}

func NewRecommendHandler(logger *zap.Logger, recommendServ *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{
		logger:        logger,
		recommendServ: recommendServ,
	}
}

// Recommend maneja POST /recommend.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req struct {
		Budget         *float64          `json:"budget"`
		UseCase        *string           `json:"use_case"`
		PreferredSpecs map[string]string `json:"preferred_specs"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommend request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Budget == nil || req.UseCase == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'budget' or 'use_case'"})
		return
	}

	products := h.recommendServ.Recommend(*req.Budget, *req.UseCase, req.PreferredSpecs)
	c.JSON(http.StatusOK, gin.H{"products": products})
}
