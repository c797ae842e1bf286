package handlers

import (
	"errors"
	"net/http"

	"legalresearch-backend/models"
	"legalresearch-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RootMessage is the plain text sanity response served on GET /
const RootMessage = "Legal Research API is running. Use /api/research"

// ResearchHandler handles HTTP requests for legal research
type ResearchHandler struct {
	researchService *service.ResearchService
	logger          *zap.Logger
}

// NewResearchHandler creates a new research handler
func NewResearchHandler(researchService *service.ResearchService, logger *zap.Logger) *ResearchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResearchHandler{
		researchService: researchService,
		logger:          logger,
	}
}

// ResearchQueryParams represents the query string of a research request.
// Both parameters are optional; an empty value counts as absent.
type ResearchQueryParams struct {
	Jurisdiction string `form:"jurisdiction" binding:"max=256"`
	CaseType     string `form:"case_type" binding:"max=256"`
}

// Research handles GET /api/research
func (h *ResearchHandler) Research(c *gin.Context) {
	var params ResearchQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	serviceReq := service.ResearchRequest{
		Query: models.NewResearchQuery(params.Jurisdiction, params.CaseType),
	}

	result, err := h.researchService.Research(c.Request.Context(), serviceReq)
	if err != nil {
		h.logger.Error("Research query failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		if errors.Is(err, service.ErrCorpusNotSet) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CORPUS_UNAVAILABLE",
					"message": "Reference corpus is not loaded",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RESEARCH_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	if result.StatutesFellBack || result.CasesFellBack {
		h.logger.Info("Filter under-matched, serving unfiltered records",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("jurisdiction", params.Jurisdiction),
			zap.String("case_type", params.CaseType),
			zap.Bool("statutes_fallback", result.StatutesFellBack),
			zap.Bool("cases_fallback", result.CasesFellBack),
		)
	}

	c.JSON(http.StatusOK, result.Result)
}

// Root handles GET /
func Root(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
