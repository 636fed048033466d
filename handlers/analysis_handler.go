package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawpick-backend/models"
	"lawpick-backend/service"
)

// AnalysisHandler handles POST /api/analyze
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// NarrativeRequest is the request body shared by analysis and letters
type NarrativeRequest struct {
	Content       string `json:"content"`
	SenderName    string `json:"senderName"`
	RecipientName string `json:"recipientName"`
}

func (r NarrativeRequest) narrative() models.CaseNarrative {
	return models.CaseNarrative{
		Content:       r.Content,
		SenderName:    r.SenderName,
		RecipientName: r.RecipientName,
	}
}

// Analyze handles POST /api/analyze. Empty or non-legal content is not a
// request error: it yields the zero-score verdict.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req NarrativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	result := h.analysisService.Analyze(c.Request.Context(), req.narrative())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Verdict,
		"meta": gin.H{
			"source":   result.Source,
			"category": result.Analysis.Classification.Category,
			"subType":  result.Analysis.Classification.SubType,
		},
	})
}
