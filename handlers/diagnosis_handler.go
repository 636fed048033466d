package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawpick-backend/models"
	"lawpick-backend/service"
)

// DiagnosisHandler handles POST /api/diagnosis
type DiagnosisHandler struct {
	diagnosisService *service.DiagnosisService
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(diagnosisService *service.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{diagnosisService: diagnosisService}
}

// DiagnosisRequest holds the ordered questionnaire answers
type DiagnosisRequest struct {
	Answers []string `json:"answers"`
}

// Diagnose handles POST /api/diagnosis
func (h *DiagnosisHandler) Diagnose(c *gin.Context) {
	var req DiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	result := h.diagnosisService.Diagnose(c.Request.Context(), models.DiagnosisAnswers(req.Answers))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Result,
		"meta":    gin.H{"source": result.Source},
	})
}
