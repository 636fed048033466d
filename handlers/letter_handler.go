package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lawpick-backend/logger"
	"lawpick-backend/models"
	"lawpick-backend/service"
)

// LetterHandler handles demand letter drafting and archived downloads
type LetterHandler struct {
	letterService *service.LetterService
	logger        logger.Logger
}

// NewLetterHandler creates a new letter handler
func NewLetterHandler(letterService *service.LetterService, log logger.Logger) *LetterHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &LetterHandler{letterService: letterService, logger: log.Named("letters")}
}

// LetterRequest is the body of POST /api/legal-letter
type LetterRequest struct {
	NarrativeRequest
	Archive bool `json:"archive"`
}

// LetterResponse is the drafted letter plus the archived document ID
type LetterResponse struct {
	models.DemandLetter
	DocumentID string `json:"documentId,omitempty"`
}

// ComposeLetter handles POST /api/legal-letter
func (h *LetterHandler) ComposeLetter(c *gin.Context) {
	var req LetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	result, err := h.letterService.Compose(c.Request.Context(), service.ComposeLetterRequest{
		Narrative: req.narrative(),
		Archive:   req.Archive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNarrativeRequired):
			respondError(c, http.StatusBadRequest, CodeInvalidRequest, "내용이 필요합니다.")
		case errors.Is(err, service.ErrArchiveDisabled):
			respondError(c, http.StatusServiceUnavailable, CodeArchiveDisabled, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, CodeArchiveFailed, "Failed to archive letter")
		}
		return
	}

	resp := LetterResponse{DemandLetter: result.Letter}
	if result.Document != nil {
		resp.DocumentID = result.Document.ID.String()
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    resp,
		"meta":    gin.H{"source": result.Source},
	})
}

// DownloadLetter handles GET /api/letters/:id/file
func (h *LetterHandler) DownloadLetter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidID, "Invalid letter ID format")
		return
	}

	result, err := h.letterService.GetDocument(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArchiveDisabled):
			respondError(c, http.StatusServiceUnavailable, CodeArchiveDisabled, err.Error())
		case errors.Is(err, service.ErrDocumentNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "Letter not found")
		default:
			h.logger.Error("failed to open archived letter", logger.String("id", id.String()), logger.Err(err))
			respondError(c, http.StatusInternalServerError, CodeDownloadFailed, "Failed to retrieve letter")
		}
		return
	}
	defer result.Content.Close()

	doc := result.Document
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s",
		doc.Filename, url.PathEscape(doc.Filename)))
	c.DataFromReader(http.StatusOK, doc.Size, doc.MimeType, result.Content, nil)
}
