package handlers

import (
	"github.com/gin-gonic/gin"
)

// Error codes of the response envelope
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidID       = "INVALID_ID"
	CodeNotFound        = "NOT_FOUND"
	CodeArchiveDisabled = "ARCHIVE_DISABLED"
	CodeArchiveFailed   = "ARCHIVE_FAILED"
	CodeDownloadFailed  = "DOWNLOAD_FAILED"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}
