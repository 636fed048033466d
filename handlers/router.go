package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawpick-backend/logger"
	"lawpick-backend/metrics"
	"lawpick-backend/service"
)

// RouterConfig holds everything the router serves
type RouterConfig struct {
	Logger           logger.Logger
	Metrics          *metrics.Metrics
	AnalysisService  *service.AnalysisService
	LetterService    *service.LetterService
	DiagnosisService *service.DiagnosisService
	ChatService      *service.ChatService
}

// NewRouter builds the Gin engine with middleware and every route
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(log.Named("http")))
	if cfg.Metrics != nil {
		r.Use(Metrics(cfg.Metrics))
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		respondData(c, http.StatusOK, gin.H{"status": "ok"})
	})

	analysisHandler := NewAnalysisHandler(cfg.AnalysisService)
	letterHandler := NewLetterHandler(cfg.LetterService, log)
	diagnosisHandler := NewDiagnosisHandler(cfg.DiagnosisService)
	chatHandler := NewChatHandler(cfg.ChatService)

	api := r.Group("/api")
	{
		api.POST("/analyze", analysisHandler.Analyze)

		api.POST("/legal-letter", letterHandler.ComposeLetter)
		api.GET("/letters/:id/file", letterHandler.DownloadLetter)

		api.POST("/diagnosis", diagnosisHandler.Diagnose)

		api.POST("/chat", chatHandler.Chat)
	}

	return r
}
