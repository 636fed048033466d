package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"lawpick-backend/classifier"
	"lawpick-backend/llm"
	"lawpick-backend/logger"
	"lawpick-backend/metrics"
	"lawpick-backend/models"
	"lawpick-backend/repository"
	"lawpick-backend/storage"
)

var (
	ErrNarrativeRequired = errors.New("narrative content is required")
	ErrArchiveDisabled   = errors.New("letter archive is not configured")
	ErrArchiveFailed     = errors.New("failed to archive letter")
	ErrDocumentNotFound  = errors.New("letter document not found")
)

// archivedFilename is the download name of every archived letter
const archivedFilename = "demand_letter.txt"

// LetterStore persists metadata of archived letters
type LetterStore interface {
	Create(ctx context.Context, doc *models.LetterDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LetterDocument, error)
}

// LetterService drafts demand letters and optionally archives them
type LetterService struct {
	pipeline
	storage storage.Storage
	store   LetterStore
}

// LetterServiceOption is a functional option for LetterService
type LetterServiceOption func(*LetterService)

// LetterWithGenerator sets the generative upstream
func LetterWithGenerator(g llm.Generator) LetterServiceOption {
	return func(s *LetterService) {
		s.generator = g
	}
}

// LetterWithTimeout bounds each upstream call
func LetterWithTimeout(d time.Duration) LetterServiceOption {
	return func(s *LetterService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// LetterWithLogger sets the logger
func LetterWithLogger(l logger.Logger) LetterServiceOption {
	return func(s *LetterService) {
		s.logger = l.Named("letter")
	}
}

// LetterWithMetrics sets the metrics collectors
func LetterWithMetrics(m *metrics.Metrics) LetterServiceOption {
	return func(s *LetterService) {
		s.metrics = m
	}
}

// LetterWithArchive enables archiving rendered letters; both parts are required
func LetterWithArchive(docs storage.Storage, store LetterStore) LetterServiceOption {
	return func(s *LetterService) {
		s.storage = docs
		s.store = store
	}
}

// NewLetterService creates a new letter service
func NewLetterService(opts ...LetterServiceOption) *LetterService {
	s := &LetterService{pipeline: newPipeline()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ArchiveEnabled reports whether letters can be archived
func (s *LetterService) ArchiveEnabled() bool {
	return s.storage != nil && s.store != nil
}

// ComposeLetterRequest represents a request to draft a letter
type ComposeLetterRequest struct {
	Narrative models.CaseNarrative
	Archive   bool
}

// ComposeLetterResult is the drafted letter and, when archived, its document
type ComposeLetterResult struct {
	Letter   models.DemandLetter
	Source   string
	Document *models.LetterDocument
}

// Compose drafts a letter. Upstream failures fall back to the rule-based
// letter; only archive problems are returned as errors.
func (s *LetterService) Compose(ctx context.Context, req ComposeLetterRequest) (*ComposeLetterResult, error) {
	if strings.TrimSpace(req.Narrative.Content) == "" {
		return nil, ErrNarrativeRequired
	}
	if req.Archive && !s.ArchiveEnabled() {
		return nil, ErrArchiveDisabled
	}

	a := classifier.Analyze(req.Narrative)
	result := &ComposeLetterResult{Source: metrics.SourceRules}

	if l, err := s.draft(ctx, req.Narrative); err != nil {
		s.fallback(opLetter, err, logger.Int("content_runes", utf8.RuneCountInString(req.Narrative.Content)))
		result.Letter = classifier.ComposeLetter(a)
	} else {
		result.Letter = classifier.GuardLetter(l, a)
		result.Source = metrics.SourceAI
	}

	if req.Archive {
		doc, err := s.archive(ctx, result.Letter, a)
		if err != nil {
			s.logger.Error("failed to archive letter", logger.Err(err))
			return nil, err
		}
		result.Document = doc
	}

	s.metrics.ObserveLetter(result.Source, result.Document != nil)
	return result, nil
}

func (s *LetterService) draft(ctx context.Context, n models.CaseNarrative) (models.DemandLetter, error) {
	raw, err := s.generate(ctx, opLetter, llm.LetterRequest(n))
	if err != nil {
		return models.DemandLetter{}, err
	}
	return llm.ParseLetter(raw)
}

// archive uploads the rendered letter, then records it. The upload is
// removed again when the record cannot be written.
func (s *LetterService) archive(ctx context.Context, l models.DemandLetter, a *classifier.Analysis) (*models.LetterDocument, error) {
	rendered := l.Render()
	id := uuid.New()

	path, err := s.storage.Upload(ctx, id, archivedFilename, strings.NewReader(rendered))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	doc := &models.LetterDocument{
		ID:          id,
		Title:       l.Title,
		Category:    string(a.Classification.Category),
		SubType:     a.Classification.SubType,
		Filename:    archivedFilename,
		MimeType:    storage.ContentType(archivedFilename),
		Size:        int64(len(rendered)),
		StoragePath: path,
	}
	if err := s.store.Create(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			s.logger.Warn("failed to remove orphaned letter upload", logger.String("path", path), logger.Err(delErr))
		}
		return nil, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}
	return doc, nil
}

// GetDocumentResult is an archived letter ready to stream
type GetDocumentResult struct {
	Document *models.LetterDocument
	Content  io.ReadCloser
}

// GetDocument opens an archived letter. The caller closes Content.
func (s *LetterService) GetDocument(ctx context.Context, id uuid.UUID) (*GetDocumentResult, error) {
	if !s.ArchiveEnabled() {
		return nil, ErrArchiveDisabled
	}

	doc, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLetterNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	content, err := s.storage.Download(ctx, doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &GetDocumentResult{Document: doc, Content: content}, nil
}
