package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"lawpick-backend/models"
)

// ErrLetterNotFound is returned when no archived letter has the given ID
var ErrLetterNotFound = errors.New("letter document not found")

// DBTX is the subset of pgxpool.Pool, pgx.Conn and pgx.Tx the repository needs
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LetterSchema creates the archive table
const LetterSchema = `
CREATE TABLE IF NOT EXISTS letter_documents (
    id UUID PRIMARY KEY,
    title TEXT NOT NULL,
    category VARCHAR(32) NOT NULL,
    sub_type VARCHAR(64) NOT NULL,
    filename VARCHAR(255) NOT NULL,
    mime_type VARCHAR(100) NOT NULL,
    size BIGINT NOT NULL CHECK (size >= 0),
    storage_path TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_letter_documents_created_at ON letter_documents(created_at DESC);
`

// LetterRepository stores metadata of archived letters
type LetterRepository struct {
	db DBTX
}

// NewLetterRepository creates a new letter repository
func NewLetterRepository(db DBTX) *LetterRepository {
	return &LetterRepository{db: db}
}

// Create inserts a letter document and fills in its creation time
func (r *LetterRepository) Create(ctx context.Context, doc *models.LetterDocument) error {
	query := `
		INSERT INTO letter_documents (
			id, title, category, sub_type, filename, mime_type, size, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := r.db.QueryRow(
		ctx, query,
		doc.ID,
		doc.Title,
		doc.Category,
		doc.SubType,
		doc.Filename,
		doc.MimeType,
		doc.Size,
		doc.StoragePath,
	).Scan(&doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert letter document: %w", err)
	}
	return nil
}

// GetByID retrieves an archived letter's metadata
func (r *LetterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LetterDocument, error) {
	doc := &models.LetterDocument{}
	query := `
		SELECT id, title, category, sub_type, filename, mime_type, size, storage_path, created_at
		FROM letter_documents
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Title,
		&doc.Category,
		&doc.SubType,
		&doc.Filename,
		&doc.MimeType,
		&doc.Size,
		&doc.StoragePath,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLetterNotFound
		}
		return nil, fmt.Errorf("failed to load letter document: %w", err)
	}
	return doc, nil
}

// Delete removes an archived letter's metadata
func (r *LetterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM letter_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete letter document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLetterNotFound
	}
	return nil
}

// EnsureSchema creates the archive table when it does not exist yet
func EnsureSchema(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, LetterSchema); err != nil {
		return fmt.Errorf("failed to create letter_documents table: %w", err)
	}
	return nil
}
