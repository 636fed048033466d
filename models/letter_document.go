package models

import (
	"time"

	"github.com/google/uuid"
)

// LetterDocument is an archived, rendered demand letter
type LetterDocument struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	SubType     string    `json:"sub_type"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
