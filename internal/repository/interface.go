package repository

import (
	"context"

	"github.com/cloudsid/upload-logger/internal/entity"
)

// MetadataStore persists one metadata record per uploaded file.
type MetadataStore interface {
	// Put writes the record with upsert semantics: it creates the item when
	// the key is absent and replaces it otherwise.
	Put(ctx context.Context, meta entity.FileMetadata) error
}

// Notifier delivers a fire-and-forget message about one upload. The
// destination is bound at construction time.
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}
