package uploads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudsid/upload-logger/internal/entity"
	"github.com/cloudsid/upload-logger/internal/repository"
)

// DefaultSubject is the subject line used when none is configured.
const DefaultSubject = "New File Upload Alert"

type Uploads struct {
	store    repository.MetadataStore
	notifier repository.Notifier
	subject  string
	logger   *slog.Logger
}

type Config struct {
	Store repository.MetadataStore
	// Notifier may be nil, notifications are then disabled.
	Notifier repository.Notifier
	Subject  string
	Logger   *slog.Logger
}

func New(c Config) (*Uploads, error) {
	if c.Store == nil {
		return nil, errors.New("metadata store is required")
	}
	if c.Subject == "" {
		c.Subject = DefaultSubject
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}

	return &Uploads{
		store:    c.Store,
		notifier: c.Notifier,
		subject:  c.Subject,
		logger:   c.Logger,
	}, nil
}

// Process writes one metadata record and sends one notification per upload
// record, in batch order. The first failed call aborts the remaining records;
// records already written stay written.
func (u *Uploads) Process(ctx context.Context, records []entity.UploadRecord) error {
	for _, record := range records {
		meta := entity.FileMetadata{
			FileName:   record.Key,
			BucketName: record.Bucket,
			FileSize:   record.Size,
			UploadTime: record.UploadedAt.UTC().Format(time.RFC3339),
		}

		if err := u.store.Put(ctx, meta); err != nil {
			return fmt.Errorf("store metadata %s: %w", record.Key, err)
		}
		u.logger.Info("file metadata stored",
			slog.String("file", meta.FileName),
			slog.String("bucket", meta.BucketName),
			slog.Int64("size", meta.FileSize),
			slog.String("uploaded_at", meta.UploadTime),
		)

		if u.notifier == nil {
			continue
		}

		if err := u.notifier.Publish(ctx, u.subject, message(record)); err != nil {
			return fmt.Errorf("notify %s: %w", record.Key, err)
		}
		u.logger.Info("upload notification sent", slog.String("file", record.Key))
	}

	return nil
}

func message(r entity.UploadRecord) string {
	return fmt.Sprintf(
		"📂 New file uploaded!\n\nFile: %s\nBucket: %s\nSize: %d bytes\nUploaded at: %s",
		r.Key, r.Bucket, r.Size, r.UploadedAt.UTC().Format(time.RFC3339),
	)
}
