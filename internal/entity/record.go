package entity

import (
	"fmt"
	"time"
)

// UploadRecord is a single upload notification from the object store, already
// decoded from a gateway's wire format.
type UploadRecord struct {
	Bucket     string
	Key        string
	Size       int64
	UploadedAt time.Time
}

// Validate reports the first schema violation in the record. Gateways run it
// on every decoded record before the batch reaches processing.
func (r UploadRecord) Validate() error {
	if r.Bucket == "" {
		return fmt.Errorf("missing bucket name: %w", ErrMalformedEvent)
	}
	if r.Key == "" {
		return fmt.Errorf("missing object key: %w", ErrMalformedEvent)
	}
	if r.Size < 0 {
		return fmt.Errorf("negative object size %d: %w", r.Size, ErrMalformedEvent)
	}
	if r.UploadedAt.IsZero() {
		return fmt.Errorf("missing event time: %w", ErrMalformedEvent)
	}
	return nil
}

// FileMetadata is one item in the file metadata table. FileName is the table
// hash key, so writing the same key again replaces the previous item.
// Attribute names match the provisioned table schema.
type FileMetadata struct {
	FileName   string `json:"file_name,omitempty" dynamodbav:"FileName"`
	BucketName string `json:"bucket_name,omitempty" dynamodbav:"BucketName"`
	FileSize   int64  `json:"file_size,omitempty" dynamodbav:"FileSize"`
	UploadTime string `json:"upload_time,omitempty" dynamodbav:"UploadTime"`
}
