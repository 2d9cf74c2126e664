package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUploadRecord_Validate(t *testing.T) {
	uploadedAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  UploadRecord
		wantErr bool
	}{
		{
			name: "valid record",
			record: UploadRecord{
				Bucket:     "serverless-file-bucket-sid",
				Key:        "Banking.csv",
				Size:       2048,
				UploadedAt: uploadedAt,
			},
		},
		{
			name: "zero size is valid",
			record: UploadRecord{
				Bucket:     "serverless-file-bucket-sid",
				Key:        "empty.txt",
				UploadedAt: uploadedAt,
			},
		},
		{
			name: "missing bucket",
			record: UploadRecord{
				Key:        "Banking.csv",
				Size:       2048,
				UploadedAt: uploadedAt,
			},
			wantErr: true,
		},
		{
			name: "missing object key",
			record: UploadRecord{
				Bucket:     "serverless-file-bucket-sid",
				Size:       2048,
				UploadedAt: uploadedAt,
			},
			wantErr: true,
		},
		{
			name: "negative size",
			record: UploadRecord{
				Bucket:     "serverless-file-bucket-sid",
				Key:        "Banking.csv",
				Size:       -1,
				UploadedAt: uploadedAt,
			},
			wantErr: true,
		},
		{
			name: "missing event time",
			record: UploadRecord{
				Bucket: "serverless-file-bucket-sid",
				Key:    "Banking.csv",
				Size:   2048,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedEvent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
