package lambda

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/cloudsid/upload-logger/internal/entity"
	"github.com/cloudsid/upload-logger/internal/uploads"
)

// Lambda serves S3 trigger events delivered by the AWS Lambda runtime.
type Lambda struct {
	uploads *uploads.Uploads
	logger  *slog.Logger
}

type Config struct {
	Uploads *uploads.Uploads
	Logger  *slog.Logger
}

func New(config Config) (*Lambda, error) {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	gateway := &Lambda{
		uploads: config.Uploads,
		logger:  config.Logger,
	}

	return gateway, nil
}

func (g *Lambda) Run() error {
	awslambda.StartWithOptions(g.Handler)
	return nil
}

// Shutdown is a no-op, the Lambda runtime owns the process lifecycle.
func (g *Lambda) Shutdown() error {
	return nil
}

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func (g *Lambda) Handler(ctx context.Context, event events.S3Event) (Response, error) {
	if raw, err := json.Marshal(event); err == nil {
		g.logger.Info(
			"received event",
			slog.String("event", string(raw)),
		)
	}

	records := make([]entity.UploadRecord, 0, len(event.Records))
	for i, rec := range event.Records {
		// Object keys arrive URL-encoded in S3 notifications.
		key, err := url.QueryUnescape(rec.S3.Object.Key)
		if err != nil {
			return Response{}, fmt.Errorf("record %d: unescape key: %w: %w", i, entity.ErrMalformedEvent, err)
		}

		record := entity.UploadRecord{
			Bucket:     rec.S3.Bucket.Name,
			Key:        key,
			Size:       rec.S3.Object.Size,
			UploadedAt: rec.EventTime,
		}
		if err := record.Validate(); err != nil {
			return Response{}, fmt.Errorf("record %d: %w", i, err)
		}

		records = append(records, record)
	}

	if err := g.uploads.Process(ctx, records); err != nil {
		return Response{}, fmt.Errorf("process records: %w", err)
	}

	return Response{
		StatusCode: 200,
		Body:       "File processed successfully!",
	}, nil
}
