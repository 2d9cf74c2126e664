package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cloudsid/upload-logger/internal/entity"
	"github.com/cloudsid/upload-logger/internal/uploads"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Gateway serves bucket notification webhooks, the delivery MinIO and
// other S3-compatible stores use when no Lambda runtime is around.
type Gateway struct {
	uploads *uploads.Uploads
	echo    *echo.Echo
	address string
	metrics *metrics
}

type GatewayConfig struct {
	Uploads *uploads.Uploads
	Address string
}

func New(c GatewayConfig) *Gateway {
	e := echo.New()
	e.HideBanner = true

	g := &Gateway{
		uploads: c.Uploads,
		echo:    e,
		address: c.Address,
		metrics: newMetrics(),
	}

	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: uuid.NewString,
		}),
		middleware.Logger(),
		g.metrics.middleware,
	)

	e.POST("/events", g.hdlrEvents)
	e.GET("/healthz", g.hdlrHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(g.metrics.registry, promhttp.HandlerOpts{})))

	return g
}

func (g *Gateway) Run() error {
	return g.echo.Start(g.address)
}

func (g *Gateway) Shutdown() error {
	return g.echo.Shutdown(context.TODO())
}

//	{
//		"EventName": "s3:ObjectCreated:Put",
//		"Key": "serverless-file-bucket-sid/Banking.csv",
//		"Records": [
//		  {
//			"eventVersion": "2.0",
//			"eventSource": "minio:s3",
//			"eventTime": "2024-01-01T10:00:00.000Z",
//			"eventName": "s3:ObjectCreated:Put",
//			"s3": {
//			  "bucket": {
//				"name": "serverless-file-bucket-sid"
//			  },
//			  "object": {
//				"key": "Banking.csv",
//				"size": 2048
//			  }
//			}
//		  }
//		]
//	}
type Request struct {
	EventName string   `json:"EventName,omitempty"`
	Key       string   `json:"Key,omitempty"`
	Records   []Record `json:"Records,omitempty"`
}

type Record struct {
	EventTime string `json:"eventTime,omitempty"`
	S3        S3     `json:"s3,omitempty"`
}

type S3 struct {
	Bucket Bucket `json:"bucket,omitempty"`
	Object Object `json:"object,omitempty"`
}

type Bucket struct {
	Name string `json:"name,omitempty"`
}

type Object struct {
	Key  string `json:"key,omitempty"`
	Size int64  `json:"size,omitempty"`
}

type Response struct {
	Message string `json:"message"`
}

func (g *Gateway) hdlrEvents(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return toHTTPError(fmt.Errorf("unmarshal: %w: %w", entity.ErrMalformedEvent, err))
	}

	records := make([]entity.UploadRecord, 0, len(req.Records))
	for i, rec := range req.Records {
		record, err := fromRecord(rec)
		if err != nil {
			return toHTTPError(fmt.Errorf("record %d: %w", i, err))
		}

		records = append(records, record)
	}

	if err := g.uploads.Process(c.Request().Context(), records); err != nil {
		return toHTTPError(fmt.Errorf("process records: %w", err))
	}

	g.metrics.recordsProcessed.Add(float64(len(records)))

	return c.JSON(http.StatusOK, Response{Message: "File processed successfully!"})
}

func (g *Gateway) hdlrHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func fromRecord(rec Record) (entity.UploadRecord, error) {
	uploadedAt, err := time.Parse(time.RFC3339, rec.EventTime)
	if err != nil {
		return entity.UploadRecord{}, fmt.Errorf("parse event time: %w: %w", entity.ErrMalformedEvent, err)
	}

	// Object keys arrive URL-encoded in bucket notifications.
	key, err := url.QueryUnescape(rec.S3.Object.Key)
	if err != nil {
		return entity.UploadRecord{}, fmt.Errorf("unescape key: %w: %w", entity.ErrMalformedEvent, err)
	}

	record := entity.UploadRecord{
		Bucket:     rec.S3.Bucket.Name,
		Key:        key,
		Size:       rec.S3.Object.Size,
		UploadedAt: uploadedAt,
	}
	if err := record.Validate(); err != nil {
		return entity.UploadRecord{}, err
	}

	return record, nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, entity.ErrMalformedEvent):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrDependencyFailed):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return err
}
