package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cloudsid/upload-logger/internal/gateway/lambda"
	"github.com/cloudsid/upload-logger/internal/gateway/webhook"
	"github.com/cloudsid/upload-logger/internal/repository"
	"github.com/cloudsid/upload-logger/internal/repository/dynamodb"
	"github.com/cloudsid/upload-logger/internal/repository/sns"
	"github.com/cloudsid/upload-logger/internal/uploads"
)

type gateway interface {
	Run() error
	Shutdown() error
}

type App struct {
	gateway gateway
}

func New() (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	store, err := dynamodb.New(dynamodb.StoreConfig{
		Table:    config.Storage.Table,
		Region:   config.Storage.Region,
		Endpoint: config.Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb: %w", err)
	}

	// An empty topic ARN disables notifications.
	var notifier repository.Notifier
	if config.Notify.TopicARN != "" {
		n, err := sns.New(sns.NotifierConfig{
			TopicARN: config.Notify.TopicARN,
			Region:   config.Notify.Region,
			Endpoint: config.Notify.Endpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("sns: %w", err)
		}

		notifier = n
	}

	u, err := uploads.New(uploads.Config{
		Store:    store,
		Notifier: notifier,
		Subject:  config.Notify.Subject,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("uploads: %w", err)
	}

	app := &App{}

	switch value := config.Gateway.Kind; value {
	case "LAMBDA":
		g, err := lambda.New(lambda.Config{
			Uploads: u,
			Logger:  logger,
		})
		if err != nil {
			return nil, fmt.Errorf("lambda: %w", err)
		}

		app.gateway = g
	case "S3-WEBHOOK":
		app.gateway = webhook.New(webhook.GatewayConfig{
			Uploads: u,
			Address: config.Gateway.Address,
		})
	default:
		return nil, fmt.Errorf("unknown gateway `%s`", value)
	}

	return app, nil
}

func (a *App) Run() error {
	if err := a.gateway.Run(); err != nil {
		return fmt.Errorf("gateway run: %w", err)
	}

	return nil
}

func (a *App) Shutdown() error {
	if err := a.gateway.Shutdown(); err != nil {
		return fmt.Errorf("gateway shutdown: %w", err)
	}

	return nil
}
