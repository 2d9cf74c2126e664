package sns

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	awssns "github.com/aws/aws-sdk-go/service/sns"
	"github.com/cloudsid/upload-logger/internal/entity"
)

// SNSAPI is the subset of the SDK client used by Notifier.
type SNSAPI interface {
	PublishWithContext(ctx aws.Context, input *awssns.PublishInput, opts ...request.Option) (*awssns.PublishOutput, error)
}

type Notifier struct {
	api      SNSAPI
	topicARN string
}

type NotifierConfig struct {
	TopicARN string
	// Region may be empty, the session then falls back to AWS_REGION.
	Region string
	// Endpoint overrides the service endpoint, e.g. for a local stack.
	Endpoint string
}

func New(c NotifierConfig) (*Notifier, error) {
	cfg := aws.NewConfig()
	if c.Region != "" {
		cfg = cfg.WithRegion(c.Region)
	}
	if c.Endpoint != "" {
		cfg = cfg.WithEndpoint(c.Endpoint)
	}

	s, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("sns session: %w", err)
	}

	return &Notifier{
		api:      awssns.New(s),
		topicARN: c.TopicARN,
	}, nil
}

func (n *Notifier) Publish(ctx context.Context, subject, message string) error {
	if _, err := n.api.PublishWithContext(ctx, &awssns.PublishInput{
		TopicArn: &n.topicARN,
		Subject:  &subject,
		Message:  &message,
	}); err != nil {
		return fmt.Errorf("publish to %s: %w: %w", n.topicARN, entity.ErrDependencyFailed, err)
	}

	return nil
}
