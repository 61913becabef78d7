//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"catalog_sync/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishUpdated() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-updated",
		RoutingKey: "test-routing-key-updated",
		QueueName:  "test-queue-updated",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	res := &domain.SyncResult{
		ProductID:      "42",
		Name:           "Dress",
		Article:        "AB-12",
		Updated:        true,
		DescUpdated:    true,
		PhotosUploaded: []string{"https://cdn/1.jpg"},
		PhotosCount:    1,
	}

	err = pub.Publish(s.ctx, res)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received SyncEvent
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("updated", received.Action)
	s.Equal("42", received.Result.ProductID)
	s.Equal("AB-12", received.Result.Article)
	s.Equal(1, received.Result.PhotosCount)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishReview() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-review",
		RoutingKey: "test-routing-key-review",
		QueueName:  "test-queue-review",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	res := &domain.SyncResult{
		ProductID:    "43",
		Name:         "Shirt",
		Article:      "CD-34",
		ReviewReason: domain.ReasonNotFound,
	}

	err = pub.Publish(s.ctx, res)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received SyncEvent
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("review", received.Action)
	s.Equal(domain.ReasonNotFound, received.Result.ReviewReason)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishFailed() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-failed",
		RoutingKey: "test-routing-key-failed",
		QueueName:  "test-queue-failed",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	res := &domain.SyncResult{
		ProductID:    "44",
		Name:         "Coat",
		ReviewReason: domain.ReasonUpdateFailed,
		Err:          "http 500",
	}

	err = pub.Publish(s.ctx, res)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received SyncEvent
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("failed", received.Action)
	s.Equal("http 500", received.Result.Err)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
