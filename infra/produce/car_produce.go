package produce

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// CarsQueue mirrors the car REST operations asynchronously. Messages
	// carry a METHOD header (POST, PUT or DELETE), an optional id header
	// and a JSON car payload in the body.
	CarsQueue = "cars"
)

// CarMessage is the body shape for POST and PUT messages, matching the REST
// car payload: brand and country referenced by natural-key name.
type CarMessage struct {
	Brand        NameRef   `json:"brand"`
	Model        string    `json:"model"`
	Color        string    `json:"color"`
	Registration time.Time `json:"registration"`
	Country      NameRef   `json:"country"`
	Components   []string  `json:"components"`
}

type NameRef struct {
	Name string `json:"name"`
}

// CarProduceService is the client side of the async car contract. The API
// process does not publish to the queue itself; this publisher exists for
// external callers and tooling that mirror operations through RabbitMQ.
type CarProduceService struct {
	channel *amqp.Channel
}

func InitCarProduceService(channel *amqp.Channel) *CarProduceService {
	service := &CarProduceService{channel: channel}
	if err := service.declareQueue(); err != nil {
		return nil
	}
	return service
}

func (s *CarProduceService) declareQueue() error {
	_, err := s.channel.QueueDeclare(
		CarsQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare cars queue: %w", err)
	}
	return nil
}

func (s *CarProduceService) PublishCreate(ctx context.Context, message CarMessage) error {
	publishing, err := BuildCarPublishing("POST", "", &message)
	if err != nil {
		return err
	}
	return s.publish(ctx, publishing)
}

func (s *CarProduceService) PublishUpdate(ctx context.Context, id string, message CarMessage) error {
	publishing, err := BuildCarPublishing("PUT", id, &message)
	if err != nil {
		return err
	}
	return s.publish(ctx, publishing)
}

func (s *CarProduceService) PublishDelete(ctx context.Context, id string) error {
	publishing, err := BuildCarPublishing("DELETE", id, nil)
	if err != nil {
		return err
	}
	return s.publish(ctx, publishing)
}

func (s *CarProduceService) publish(ctx context.Context, publishing amqp.Publishing) error {
	err := s.channel.PublishWithContext(
		ctx,
		"",        // default exchange
		CarsQueue, // routing key
		false,     // mandatory
		false,     // immediate
		publishing,
	)
	if err != nil {
		return fmt.Errorf("failed to publish car message: %w", err)
	}
	return nil
}

// BuildCarPublishing assembles the wire form of a car operation: METHOD and
// id travel as headers, the payload is the JSON body.
func BuildCarPublishing(method, id string, message *CarMessage) (amqp.Publishing, error) {
	headers := amqp.Table{"METHOD": method}
	if id != "" {
		headers["id"] = id
	}

	publishing := amqp.Publishing{
		ContentType: "application/json",
		Headers:     headers,
	}

	if message != nil {
		body, err := json.Marshal(message)
		if err != nil {
			return amqp.Publishing{}, fmt.Errorf("failed to marshal car message: %w", err)
		}
		publishing.Body = body
	}

	return publishing, nil
}
