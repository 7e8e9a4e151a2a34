package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/RamonMR95/auto-api/entity"
	"github.com/RamonMR95/auto-api/infra"
	"github.com/RamonMR95/auto-api/infra/produce"
	"github.com/RamonMR95/auto-api/metrics"
	"github.com/RamonMR95/auto-api/service"
)

// CarWriter is the slice of the car service the consumer mirrors.
type CarWriter interface {
	Create(ctx context.Context, input service.CarInput) (*entity.Car, error)
	Update(ctx context.Context, input service.CarInput, rawID string) (*entity.Car, error)
	MarkForDeletion(ctx context.Context, rawID string) error
}

// CarConsumer mirrors the car operations asynchronously: POST creates, PUT
// updates, DELETE marks for deletion. There is no redrive; malformed or
// failing messages are logged and dropped.
type CarConsumer struct {
	channel *amqp.Channel
	infra   *infra.Infra
	cars    CarWriter
}

func NewCarConsumer(channel *amqp.Channel, infra *infra.Infra, cars CarWriter) *CarConsumer {
	return &CarConsumer{
		channel: channel,
		infra:   infra,
		cars:    cars,
	}
}

func (c *CarConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.CarsQueue,
		"",
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register cars consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Car Consumer] Started listening on queue: %s", produce.CarsQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Car Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Car Consumer] Channel closed")
					return
				}
				c.HandleMessage(ctx, msg)
			}
		}
	}()

	return nil
}

// HandleMessage dispatches one delivery by its METHOD header. Every outcome
// ends the message's life here: success and handled business errors ack,
// malformed messages nack without requeue.
func (c *CarConsumer) HandleMessage(ctx context.Context, msg amqp.Delivery) {
	method, ok := headerString(msg.Headers, "METHOD")
	if !ok {
		c.infra.Logger.ErrorWithContextf(ctx, nil, "[Car Consumer] Message without METHOD header, dropping")
		metrics.QueueMessages.WithLabelValues("unknown", "dropped").Inc()
		_ = msg.Nack(false, false)
		return
	}
	method = strings.ToUpper(method)
	id, _ := headerString(msg.Headers, "id")

	var payload *produce.CarMessage
	if len(msg.Body) > 0 {
		payload = &produce.CarMessage{}
		if err := json.Unmarshal(msg.Body, payload); err != nil {
			c.infra.Logger.ErrorWithContextf(ctx, err, "[Car Consumer] Failed to unmarshal car payload: %v", err)
			metrics.QueueMessages.WithLabelValues(method, "dropped").Inc()
			_ = msg.Nack(false, false)
			return
		}
	}

	switch method {
	case "POST":
		if payload == nil {
			c.infra.Logger.ErrorWithContextf(ctx, nil, "[Car Consumer] The car is required.")
			metrics.QueueMessages.WithLabelValues(method, "dropped").Inc()
			_ = msg.Nack(false, false)
			return
		}
		car, err := c.cars.Create(ctx, toInput(payload))
		if err != nil {
			c.infra.Logger.ErrorWithContextf(ctx, err, "[Car Consumer] Failed to create car: %v", err)
			metrics.QueueMessages.WithLabelValues(method, "failed").Inc()
			_ = msg.Ack(false)
			return
		}
		c.infra.Logger.InfoWithContextf(ctx, "[Car Consumer] Created car with id: %s", car.ID)

	case "PUT":
		if id == "" || payload == nil {
			c.infra.Logger.ErrorWithContextf(ctx, nil, "[Car Consumer] Both car and car id are required.")
			metrics.QueueMessages.WithLabelValues(method, "dropped").Inc()
			_ = msg.Nack(false, false)
			return
		}
		if _, err := c.cars.Update(ctx, toInput(payload), id); err != nil {
			c.infra.Logger.ErrorWithContextf(ctx, err, "[Car Consumer] Failed to update car with id: %s: %v", id, err)
			metrics.QueueMessages.WithLabelValues(method, "failed").Inc()
			_ = msg.Ack(false)
			return
		}
		c.infra.Logger.InfoWithContextf(ctx, "[Car Consumer] Updated car with id: %s", id)

	case "DELETE":
		if id == "" {
			c.infra.Logger.ErrorWithContextf(ctx, nil, "[Car Consumer] The car id is required.")
			metrics.QueueMessages.WithLabelValues(method, "dropped").Inc()
			_ = msg.Nack(false, false)
			return
		}
		if err := c.cars.MarkForDeletion(ctx, id); err != nil {
			c.infra.Logger.ErrorWithContextf(ctx, err, "[Car Consumer] Failed to mark car with id: %s for deletion: %v", id, err)
			metrics.QueueMessages.WithLabelValues(method, "failed").Inc()
			_ = msg.Ack(false)
			return
		}
		c.infra.Logger.InfoWithContextf(ctx, "[Car Consumer] Marked car with id: %s for deletion", id)

	default:
		c.infra.Logger.ErrorWithContextf(ctx, nil, "[Car Consumer] Invalid METHOD: %s", method)
		metrics.QueueMessages.WithLabelValues(method, "dropped").Inc()
		_ = msg.Nack(false, false)
		return
	}

	metrics.QueueMessages.WithLabelValues(method, "ok").Inc()
	_ = msg.Ack(false)
}

func headerString(headers amqp.Table, key string) (string, bool) {
	if headers == nil {
		return "", false
	}
	value, ok := headers[key].(string)
	return value, ok && value != ""
}

func toInput(message *produce.CarMessage) service.CarInput {
	return service.CarInput{
		BrandName:    message.Brand.Name,
		Model:        message.Model,
		Color:        message.Color,
		Registration: message.Registration,
		CountryName:  message.Country.Name,
		Components:   message.Components,
	}
}
