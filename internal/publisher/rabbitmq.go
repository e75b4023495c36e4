package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"bills_fetcher/internal/domain"
)

// Config names the topic exchange bill changes go to and the durable queue
// bound to every change under RoutingKey.
type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// BillPublisher announces committed bill changes on a RabbitMQ topic exchange.
type BillPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     Config
	logger  *slog.Logger
}

func Dial(cfg Config, logger *slog.Logger) (*BillPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	p := &BillPublisher{conn: conn, cfg: cfg, logger: logger}

	p.channel, err = conn.Channel()
	if err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := declareTopology(p.channel, cfg); err != nil {
		_ = p.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"binding", cfg.RoutingKey+".#",
	)
	return p, nil
}

// declareTopology makes the exchange and queue durable and binds the queue
// to every kind and stage.
func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", cfg.QueueName, err)
	}
	if err := ch.QueueBind(q.Name, cfg.RoutingKey+".#", cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", q.Name, err)
	}
	return nil
}

func (p *BillPublisher) Publish(ctx context.Context, change *domain.BillChange) error {
	now := time.Now()
	msg := NewBillMessage(change, now)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal bill message: %w", err)
	}

	key := RoutingKey(p.cfg.RoutingKey, change)
	err = p.channel.PublishWithContext(ctx, p.cfg.Exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Headers:      headers(msg),
		Body:         body,
		Timestamp:    now,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}

	p.logger.Debug("published bill change",
		"routing_key", key,
		"numero", change.Numero,
		"legislatura", change.Legislatura,
		"action", msg.Action,
	)
	return nil
}

func (p *BillPublisher) Close() error {
	var errs []error
	if p.channel != nil {
		errs = append(errs, p.channel.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
