// Package service holds the desk's outbound integrations.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/reservation-desk/internal/config"
	"github.com/iliyamo/reservation-desk/internal/model"
	q "github.com/iliyamo/reservation-desk/internal/queue"
)

// Publisher sends reservation events to a durable RabbitMQ queue.  It
// implements desk.EventSink: failures are logged and never reach the desk.
type Publisher struct {
	cfg config.EventsConfig
	now func() time.Time
}

// NewPublisher returns a Publisher for cfg.
func NewPublisher(cfg config.EventsConfig) *Publisher {
	return &Publisher{cfg: cfg, now: time.Now}
}

// ReservationAdded publishes a reservation.added event.
func (p *Publisher) ReservationAdded(ctx context.Context, r model.Reservation) {
	p.send(ctx, q.NewReservationEvent(q.TypeReservationAdded, r, p.now()))
}

// ReservationDeleted publishes a reservation.deleted event.
func (p *Publisher) ReservationDeleted(ctx context.Context, r model.Reservation) {
	p.send(ctx, q.NewReservationEvent(q.TypeReservationDeleted, r, p.now()))
}

func (p *Publisher) send(ctx context.Context, ev q.ReservationEvent) {
	// The request may finish before the broker answers.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.PublishTimeout)
	defer cancel()
	if err := p.Publish(ctx, ev); err != nil {
		log.Printf("rabbitmq: %s for reservation %d not published: %v", ev.Type, ev.Reservation.ID, err)
	}
}

// dialTimeout bounds the TCP connect and AMQP handshake by ctx's deadline,
// falling back to the configured publish timeout.
func (p *Publisher) dialTimeout(ctx context.Context) time.Duration {
	d := p.cfg.PublishTimeout
	if d <= 0 {
		d = 3 * time.Second
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d {
			d = left
		}
	}
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}

// Publish dials the broker, declares the queue and publishes ev as a
// persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, ev q.ReservationEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.DialConfig(p.cfg.URL, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout(ctx)),
	})
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.cfg.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.EventID.String(),
		Type:         ev.Type,
		Timestamp:    ev.OccurredAt,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.cfg.Queue, false, false, pub); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}
