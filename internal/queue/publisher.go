package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// dialTimeout bounds connect and handshake when the caller sets no deadline.
const dialTimeout = 5 * time.Second

type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
}

// NewPublisher returns a RabbitMQ publisher, or a no-op one when url is
// empty.
func NewPublisher(url string, log *zap.Logger) Publisher {
	if url == "" {
		log.Info("AMQP_URL not set, booking events disabled")
		return NopPublisher{}
	}
	return &amqpPublisher{
		url: url,
		log: log.With(zap.String("publisher", "amqp")),
	}
}

type NopPublisher struct{}

func (NopPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	return nil
}

// amqpPublisher dials per message. Bookings are rare enough that a pooled
// channel is not worth its reconnect handling.
type amqpPublisher struct {
	url string
	log *zap.Logger
}

func (p *amqpPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	body, err := encodeEvent(event)
	if err != nil {
		return err
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Locale: "en_US",
		Dial:   contextDial(ctx),
	})
	if err != nil {
		p.log.Warn("Failed to dial broker", zap.Error(err))
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	// channel setup ignores ctx; closing the connection unblocks it
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(BookingConfirmedQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", BookingConfirmedQueue, err)
	}

	err = ch.PublishWithContext(ctx, "", BookingConfirmedQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", BookingConfirmedQueue, err)
	}

	p.log.Debug("Booking event published", zap.String("booking_id", event.BookingID))
	return nil
}

// contextDial connects under ctx and keeps its deadline on the socket for the
// AMQP handshake. The library clears the deadline once the connection opens.
func contextDial(ctx context.Context) func(network, addr string) (net.Conn, error) {
	return func(network, addr string) (net.Conn, error) {
		deadline, ok := ctx.Deadline()
		if !ok {
			deadline = time.Now().Add(dialTimeout)
		}

		var d net.Dialer
		conn, err := d.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return nil, err
		}
		return conn, nil
	}
}

func encodeEvent(event BookingConfirmedEvent) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode booking event: %w", err)
	}
	return body, nil
}
