// AngelaMos | 2026
// notify.go

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/carterperez-dev/portfolio-backend/internal/config"
)

// Publisher delivers domain events to whoever reacts to them outside the
// request path (mail relays, chat hooks). Publishing is best effort.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
	Close() error
}

// Envelope is the JSON body of every published message.
type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// New returns an AMQP publisher when a broker URL is configured and a
// no-op publisher otherwise.
func New(cfg config.AMQPConfig) (Publisher, error) {
	if cfg.URL == "" {
		return Noop{}, nil
	}
	return NewAMQPPublisher(cfg)
}

type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }

func (Noop) Close() error { return nil }

const (
	defaultDialTimeout      = 2 * time.Second
	defaultReconnectBackoff = 30 * time.Second
)

// ErrUnavailable is returned while the broker connection is down and a
// reconnect is either in flight or backing off.
var ErrUnavailable = errors.New("amqp publisher unavailable")

type AMQPPublisher struct {
	url   string
	queue string

	dialTimeout time.Duration
	backoff     time.Duration

	mu          sync.Mutex
	conn        *amqp.Connection
	ch          *amqp.Channel
	dialing     bool
	lastFailure time.Time
	closed      bool
}

func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		url:         cfg.URL,
		queue:       cfg.Queue,
		dialTimeout: defaultDialTimeout,
		backoff:     defaultReconnectBackoff,
	}

	conn, ch, err := p.dial(context.Background())
	if err != nil {
		return nil, err
	}
	p.conn = conn
	p.ch = ch
	return p, nil
}

// dial connects, opens a channel and declares the queue. The TCP connect and
// the AMQP handshake share one deadline: dialTimeout, or ctx's deadline when
// that is sooner.
func (p *AMQPPublisher) dial(
	ctx context.Context,
) (*amqp.Connection, *amqp.Channel, error) {
	deadline := time.Now().Add(p.dialTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial: func(network, addr string) (net.Conn, error) {
			d := net.Dialer{Deadline: deadline}
			c, err := d.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			if err := c.SetDeadline(deadline); err != nil {
				_ = c.Close() //nolint:errcheck // cleanup on deadline failure
				return nil, err
			}
			return c, nil
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close() //nolint:errcheck // cleanup on channel failure
		return nil, nil, fmt.Errorf("open amqp channel: %w", err)
	}

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()   //nolint:errcheck // cleanup on declare failure
		_ = conn.Close() //nolint:errcheck // cleanup on declare failure
		return nil, nil, fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	return conn, ch, nil
}

// Publish sends one persistent message to the configured queue. A dead
// connection is re-dialed outside the lock by a single caller; concurrent
// callers, and every caller within backoff of a failed dial, get
// ErrUnavailable straight away.
func (p *AMQPPublisher) Publish(
	ctx context.Context,
	eventType string,
	payload any,
) error {
	body, err := json.Marshal(Envelope{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         eventType,
		Body:         body,
	}

	ch, err := p.channel(ctx)
	if err != nil {
		return err
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}
	return nil
}

func (p *AMQPPublisher) channel(ctx context.Context) (*amqp.Channel, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrUnavailable
	}
	if p.healthyLocked() {
		ch := p.ch
		p.mu.Unlock()
		return ch, nil
	}
	if p.dialing || time.Since(p.lastFailure) < p.backoff {
		p.mu.Unlock()
		return nil, ErrUnavailable
	}
	_ = p.closeLocked() //nolint:errcheck // replacing a dead connection
	p.dialing = true
	p.mu.Unlock()

	conn, ch, err := p.dial(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialing = false

	if err != nil {
		p.lastFailure = time.Now()
		return nil, err
	}
	if p.closed {
		_ = ch.Close()   //nolint:errcheck // publisher closed while dialing
		_ = conn.Close() //nolint:errcheck // publisher closed while dialing
		return nil, ErrUnavailable
	}

	p.conn = conn
	p.ch = ch
	slog.InfoContext(ctx, "amqp publisher reconnected", "queue", p.queue)
	return ch, nil
}

func (p *AMQPPublisher) healthyLocked() bool {
	return p.conn != nil && !p.conn.IsClosed() && p.ch != nil && !p.ch.IsClosed()
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return p.closeLocked()
}

func (p *AMQPPublisher) closeLocked() error {
	var errs []error
	if p.ch != nil && !p.ch.IsClosed() {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil && !p.conn.IsClosed() {
		errs = append(errs, p.conn.Close())
	}
	p.ch = nil
	p.conn = nil
	return errors.Join(errs...)
}
