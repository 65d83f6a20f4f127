package repuestos

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// Action is the kind of mutation an Event reports.
type Action string

// Mutation actions.
const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event reports a successful mutation of one record.
type Event struct {
	Resource string    `json:"resource" yaml:"resource"`
	Action   Action    `json:"action"   yaml:"action"`
	Key      int       `json:"key"      yaml:"key"`
	At       time.Time `json:"at"       yaml:"at"`
}

// Notifier receives mutation events.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
	Close() error
}

// NotifierType selects a Notifier implementation.
type NotifierType string

// Notifier types.
const (
	NotifierTypeNone NotifierType = "none"
	NotifierTypeNATS NotifierType = "nats"
)

// DefaultSubjectPrefix is the subject prefix used when none is configured.
const DefaultSubjectPrefix = "repuestos.events"

// NotifierConfig configures a Notifier.
type NotifierConfig struct {
	Type NotifierType
	NATS *NATSConfig
}

// NATSConfig configures the NATS notifier.
type NATSConfig struct {
	URL           string
	SubjectPrefix string
	// Name is reported to the server as the connection name.
	Name string
}

// NewNotifierFromConfig creates a Notifier from configuration. A nil config
// or an empty type yields a NoOpNotifier.
func NewNotifierFromConfig(config *NotifierConfig) (Notifier, error) {
	if config == nil {
		return NewNoOpNotifier(), nil
	}

	switch config.Type {
	case NotifierTypeNone, "":
		return NewNoOpNotifier(), nil

	case NotifierTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSNotifier(config.NATS)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNotifierType, config.Type)
	}
}

// NoOpNotifier discards every event.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new no-op notifier.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// Notify does nothing.
func (n *NoOpNotifier) Notify(context.Context, Event) error {
	return nil
}

// Close does nothing.
func (n *NoOpNotifier) Close() error {
	return nil
}

// Publisher is the subset of *nats.Conn used by NATSNotifier.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSNotifier publishes events as JSON on "<prefix>.<resource>.<action>".
type NATSNotifier struct {
	publisher Publisher
	prefix    string
	closeFn   func() error
}

// NewNATSNotifier connects to NATS and returns a notifier owning the connection.
func NewNATSNotifier(config *NATSConfig) (*NATSNotifier, error) {
	if config == nil || config.URL == "" {
		return nil, ErrNATSConfigRequired
	}

	name := config.Name
	if name == "" {
		name = "repuestos"
	}

	conn, err := nats.Connect(config.URL, nats.Name(name))
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	notifier := NewNATSNotifierWithPublisher(conn, config.SubjectPrefix)
	notifier.closeFn = conn.Drain

	return notifier, nil
}

// NewNATSNotifierWithPublisher wraps an existing connection. The caller keeps
// ownership of it; Close does not close it.
func NewNATSNotifierWithPublisher(publisher Publisher, prefix string) *NATSNotifier {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	return &NATSNotifier{
		publisher: publisher,
		prefix:    prefix,
	}
}

// Subject returns the subject an event is published on.
func (n *NATSNotifier) Subject(event Event) string {
	return fmt.Sprintf("%s.%s.%s", n.prefix, event.Resource, event.Action)
}

// Notify publishes the event.
func (n *NATSNotifier) Notify(ctx context.Context, event Event) error {
	err := ctx.Err()
	if err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	err = n.publisher.Publish(n.Subject(event), data)
	if err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	return nil
}

// Close drains the connection when the notifier owns it.
func (n *NATSNotifier) Close() error {
	if n.closeFn == nil {
		return nil
	}

	err := n.closeFn()
	if err != nil {
		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}
