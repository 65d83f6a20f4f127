package repuestos_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPublishFailed = errors.New("nats: connection closed")

type published struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	messages []published
	err      error
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	if p.err != nil {
		return p.err
	}

	p.messages = append(p.messages, published{subject: subject, data: data})

	return nil
}

func TestNewNotifierFromConfig(t *testing.T) {
	t.Parallel()

	notifier, err := repuestos.NewNotifierFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &repuestos.NoOpNotifier{}, notifier)

	notifier, err = repuestos.NewNotifierFromConfig(&repuestos.NotifierConfig{Type: repuestos.NotifierTypeNone})
	require.NoError(t, err)
	assert.IsType(t, &repuestos.NoOpNotifier{}, notifier)

	_, err = repuestos.NewNotifierFromConfig(&repuestos.NotifierConfig{Type: repuestos.NotifierTypeNATS})
	require.ErrorIs(t, err, repuestos.ErrNATSConfigRequired)

	_, err = repuestos.NewNotifierFromConfig(&repuestos.NotifierConfig{Type: "kafka"})
	require.ErrorIs(t, err, repuestos.ErrUnsupportedNotifierType)
}

func TestNATSNotifier_Notify(t *testing.T) {
	t.Parallel()

	publisher := &fakePublisher{}
	notifier := repuestos.NewNATSNotifierWithPublisher(publisher, "sucursal.centro.")

	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	event := repuestos.Event{Resource: repuestos.ResourceClientes, Action: repuestos.ActionCreated, Key: 42, At: at}

	require.NoError(t, notifier.Notify(context.Background(), event))
	require.Len(t, publisher.messages, 1)

	msg := publisher.messages[0]
	assert.Equal(t, "sucursal.centro.clientes.created", msg.subject)

	var decoded repuestos.Event
	require.NoError(t, json.Unmarshal(msg.data, &decoded))
	assert.Equal(t, event.Resource, decoded.Resource)
	assert.Equal(t, event.Action, decoded.Action)
	assert.Equal(t, 42, decoded.Key)
	assert.True(t, at.Equal(decoded.At))

	require.NoError(t, notifier.Close())
}

func TestNATSNotifier_DefaultPrefixAndTimestamp(t *testing.T) {
	t.Parallel()

	publisher := &fakePublisher{}
	notifier := repuestos.NewNATSNotifierWithPublisher(publisher, "")

	event := repuestos.Event{Resource: repuestos.ResourceVentas, Action: repuestos.ActionDeleted, Key: 3}
	assert.Equal(t, "repuestos.events.ventas.deleted", notifier.Subject(event))

	require.NoError(t, notifier.Notify(context.Background(), event))
	require.Len(t, publisher.messages, 1)

	var decoded repuestos.Event
	require.NoError(t, json.Unmarshal(publisher.messages[0].data, &decoded))
	assert.False(t, decoded.At.IsZero())
}

func TestNATSNotifier_Errors(t *testing.T) {
	t.Parallel()

	notifier := repuestos.NewNATSNotifierWithPublisher(&fakePublisher{err: errPublishFailed}, "")

	err := notifier.Notify(context.Background(), repuestos.Event{Resource: repuestos.ResourceUsuarios, Action: repuestos.ActionUpdated, Key: 1})
	require.ErrorIs(t, err, errPublishFailed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = notifier.Notify(ctx, repuestos.Event{})
	require.ErrorIs(t, err, context.Canceled)

	_, err = repuestos.NewNATSNotifier(&repuestos.NATSConfig{})
	require.ErrorIs(t, err, repuestos.ErrNATSConfigRequired)
}
