package repuestos_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInterceptorRejected = errors.New("rejected")

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.record("debug", msg, fields)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.record("info", msg, fields)
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.record("warn", msg, fields)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.record("error", msg, fields)
}

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := repuestos.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *repuestos.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	}).AddRequestInterceptor(func(ctx context.Context, req *repuestos.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(ctx, &repuestos.Request{Method: http.MethodGet, Path: "/clientes"})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	called := false
	chain := repuestos.NewInterceptorChain().
		AddRequestInterceptor(func(context.Context, *repuestos.Request) error { return errInterceptorRejected }).
		AddRequestInterceptor(func(context.Context, *repuestos.Request) error {
			called = true

			return nil
		})

	err := chain.ExecuteRequestInterceptors(context.Background(), &repuestos.Request{})
	require.ErrorIs(t, err, errInterceptorRejected)
	assert.False(t, called)
}

func TestInterceptorChain_Nil(t *testing.T) {
	t.Parallel()

	var chain *repuestos.InterceptorChain

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &repuestos.Request{}))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), &repuestos.Request{}, &repuestos.Response{}))
}

func TestRequestIDInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := repuestos.RequestIDInterceptor()

	req := &repuestos.Request{}
	require.NoError(t, interceptor(context.Background(), req))

	_, err := uuid.Parse(req.Headers.Get(repuestos.RequestIDHeader))
	require.NoError(t, err)

	preset := &repuestos.Request{Headers: http.Header{repuestos.RequestIDHeader: []string{"fixed"}}}
	require.NoError(t, interceptor(context.Background(), preset))
	assert.Equal(t, "fixed", preset.Headers.Get(repuestos.RequestIDHeader))
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	req := &repuestos.Request{}
	err := repuestos.HeaderInterceptor(map[string]string{"X-Sucursal": "centro"})(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "centro", req.Headers.Get("X-Sucursal"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	ctx := context.Background()
	req := &repuestos.Request{Method: http.MethodGet, Path: "/ventas", Headers: http.Header{}}

	require.NoError(t, repuestos.LoggingInterceptor(logger)(ctx, req))
	require.NoError(t, repuestos.LoggingResponseInterceptor(logger)(ctx, req, &repuestos.Response{StatusCode: http.StatusOK}))
	require.NoError(t, repuestos.LoggingResponseInterceptor(logger)(ctx, req, &repuestos.Response{StatusCode: http.StatusBadGateway}))

	require.Len(t, logger.entries, 3)
	assert.Equal(t, "debug", logger.entries[0].level)
	assert.Equal(t, "/ventas", logger.entries[0].fields["path"])
	assert.Equal(t, "debug", logger.entries[1].level)
	assert.Equal(t, "error", logger.entries[2].level)
	assert.Equal(t, http.StatusBadGateway, logger.entries[2].fields["status_code"])
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := repuestos.NewMetricsCollector()
	ctx := context.Background()

	var notified []string

	collector.SetOnChange(func(endpoint string, _ repuestos.Metrics) {
		notified = append(notified, endpoint)
	})

	for _, status := range []int{http.StatusOK, http.StatusInternalServerError} {
		req := &repuestos.Request{Method: http.MethodGet, Path: "/clientes"}
		require.NoError(t, repuestos.MetricsRequestInterceptor(collector)(ctx, req))

		req.Metadata["start_time"] = time.Now().Add(-time.Millisecond)

		require.NoError(t, repuestos.MetricsResponseInterceptor(collector)(ctx, req, &repuestos.Response{StatusCode: status}))
	}

	metrics, ok := collector.GetMetrics("GET /clientes")
	require.True(t, ok)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Positive(t, metrics.AverageLatency)
	assert.Equal(t, []string{"GET /clientes", "GET /clientes"}, notified)

	_, ok = collector.GetMetrics("DELETE /clientes/1")
	assert.False(t, ok)
}
