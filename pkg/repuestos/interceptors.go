package repuestos

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Request is the outgoing call as seen by interceptors. Headers set here are
// sent with the request.
type Request struct {
	Method   string
	Path     string
	Headers  http.Header
	Body     []byte
	Metadata map[string]interface{}
}

// Response is the outcome of a call as seen by interceptors. Error is set
// when no response was received.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor is called before a request is sent. Returning an error
// aborts the request.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after every attempt outcome, including failures.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) *InterceptorChain {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)

	return c
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) *InterceptorChain {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)

	return c
}

// ExecuteRequestInterceptors runs all request interceptors in order. A nil chain is a no-op.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors in order. A nil chain is a no-op.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method":     req.Method,
			"path":       req.Path,
			"request_id": req.Headers.Get(RequestIDHeader),
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses. Failures are logged at error level.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
			"request_id":  req.Headers.Get(RequestIDHeader),
		}

		switch {
		case resp.Error != nil:
			fields["error"] = resp.Error.Error()
			logger.Error("API Response Error", fields)
		case resp.StatusCode >= http.StatusBadRequest:
			logger.Error("API Response Error", fields)
		default:
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// RequestIDInterceptor sets a random X-Request-ID unless the caller already set one.
func RequestIDInterceptor() RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		if req.Headers.Get(RequestIDHeader) == "" {
			req.Headers.Set(RequestIDHeader, uuid.NewString())
		}

		return nil
	}
}

// Metrics holds per-endpoint call statistics.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector collects API metrics keyed by "METHOD /path".
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[string]*Metrics
	onChange func(endpoint string, metrics Metrics)
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metrics),
	}
}

// SetOnChange sets a callback for when metrics change.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a snapshot of the metrics for an endpoint.
func (m *MetricsCollector) GetMetrics(endpoint string) (Metrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.metrics[endpoint]
	if !ok {
		return Metrics{}, false
	}

	return *metrics, true
}

func (m *MetricsCollector) record(endpoint string, latency time.Duration, failed bool) {
	m.mu.Lock()

	metrics, ok := m.metrics[endpoint]
	if !ok {
		metrics = &Metrics{}
		m.metrics[endpoint] = metrics
	}

	metrics.TotalRequests++
	metrics.LastRequestTime = time.Now()

	if latency > 0 {
		metrics.TotalLatency += latency
		metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
	}

	if failed {
		metrics.TotalErrors++
	}

	snapshot := *metrics
	onChange := m.onChange
	m.mu.Unlock()

	if onChange != nil {
		onChange(endpoint, snapshot)
	}
}

// MetricsRequestInterceptor records request start time.
func MetricsRequestInterceptor(_ *MetricsCollector) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata["start_time"] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records response metrics.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		var latency time.Duration

		if startTime, ok := req.Metadata["start_time"].(time.Time); ok {
			latency = time.Since(startTime)
		}

		failed := resp.Error != nil || resp.StatusCode >= http.StatusBadRequest
		collector.record(fmt.Sprintf("%s %s", req.Method, req.Path), latency, failed)

		return nil
	}
}
