// Package http is the transport used by the resource clients. It joins paths
// onto the API base URL, encodes JSON bodies, runs interceptors, and maps
// non-2xx responses to *repuestos.HTTPError.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/hashicorp/go-retryablehttp"
)

// Client is a JSON HTTP client bound to one base URL.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	logger       repuestos.Logger
	debug        bool
	userAgent    string
	interceptors *repuestos.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request and failure logging.
func WithLogger(logger repuestos.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig enables retries on connection errors, 429 and 5xx responses.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithTimeout sets a per-attempt timeout. Zero leaves requests bounded only by their context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *repuestos.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithHTTPClient replaces the underlying *http.Client, e.g. to use a test transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a new client. Without options a request is attempted once.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.RequestLogHook = client.logRetry

	return client
}

// Request is one API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a received API response with the body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do performs the request. A non-2xx status returns both the response and a
// *repuestos.HTTPError. A failure to get any response wraps repuestos.ErrTransport.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var payload []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		payload = encoded
	}

	intercepted := &repuestos.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: make(http.Header),
		Body:    payload,
	}
	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.newRequest(ctx, req, intercepted)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
			"body":   string(payload),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &repuestos.Response{Error: err})

		if c.logger != nil {
			c.logger.Error("HTTP Request Failed", map[string]interface{}{
				"method": req.Method,
				"path":   req.Path,
				"error":  err.Error(),
			})
		}

		return nil, fmt.Errorf("%w: %s %s: %w", repuestos.ErrTransport, req.Method, req.Path, err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", repuestos.ErrTransport, err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		})
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &repuestos.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	})
	if err != nil {
		return resp, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		httpErr := repuestos.NewHTTPError(resp.StatusCode, req.Method, req.Path, body)

		if c.logger != nil {
			c.logger.Error("HTTP Error Response", map[string]interface{}{
				"method": req.Method,
				"path":   req.Path,
				"status": resp.StatusCode,
				"error":  httpErr.Message,
			})
		}

		return resp, httpErr
	}

	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, req *Request, intercepted *repuestos.Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body interface{}
	if intercepted.Body != nil {
		body = bytes.NewReader(intercepted.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, values := range intercepted.Headers {
		httpReq.Header.Del(key)

		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	return httpReq, nil
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 || c.logger == nil {
		return
	}

	c.logger.Warn("Retrying HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}
