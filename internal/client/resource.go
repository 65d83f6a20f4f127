package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/repuestos/internal/http"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
)

// ResourceClient implements repuestos.ResourceClient for one REST resource.
type ResourceClient[T repuestos.Entity, C any, U any] struct {
	httpClient *http.Client
	resource   string
}

// NewResourceClient creates a client for resource, e.g. "clientes".
func NewResourceClient[T repuestos.Entity, C any, U any](httpClient *http.Client, resource string) *ResourceClient[T, C, U] {
	return &ResourceClient[T, C, U]{
		httpClient: httpClient,
		resource:   resource,
	}
}

// Resource implements repuestos.ResourceClient.Resource.
func (c *ResourceClient[T, C, U]) Resource() string {
	return c.resource
}

func (c *ResourceClient[T, C, U]) collectionPath() string {
	return "/" + c.resource
}

func (c *ResourceClient[T, C, U]) itemPath(id int) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("%w: %d", repuestos.ErrInvalidID, id)
	}

	return c.collectionPath() + "/" + strconv.Itoa(id), nil
}

// List implements repuestos.ResourceClient.List. Records come back in server order.
func (c *ResourceClient[T, C, U]) List(ctx context.Context) ([]T, error) {
	resp, err := c.httpClient.Get(ctx, c.collectionPath(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.resource, err)
	}

	return decodeList[T](resp.Body, c.resource)
}

// Get implements repuestos.ResourceClient.Get.
func (c *ResourceClient[T, C, U]) Get(ctx context.Context, id int) (*T, error) {
	path, err := c.itemPath(id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", c.resource, id, err)
	}

	return decodeItem[T](resp.Body, c.resource)
}

// Create implements repuestos.ResourceClient.Create. The request is prepared
// and validated before it is sent.
func (c *ResourceClient[T, C, U]) Create(ctx context.Context, request *C) (*T, error) {
	err := checkRequest(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, c.collectionPath(), request)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resource, err)
	}

	return decodeItem[T](resp.Body, c.resource)
}

// Update implements repuestos.ResourceClient.Update. Only fields set in the
// request are sent.
func (c *ResourceClient[T, C, U]) Update(ctx context.Context, id int, request *U) (*T, error) {
	path, err := c.itemPath(id)
	if err != nil {
		return nil, err
	}

	err = checkRequest(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", c.resource, id, err)
	}

	return decodeItem[T](resp.Body, c.resource)
}

// Delete implements repuestos.ResourceClient.Delete. Any response body is ignored.
func (c *ResourceClient[T, C, U]) Delete(ctx context.Context, id int) error {
	path, err := c.itemPath(id)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", c.resource, id, err)
	}

	return nil
}

func checkRequest[R any](request *R) error {
	if request == nil {
		return fmt.Errorf("%w: request is required", repuestos.ErrValidation)
	}

	if preparer, ok := any(request).(repuestos.Preparer); ok {
		preparer.Prepare()
	}

	return repuestos.Validate(request)
}

func decodeList[T any](body []byte, resource string) ([]T, error) {
	var items []T

	err := json.Unmarshal(body, &items)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s list: %w", repuestos.ErrDecoding, resource, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

// decodeItem rejects a null body and records without a server-assigned key.
func decodeItem[T repuestos.Entity](body []byte, resource string) (*T, error) {
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: parsing %s: empty record", repuestos.ErrDecoding, resource)
	}

	var item T

	err := json.Unmarshal(body, &item)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", repuestos.ErrDecoding, resource, err)
	}

	if item.Key() <= 0 {
		return nil, fmt.Errorf("%w: parsing %s: missing key", repuestos.ErrDecoding, resource)
	}

	return &item, nil
}
