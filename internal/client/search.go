package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/repuestos/internal/http"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
)

// EquivalenciasClient implements repuestos.EquivalenciasClient.
type EquivalenciasClient struct {
	*ResourceClient[repuestos.Equivalencia, repuestos.EquivalenciaCreateRequest, repuestos.EquivalenciaUpdateRequest]
}

// NewEquivalenciasClient creates a new equivalences client.
func NewEquivalenciasClient(httpClient *http.Client) *EquivalenciasClient {
	return &EquivalenciasClient{
		ResourceClient: NewResourceClient[repuestos.Equivalencia, repuestos.EquivalenciaCreateRequest, repuestos.EquivalenciaUpdateRequest](
			httpClient, repuestos.ResourceEquivalencias),
	}
}

// Search implements repuestos.EquivalenciasClient.Search. A blank code
// returns no codes without calling the API; any other code is sent as given.
func (c *EquivalenciasClient) Search(ctx context.Context, codigo string) ([]string, error) {
	if strings.TrimSpace(codigo) == "" {
		return []string{}, nil
	}

	resp, err := c.httpClient.Get(ctx, c.collectionPath()+"/search", url.Values{"codigo": []string{codigo}})
	if err != nil {
		return nil, fmt.Errorf("searching equivalencias for %q: %w", codigo, err)
	}

	var codes []string

	err = json.Unmarshal(resp.Body, &codes)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing equivalencias search: %w", repuestos.ErrDecoding, err)
	}

	if codes == nil {
		codes = []string{}
	}

	return codes, nil
}

// RepuestosClient implements repuestos.RepuestosClient.
type RepuestosClient struct {
	*ResourceClient[repuestos.Repuesto, repuestos.RepuestoCreateRequest, repuestos.RepuestoUpdateRequest]
}

// NewRepuestosClient creates a new parts client.
func NewRepuestosClient(httpClient *http.Client) *RepuestosClient {
	return &RepuestosClient{
		ResourceClient: NewResourceClient[repuestos.Repuesto, repuestos.RepuestoCreateRequest, repuestos.RepuestoUpdateRequest](
			httpClient, repuestos.ResourceRepuestos),
	}
}

// Search implements repuestos.RepuestosClient.Search.
func (c *RepuestosClient) Search(ctx context.Context, query string) ([]repuestos.Repuesto, error) {
	resp, err := c.httpClient.Get(ctx, c.collectionPath()+"/search", url.Values{"q": []string{query}})
	if err != nil {
		return nil, fmt.Errorf("searching repuestos for %q: %w", query, err)
	}

	return decodeList[repuestos.Repuesto](resp.Body, c.resource)
}

// VentasClient implements repuestos.VentasClient.
type VentasClient struct {
	*ResourceClient[repuestos.Venta, repuestos.VentaCreateRequest, repuestos.VentaUpdateRequest]
}

// NewVentasClient creates a new sales client.
func NewVentasClient(httpClient *http.Client) *VentasClient {
	return &VentasClient{
		ResourceClient: NewResourceClient[repuestos.Venta, repuestos.VentaCreateRequest, repuestos.VentaUpdateRequest](
			httpClient, repuestos.ResourceVentas),
	}
}

// ListWithDetails implements repuestos.VentasClient.ListWithDetails.
func (c *VentasClient) ListWithDetails(ctx context.Context) ([]repuestos.Venta, error) {
	resp, err := c.httpClient.Get(ctx, c.collectionPath(), url.Values{"include": []string{"cliente,repuesto"}})
	if err != nil {
		return nil, fmt.Errorf("listing ventas with details: %w", err)
	}

	return decodeList[repuestos.Venta](resp.Body, c.resource)
}

// Update implements repuestos.VentasClient.Update. When only one of cantidad
// and precio_unitario is given, the other is read from the current sale so
// that precio_total is always sent recomputed.
func (c *VentasClient) Update(ctx context.Context, id int, request *repuestos.VentaUpdateRequest) (*repuestos.Venta, error) {
	if request == nil || (request.Cantidad == nil) == (request.PrecioUnitario == nil) {
		return c.ResourceClient.Update(ctx, id, request)
	}

	err := repuestos.Validate(request)
	if err != nil {
		return nil, err
	}

	current, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	complete := *request
	if complete.Cantidad == nil {
		complete.Cantidad = &current.Cantidad
	}

	if complete.PrecioUnitario == nil {
		complete.PrecioUnitario = &current.PrecioUnitario
	}

	return c.ResourceClient.Update(ctx, id, &complete)
}
