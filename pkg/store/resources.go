package store

import (
	"context"

	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
)

// Store aliases for each resource.
type (
	ClientesStore      = Store[repuestos.Cliente, repuestos.ClienteCreateRequest, repuestos.ClienteUpdateRequest]
	EquivalenciasStore = Store[repuestos.Equivalencia, repuestos.EquivalenciaCreateRequest, repuestos.EquivalenciaUpdateRequest]
	ProveedoresStore   = Store[repuestos.Proveedor, repuestos.ProveedorCreateRequest, repuestos.ProveedorUpdateRequest]
	RepuestosStore     = Store[repuestos.Repuesto, repuestos.RepuestoCreateRequest, repuestos.RepuestoUpdateRequest]
	VentasStore        = Store[repuestos.Venta, repuestos.VentaCreateRequest, repuestos.VentaUpdateRequest]
	UsuariosStore      = Store[repuestos.Usuario, repuestos.UsuarioCreateRequest, repuestos.UsuarioUpdateRequest]
)

// NewClientes creates a customers store.
func NewClientes(ctx context.Context, client repuestos.ClientesClient, opts ...Option) *ClientesStore {
	return New[repuestos.Cliente, repuestos.ClienteCreateRequest, repuestos.ClienteUpdateRequest](ctx, client, opts...)
}

// NewEquivalencias creates an equivalences store.
func NewEquivalencias(ctx context.Context, client repuestos.EquivalenciasClient, opts ...Option) *EquivalenciasStore {
	return New[repuestos.Equivalencia, repuestos.EquivalenciaCreateRequest, repuestos.EquivalenciaUpdateRequest](ctx, client, opts...)
}

// NewProveedores creates a suppliers store.
func NewProveedores(ctx context.Context, client repuestos.ProveedoresClient, opts ...Option) *ProveedoresStore {
	return New[repuestos.Proveedor, repuestos.ProveedorCreateRequest, repuestos.ProveedorUpdateRequest](ctx, client, opts...)
}

// NewRepuestos creates a parts store.
func NewRepuestos(ctx context.Context, client repuestos.RepuestosClient, opts ...Option) *RepuestosStore {
	return New[repuestos.Repuesto, repuestos.RepuestoCreateRequest, repuestos.RepuestoUpdateRequest](ctx, client, opts...)
}

// NewVentas creates a sales store.
func NewVentas(ctx context.Context, client repuestos.VentasClient, opts ...Option) *VentasStore {
	return New[repuestos.Venta, repuestos.VentaCreateRequest, repuestos.VentaUpdateRequest](ctx, client, opts...)
}

// NewUsuarios creates a users store.
func NewUsuarios(ctx context.Context, client repuestos.UsuariosClient, opts ...Option) *UsuariosStore {
	return New[repuestos.Usuario, repuestos.UsuarioCreateRequest, repuestos.UsuarioUpdateRequest](ctx, client, opts...)
}

// Set holds one store per resource, built from the same client.
type Set struct {
	Clientes      *ClientesStore
	Equivalencias *EquivalenciasStore
	Proveedores   *ProveedoresStore
	Repuestos     *RepuestosStore
	Ventas        *VentasStore
	Usuarios      *UsuariosStore
}

// NewSet creates and loads a store for every resource of client.
func NewSet(ctx context.Context, client repuestos.Client, opts ...Option) *Set {
	return &Set{
		Clientes:      NewClientes(ctx, client.Clientes(), opts...),
		Equivalencias: NewEquivalencias(ctx, client.Equivalencias(), opts...),
		Proveedores:   NewProveedores(ctx, client.Proveedores(), opts...),
		Repuestos:     NewRepuestos(ctx, client.Repuestos(), opts...),
		Ventas:        NewVentas(ctx, client.Ventas(), opts...),
		Usuarios:      NewUsuarios(ctx, client.Usuarios(), opts...),
	}
}

// Summary returns the dashboard figures for the loaded stores.
func (s *Set) Summary() Summary {
	return Summarize(s.Clientes.Items(), s.Repuestos.Items(), s.Ventas.Items())
}
