// Package repuestos provides types, interfaces, and helpers for working with the
// spare-parts administration REST API.
//
// # Overview
//
// The repuestos package defines the domain types (Cliente, Equivalencia,
// Proveedor, Repuesto, Venta, Usuario), their create and update request types,
// and the interfaces for resource-oriented clients (ClientesClient,
// EquivalenciasClient, ...). A concrete implementation of these clients is
// provided by the repuestosclient package, which wires configuration and
// transport. Most consumers should import repuestosclient to construct a client
// and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/repuestos/pkg/repuestos"
//	  "github.com/fivetwenty-io/repuestos/pkg/repuestosclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := repuestosclient.New(&repuestos.Config{APIEndpoint: "https://api.example.com/api"})
//	  if err != nil { log.Fatal(err) }
//
//	  clientes, err := cli.Clientes().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = clientes
//	}
//
// # Keys
//
// Every entity implements Entity. Key returns the server-assigned primary key
// (id_cliente, id_repuesto, ...). Keys are never assigned by the client and
// create requests carry no key field.
//
// # Money
//
// Prices are decimal.Decimal values. Importing this package sets
// decimal.MarshalJSONWithoutQuotes to true for the whole process, so every
// decimal in the program encodes as a JSON number, which is what the API
// exchanges.
//
// # Errors
//
// A response with a non-2xx status is returned as *HTTPError. Transport failures
// wrap ErrTransport, undecodable bodies wrap ErrDecoding, and request payloads
// rejected before dispatch are returned as *ValidationError (wrapping
// ErrValidation). Helpers such as IsNotFound and IsStatus branch on common
// cases.
//
// # Interceptors and notifications
//
// InterceptorChain lets callers observe or decorate every request, for example
// with LoggingInterceptor or RequestIDInterceptor. Notifier receives an Event
// for every successful mutation made through a store (see package store); the
// NATS implementation publishes them for other consoles to pick up.
package repuestos
