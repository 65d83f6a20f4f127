package store

import (
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/shopspring/decimal"
)

// Summary holds the dashboard figures.
type Summary struct {
	Clientes    int             `json:"clientes"     yaml:"clientes"`
	Repuestos   int             `json:"repuestos"    yaml:"repuestos"`
	Ventas      int             `json:"ventas"       yaml:"ventas"`
	TotalVentas decimal.Decimal `json:"total_ventas" yaml:"total_ventas"`
	// SinEquivalencia counts parts with no equivalence assigned.
	SinEquivalencia int `json:"sin_equivalencia" yaml:"sin_equivalencia"`
}

// Summarize computes the dashboard figures. TotalVentas is the sum of every
// sale's precio_total.
func Summarize(clientes []repuestos.Cliente, parts []repuestos.Repuesto, ventas []repuestos.Venta) Summary {
	summary := Summary{
		Clientes:    len(clientes),
		Repuestos:   len(parts),
		Ventas:      len(ventas),
		TotalVentas: decimal.Zero,
	}

	for _, venta := range ventas {
		summary.TotalVentas = summary.TotalVentas.Add(venta.PrecioTotal)
	}

	for _, part := range parts {
		if !part.HasEquivalencia() {
			summary.SinEquivalencia++
		}
	}

	return summary
}
