package classify

import "sales-analytics/internal/model"

// DefaultConfig returns the built-in keyword table. Keywords cover both
// Spanish and English headers since uploads arrive in either. Only the
// sales role falls back to column type: a table with no recognizable
// sales header still gets its first numeric column treated as sales.
func DefaultConfig() Config {
	return Config{
		Roles: []RoleSpec{
			{
				Role:            model.RoleSales,
				Keywords:        []string{"venta", "sales", "total", "monto", "price", "precio", "revenue", "importe"},
				NumericFallback: true,
			},
			{
				Role:     model.RoleDate,
				Keywords: []string{"fecha", "date", "tiempo", "time", "periodo", "mes"},
			},
			{
				Role:     model.RoleProduct,
				Keywords: []string{"producto", "product", "item", "articulo", "sku"},
			},
			{
				Role:     model.RoleRegion,
				Keywords: []string{"region", "región", "pais", "país", "country", "ciudad", "city", "zona", "territorio"},
			},
			{
				Role:     model.RoleCustomer,
				Keywords: []string{"cliente", "customer", "client", "comprador", "buyer"},
			},
			{
				Role:     model.RoleQuantity,
				Keywords: []string{"cantidad", "quantity", "qty", "unidades", "units"},
			},
			{
				Role:     model.RoleCategory,
				Keywords: []string{"categoria", "categoría", "category", "rubro", "segmento", "segment"},
			},
			{
				Role:     model.RoleDiscount,
				Keywords: []string{"descuento", "discount", "rebaja", "promo"},
			},
			{
				Role:     model.RoleShipping,
				Keywords: []string{"envio", "envío", "shipping", "flete", "freight", "entrega", "delivery"},
			},
			{
				Role:     model.RoleProfit,
				Keywords: []string{"ganancia", "profit", "utilidad", "margen", "margin", "rentabilidad"},
			},
		},
	}
}
