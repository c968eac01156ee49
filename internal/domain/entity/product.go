package entity

// Product ítem del catálogo externo. El motor solo consulta su existencia.
type Product struct {
	ItemCode string
	ItemName string
}
