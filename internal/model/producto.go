package model

import "github.com/shopspring/decimal"

// Producto is one inventory item (frames, lenses, accessories). IDs come
// from a monotonic counter and are never reused or renumbered: deleting
// an item leaves every other id untouched and the counter keeps climbing.
type Producto struct {
	ID       string          `json:"id"`
	Modelo   string          `json:"modelo"`
	Linea    string          `json:"linea"`
	Precio   decimal.Decimal `json:"precio"`
	Cantidad int             `json:"cantidad"`
}
