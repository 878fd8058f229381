package dto

import "github.com/shopspring/decimal"

// ProductoRequest creates or edits an inventory item. The id is never
// part of the payload: creation assigns it from the counter and edits
// keep the one in the URL.
type ProductoRequest struct {
	Modelo   string          `json:"modelo" validate:"required"`
	Linea    string          `json:"linea" validate:"required"`
	Precio   decimal.Decimal `json:"precio" validate:"min=0"`
	Cantidad int             `json:"cantidad" validate:"min=0"`
}

// ProductoFilter narrows and orders the inventory listing. Search matches
// id, modelo, or linea (case-insensitive substring); Sort is one of
// modelo, linea, precio, cantidad, or empty for insertion order.
type ProductoFilter struct {
	Search string `form:"q"`
	Sort   string `form:"sort" validate:"omitempty,oneof=modelo linea precio cantidad"`
}
