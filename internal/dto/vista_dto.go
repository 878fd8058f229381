package dto

import (
	"github.com/JavierVixer/OCCHIAPP/internal/model"

	"github.com/shopspring/decimal"
)

// ExpedienteVista is the display-ready composition of one patient record:
// demographics with the birth date already formatted, consultations and
// financial movements re-sorted chronologically, money totals, and the
// resolved next appointment (nil when there is none anywhere).
type ExpedienteVista struct {
	Datos DatosGenerales `json:"datos"`

	Motivo       string `json:"motivo"`
	UsasLentes   bool   `json:"usasLentes"`
	DesdeLentes  string `json:"desdeLentes"`
	UltimoExamen string `json:"ultimoExamen"`

	Sintomas   model.Sintomas   `json:"sintomas"`
	HistMed    model.HistMed    `json:"histmed"`
	HistOcular model.HistOcular `json:"histOcular"`

	Consultas []ConsultaRow   `json:"consultas"`
	Finanzas  []MovimientoRow `json:"finanzas"`

	TotalVendido decimal.Decimal `json:"totalVendido"`
	TotalPagado  decimal.Decimal `json:"totalPagado"`
	Adeudo       decimal.Decimal `json:"adeudo"`

	ProximaCita *CitaPresentable `json:"proximaCita"`
}

// DatosGenerales is the header section of the record sheet.
type DatosGenerales struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	FechaNac  string `json:"fecha_nac"`
	Edad      string `json:"edad"`
	Genero    string `json:"genero"`
	Ocupacion string `json:"ocupacion"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo"`
}

// ConsultaRow is one consultation line. Indice is the current position in
// the patient's consulta slice; it is only valid until the next deletion.
type ConsultaRow struct {
	Indice int    `json:"indice"`
	Fecha  string `json:"fecha"`
	Notas  string `json:"notas"`
}

// MovimientoRow is one financial line with the date formatted and the
// amount kept verbatim.
type MovimientoRow struct {
	Tipo  string `json:"tipo"`
	Fecha string `json:"fecha"`
	Monto string `json:"monto"`
}
