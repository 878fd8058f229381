package dto

import "github.com/JavierVixer/OCCHIAPP/internal/model"

// PacienteRequest carries the full intake form. Only name and birth date
// are mandatory; everything else is free text the clinic may or may not
// fill in.
type PacienteRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	FechaNac  string `json:"fecha_nac" validate:"required"`
	Edad      string `json:"edad"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo"`
	Ocupacion string `json:"ocupacion"`
	Genero    string `json:"genero"`

	Motivo       string `json:"motivo"`
	UsasLentes   bool   `json:"usasLentes"`
	DesdeLentes  string `json:"desdeLentes"`
	UltimoExamen string `json:"ultimoExamen"`

	Sintomas   model.Sintomas   `json:"sintomas"`
	HistMed    model.HistMed    `json:"histmed"`
	HistOcular model.HistOcular `json:"histOcular"`
}

// PacienteRow is one row of the records list.
type PacienteRow struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Genero string `json:"genero"`
	Edad   string `json:"edad"`
}

// ConsultaRequest is the clinical exam form. The exam date is the only
// required field.
type ConsultaRequest struct {
	Fecha  string `json:"fecha" validate:"required"`
	Motivo string `json:"motivo"`
	Notas  string `json:"notas"`

	AV      model.AgudezaVisual `json:"av"`
	RxPx    model.RxPaciente    `json:"rxPx"`
	RxFinal model.RxFinal       `json:"rxFinal"`

	Tx  string `json:"tx"`
	Dx  string `json:"dx"`
	Obs string `json:"obs"`
}

// MovimientoRequest adds one financial entry to a patient.
type MovimientoRequest struct {
	Tipo  string `json:"tipo" validate:"required"`
	Fecha string `json:"fecha" validate:"required"`
	Monto string `json:"monto" validate:"required"`
}
