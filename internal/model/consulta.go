package model

import (
	"regexp"
	"strings"
)

var reVeinte = regexp.MustCompile(`^\s*20\s*/\s*\S+`)

// DisplayAV renders a raw acuity value in Snellen "20/x" form. Values the
// user already typed with the 20/ prefix are kept (whitespace collapsed),
// empty values render as the em-dash placeholder. Stored values stay raw.
func DisplayAV(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return "—"
	}
	if reVeinte.MatchString(s) {
		return strings.Join(strings.Fields(s), "")
	}
	return "20/" + s
}

// Consulta is one clinical examination. Consultas belong to exactly one
// Paciente and are embedded in its record, addressed by position. Deleting
// one shifts every later index, so external references by index must be
// re-resolved after any deletion, never cached.
type Consulta struct {
	Fecha  string `json:"fecha"`
	Motivo string `json:"motivo"`
	Notas  string `json:"notas"`

	AV      AgudezaVisual `json:"av"`
	RxPx    RxPaciente    `json:"rxPx"`
	RxFinal RxFinal       `json:"rxFinal"`

	Tx  string `json:"tx"`
	Dx  string `json:"dx"`
	Obs string `json:"obs"`
}

// AgudezaVisual holds the raw acuity values (without the 20/ prefix) for
// both eyes.
type AgudezaVisual struct {
	OD OjoAV `json:"od"`
	OI OjoAV `json:"oi"`
}

// OjoAV is the acuity of one eye: with correction, without, and with
// pinhole (agujero estenopeico).
type OjoAV struct {
	CC string `json:"cc"`
	SC string `json:"sc"`
	AE string `json:"ae"`
}

// RxPaciente is the prescription the patient walked in with.
type RxPaciente struct {
	OD RxOjo  `json:"od"`
	OI RxOjo  `json:"oi"`
	Dx string `json:"dx"`
}

// RxOjo is the refraction of one eye.
type RxOjo struct {
	Sph  string `json:"sph"`
	Cyl  string `json:"cyl"`
	Axis string `json:"axis"`
	Add  string `json:"add"`
}

// RxFinal is the prescribed correction, which additionally carries the
// naso-pupillary distance and segment height per eye.
type RxFinal struct {
	OD RxFinalOjo `json:"od"`
	OI RxFinalOjo `json:"oi"`
}

type RxFinalOjo struct {
	Sph  string `json:"sph"`
	Cyl  string `json:"cyl"`
	Axis string `json:"axis"`
	Add  string `json:"add"`
	DNP  string `json:"dnp"`
	Alt  string `json:"alt"`
}
