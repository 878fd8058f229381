package model

// Estados of an agenda entry.
const (
	EstadoPendiente  = "Pendiente"
	EstadoConfirmada = "Confirmada"
	EstadoCancelada  = "Cancelada"
	EstadoAtendida   = "Atendida"
)

// Estados lists the valid cita states in display order.
var Estados = []string{EstadoPendiente, EstadoConfirmada, EstadoCancelada, EstadoAtendida}

// Cita is a global agenda entry, stored independently of the patient.
// IDPaciente is a weak reference: empty when the cita was booked for a
// walk-in by name only, and allowed to dangle after a patient is deleted.
// Resolution prefers the id and falls back to a case-insensitive exact
// match on PacienteNombre.
type Cita struct {
	IDCita         string `json:"idCita"`
	IDPaciente     string `json:"idPaciente"`
	PacienteNombre string `json:"pacienteNombre"`
	Motivo         string `json:"motivo"`
	Estado         string `json:"estado"`
	Notas          string `json:"notas"`
	// FechaISO is the absolute instant in RFC 3339 UTC. The agenda
	// collection is kept sorted ascending by this field on every write.
	FechaISO     string `json:"fechaISO"`
	CreatedAtISO string `json:"createdAtISO"`
}
