package dto

// CrearCitaRequest books an appointment. Fecha and Hora are the local
// wall-clock values from the form; the service converts them to one
// absolute UTC instant. IDPaciente is optional: walk-ins are booked by
// name alone and linked weakly.
type CrearCitaRequest struct {
	IDPaciente     string `json:"idPaciente"`
	PacienteNombre string `json:"pacienteNombre"`
	Motivo         string `json:"motivo" validate:"required"`
	Estado         string `json:"estado" validate:"required,oneof=Pendiente Confirmada Cancelada Atendida"`
	Notas          string `json:"notas"`
	Fecha          string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Hora           string `json:"hora" validate:"required,datetime=15:04"`
}

// ActualizarCitaRequest edits the mutable part of an existing cita:
// its state and notes, matching what the calendar UI allows.
type ActualizarCitaRequest struct {
	Estado string `json:"estado" validate:"required,oneof=Pendiente Confirmada Cancelada Atendida"`
	Notas  string `json:"notas"`
}

// CitaPresentable is an appointment rendered for display: local date and
// time split apart, placeholders already applied.
type CitaPresentable struct {
	Fecha  string `json:"fecha"`
	Hora   string `json:"hora"`
	Motivo string `json:"motivo"`
	Estado string `json:"estado"`
	Notas  string `json:"notas"`
}

// DiaConteo is the per-day appointment count used for calendar badges.
type DiaConteo struct {
	Dia   int `json:"dia"`
	Citas int `json:"citas"`
}
