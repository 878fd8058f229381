package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/JavierVixer/OCCHIAPP/internal/dates"
	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/identity"
	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"

	"github.com/rs/zerolog/log"
)

var (
	ErrPacienteNoEncontrado = errors.New("paciente no encontrado")
	ErrConsultaNoEncontrada = errors.New("consulta no encontrada")
)

// ExpedienteService owns the patient-record lifecycle: registration with
// id derivation, demographic edits that never touch the id, and the
// positional consultation and finance sub-collections.
type ExpedienteService interface {
	Crear(ctx context.Context, req dto.PacienteRequest) (model.Paciente, error)
	Actualizar(ctx context.Context, id string, req dto.PacienteRequest) (model.Paciente, error)
	Obtener(ctx context.Context, id string) (model.Paciente, error)
	Listar(ctx context.Context) []dto.PacienteRow
	Eliminar(ctx context.Context, id string) error

	AgregarConsulta(ctx context.Context, id string, req dto.ConsultaRequest) (int, error)
	ActualizarConsulta(ctx context.Context, id string, idx int, req dto.ConsultaRequest) error
	EliminarConsulta(ctx context.Context, id string, idx int) error

	AgregarMovimiento(ctx context.Context, id string, req dto.MovimientoRequest) error
}

type expedienteService struct {
	repo repository.PacienteRepository
	now  func() time.Time
}

func NewExpedienteService(repo repository.PacienteRepository) ExpedienteService {
	return &expedienteService{repo: repo, now: time.Now}
}

func (s *expedienteService) Crear(ctx context.Context, req dto.PacienteRequest) (model.Paciente, error) {
	p := fromRequest(req, s.now())
	base := identity.BuildID(p.Nombre, p.Genero, p.FechaNac)
	p.ID = identity.UniqueID(base, func(id string) bool { return s.repo.Exists(ctx, id) })
	p.Consultas = []model.Consulta{}
	p.Finanzas = []model.Movimiento{}
	p.Citas = []model.CitaLegacy{}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return model.Paciente{}, err
	}
	log.Info().Str("paciente_id", p.ID).Msg("expediente creado")
	return p, nil
}

// Actualizar edits demographics and anamnesis. The id computed at
// registration is carried forward untouched, and so are the embedded
// collections.
func (s *expedienteService) Actualizar(ctx context.Context, id string, req dto.PacienteRequest) (model.Paciente, error) {
	prev, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return model.Paciente{}, ErrPacienteNoEncontrado
	}
	p := fromRequest(req, s.now())
	p.ID = prev.ID
	p.Consultas = prev.Consultas
	p.Finanzas = prev.Finanzas
	p.Citas = prev.Citas

	if err := s.repo.Upsert(ctx, p); err != nil {
		return model.Paciente{}, err
	}
	return p, nil
}

func (s *expedienteService) Obtener(ctx context.Context, id string) (model.Paciente, error) {
	p, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return model.Paciente{}, ErrPacienteNoEncontrado
	}
	return p, nil
}

func (s *expedienteService) Listar(ctx context.Context) []dto.PacienteRow {
	pacientes := s.repo.LoadAll(ctx)
	rows := make([]dto.PacienteRow, len(pacientes))
	for i, p := range pacientes {
		edad := p.Edad
		if edad == "" {
			if a, ok := dates.Age(p.FechaNac, s.now()); ok {
				edad = strconv.Itoa(a)
			}
		}
		rows[i] = dto.PacienteRow{ID: p.ID, Nombre: p.Nombre, Genero: p.Genero, Edad: edad}
	}
	return rows
}

func (s *expedienteService) Eliminar(ctx context.Context, id string) error {
	if !s.repo.Exists(ctx, id) {
		return ErrPacienteNoEncontrado
	}
	// Agenda entries pointing here are left dangling on purpose; the
	// resolver tolerates them.
	return s.repo.RemoveByID(ctx, id)
}

// AgregarConsulta appends the exam and returns its position, which the
// caller needs to navigate to the saved consultation.
func (s *expedienteService) AgregarConsulta(ctx context.Context, id string, req dto.ConsultaRequest) (int, error) {
	p, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return 0, ErrPacienteNoEncontrado
	}
	p.Consultas = append(p.Consultas, consultaFromRequest(req))
	if err := s.repo.Upsert(ctx, p); err != nil {
		return 0, err
	}
	return len(p.Consultas) - 1, nil
}

func (s *expedienteService) ActualizarConsulta(ctx context.Context, id string, idx int, req dto.ConsultaRequest) error {
	p, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return ErrPacienteNoEncontrado
	}
	if idx < 0 || idx >= len(p.Consultas) {
		return ErrConsultaNoEncontrada
	}
	p.Consultas[idx] = consultaFromRequest(req)
	return s.repo.Upsert(ctx, p)
}

// EliminarConsulta removes the consultation at idx. Every later
// consultation shifts down one position; references held to old indices
// are stale from here on. That shift is the documented contract of
// positional addressing, kept for compatibility with existing records.
func (s *expedienteService) EliminarConsulta(ctx context.Context, id string, idx int) error {
	p, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return ErrPacienteNoEncontrado
	}
	if idx < 0 || idx >= len(p.Consultas) {
		return ErrConsultaNoEncontrada
	}
	p.Consultas = append(p.Consultas[:idx], p.Consultas[idx+1:]...)
	return s.repo.Upsert(ctx, p)
}

func (s *expedienteService) AgregarMovimiento(ctx context.Context, id string, req dto.MovimientoRequest) error {
	p, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return ErrPacienteNoEncontrado
	}
	p.Finanzas = append(p.Finanzas, model.Movimiento{Tipo: req.Tipo, Fecha: req.Fecha, Monto: req.Monto})
	return s.repo.Upsert(ctx, p)
}

func fromRequest(req dto.PacienteRequest, now time.Time) model.Paciente {
	edad := req.Edad
	if edad == "" {
		if a, ok := dates.Age(req.FechaNac, now); ok {
			edad = strconv.Itoa(a)
		}
	}
	return model.Paciente{
		Nombre:       req.Nombre,
		FechaNac:     req.FechaNac,
		Edad:         edad,
		Telefono:     req.Telefono,
		Correo:       req.Correo,
		Ocupacion:    req.Ocupacion,
		Genero:       req.Genero,
		Motivo:       req.Motivo,
		UsasLentes:   req.UsasLentes,
		DesdeLentes:  req.DesdeLentes,
		UltimoExamen: req.UltimoExamen,
		Sintomas:     req.Sintomas,
		HistMed:      req.HistMed,
		HistOcular:   req.HistOcular,
	}
}

func consultaFromRequest(req dto.ConsultaRequest) model.Consulta {
	return model.Consulta{
		Fecha:   req.Fecha,
		Motivo:  req.Motivo,
		Notas:   req.Notas,
		AV:      req.AV,
		RxPx:    req.RxPx,
		RxFinal: req.RxFinal,
		Tx:      req.Tx,
		Dx:      req.Dx,
		Obs:     req.Obs,
	}
}
