package service

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/JavierVixer/OCCHIAPP/internal/dates"
	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrCitaNoEncontrada = errors.New("cita no encontrada")

// AgendaService manages the clinic calendar. Appointments reference
// patients weakly: by id when one was picked at booking time, by exact
// name otherwise, and a dangling reference is never an error.
type AgendaService interface {
	Crear(ctx context.Context, req dto.CrearCitaRequest) (model.Cita, error)
	Actualizar(ctx context.Context, idCita string, req dto.ActualizarCitaRequest) (model.Cita, error)
	Eliminar(ctx context.Context, idCita string) error
	Listar(ctx context.Context) []model.Cita

	ProximasN(ctx context.Context, n int) []dto.CitaPresentable
	DelDia(ctx context.Context, fecha string) ([]model.Cita, error)
	ConteoPorDia(ctx context.Context, anio, mes int) []dto.DiaConteo

	CitasDePaciente(ctx context.Context, idPaciente, nombre string) []model.Cita
	ProximaCita(ctx context.Context, p model.Paciente) *dto.CitaPresentable
}

type agendaService struct {
	repo repository.AgendaRepository
	loc  *time.Location
	now  func() time.Time
}

func NewAgendaService(repo repository.AgendaRepository) AgendaService {
	return &agendaService{repo: repo, loc: time.Local, now: time.Now}
}

func (s *agendaService) Crear(ctx context.Context, req dto.CrearCitaRequest) (model.Cita, error) {
	when, err := time.ParseInLocation("2006-01-02 15:04", req.Fecha+" "+req.Hora, s.loc)
	if err != nil {
		return model.Cita{}, err
	}
	c := model.Cita{
		IDCita:         uuid.NewString(),
		IDPaciente:     req.IDPaciente,
		PacienteNombre: req.PacienteNombre,
		Motivo:         req.Motivo,
		Estado:         req.Estado,
		Notas:          req.Notas,
		FechaISO:       when.UTC().Format(time.RFC3339),
		CreatedAtISO:   s.now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Upsert(ctx, c); err != nil {
		return model.Cita{}, err
	}
	log.Info().Str("cita_id", c.IDCita).Str("fecha", c.FechaISO).Msg("cita agendada")
	return c, nil
}

func (s *agendaService) Actualizar(ctx context.Context, idCita string, req dto.ActualizarCitaRequest) (model.Cita, error) {
	c, ok := s.repo.FindByID(ctx, idCita)
	if !ok {
		return model.Cita{}, ErrCitaNoEncontrada
	}
	c.Estado = req.Estado
	c.Notas = req.Notas
	if err := s.repo.Upsert(ctx, c); err != nil {
		return model.Cita{}, err
	}
	return c, nil
}

func (s *agendaService) Eliminar(ctx context.Context, idCita string) error {
	if _, ok := s.repo.FindByID(ctx, idCita); !ok {
		return ErrCitaNoEncontrada
	}
	return s.repo.RemoveByID(ctx, idCita)
}

func (s *agendaService) Listar(ctx context.Context) []model.Cita {
	return s.repo.LoadAll(ctx)
}

// ProximasN returns the next n upcoming appointments across all patients.
// The future set is re-sorted before taking n; stores written before the
// sorted-on-save invariant may hold the collection in any order.
func (s *agendaService) ProximasN(ctx context.Context, n int) []dto.CitaPresentable {
	now := s.now()
	var futuras []model.Cita
	for _, c := range s.repo.LoadAll(ctx) {
		when, err := time.Parse(time.RFC3339, c.FechaISO)
		if err != nil || when.Before(now) {
			continue
		}
		futuras = append(futuras, c)
	}
	sort.SliceStable(futuras, func(i, j int) bool { return futuras[i].FechaISO < futuras[j].FechaISO })
	if len(futuras) > n {
		futuras = futuras[:n]
	}
	out := make([]dto.CitaPresentable, len(futuras))
	for i, c := range futuras {
		out[i] = s.presentable(c)
	}
	return out
}

// DelDia lists the appointments whose local date matches fecha
// (YYYY-MM-DD).
func (s *agendaService) DelDia(ctx context.Context, fecha string) ([]model.Cita, error) {
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, err
	}
	var out []model.Cita
	for _, c := range s.repo.LoadAll(ctx) {
		when, err := time.Parse(time.RFC3339, c.FechaISO)
		if err != nil {
			continue
		}
		if when.In(s.loc).Format("2006-01-02") == fecha {
			out = append(out, c)
		}
	}
	return out, nil
}

// ConteoPorDia counts appointments per local calendar day of one month,
// for the calendar badge view. Days with no appointments are omitted.
func (s *agendaService) ConteoPorDia(ctx context.Context, anio, mes int) []dto.DiaConteo {
	counts := map[int]int{}
	for _, c := range s.repo.LoadAll(ctx) {
		when, err := time.Parse(time.RFC3339, c.FechaISO)
		if err != nil {
			continue
		}
		local := when.In(s.loc)
		if local.Year() == anio && int(local.Month()) == mes {
			counts[local.Day()]++
		}
	}
	days := make([]int, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Ints(days)
	out := make([]dto.DiaConteo, len(days))
	for i, d := range days {
		out[i] = dto.DiaConteo{Dia: d, Citas: counts[d]}
	}
	return out
}

// CitasDePaciente resolves a patient's upcoming appointments. An id match
// wins; failing that, the appointment's stored name must equal the
// patient's, trimmed and case-folded. The name fallback also covers citas
// whose idPaciente is stale or dangling. Entries whose timestamp does not
// parse are skipped rather than surfaced as errors.
func (s *agendaService) CitasDePaciente(ctx context.Context, idPaciente, nombre string) []model.Cita {
	now := s.now()
	wantNombre := strings.ToLower(strings.TrimSpace(nombre))
	var out []model.Cita
	for _, c := range s.repo.LoadAll(ctx) {
		match := idPaciente != "" && c.IDPaciente == idPaciente
		if !match && wantNombre != "" {
			n := strings.ToLower(strings.TrimSpace(c.PacienteNombre))
			match = n != "" && n == wantNombre
		}
		if !match {
			continue
		}
		when, err := time.Parse(time.RFC3339, c.FechaISO)
		if err != nil || when.Before(now) {
			continue
		}
		out = append(out, c)
	}
	// LoadAll is already ordered by FechaISO, but legacy stores predate
	// that guarantee.
	sort.SliceStable(out, func(i, j int) bool { return out[i].FechaISO < out[j].FechaISO })
	return out
}

// ProximaCita picks the appointment shown on the record sheet. The shared
// agenda wins; when the patient has none there, the record's own embedded
// citas (a legacy of per-record scheduling) are consulted: first the
// earliest dated today or later, else the first entry outright.
func (s *agendaService) ProximaCita(ctx context.Context, p model.Paciente) *dto.CitaPresentable {
	citas := s.CitasDePaciente(ctx, p.ID, p.Nombre)
	if len(citas) > 0 {
		pc := s.presentable(citas[0])
		return &pc
	}
	if len(p.Citas) == 0 {
		return nil
	}

	legacy := make([]model.CitaLegacy, len(p.Citas))
	copy(legacy, p.Citas)
	sort.SliceStable(legacy, func(i, j int) bool {
		return dd8(legacy[i].Fecha) < dd8(legacy[j].Fecha)
	})
	// Day-major comparison of raw DDMMYYYY keys, sentinels included in the
	// scan. Quirky but it is what existing records were picked with.
	today := dates.Normalize(s.now().In(s.loc).Format("2006-01-02"))
	pick := legacy[0]
	for _, c := range legacy {
		if dd8(c.Fecha) >= today {
			pick = c
			break
		}
	}
	return &dto.CitaPresentable{
		Fecha:  orDash(pick.Fecha),
		Hora:   orDash(pick.Hora),
		Motivo: orDash(pick.Motivo),
		Estado: orDash(pick.Estado),
		Notas:  orDash(pick.Notas),
	}
}

func (s *agendaService) presentable(c model.Cita) dto.CitaPresentable {
	out := dto.CitaPresentable{
		Fecha:  "—",
		Hora:   "—",
		Motivo: orDash(c.Motivo),
		Estado: orDash(c.Estado),
		Notas:  c.Notas,
	}
	if when, err := time.Parse(time.RFC3339, c.FechaISO); err == nil {
		local := when.In(s.loc)
		out.Fecha = local.Format("02/01/2006")
		out.Hora = local.Format("15:04")
	}
	return out
}

var reFechaLegacy = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// dd8 is the legacy-citas ordering key: strict DD/MM/YYYY collapses to its
// digits, anything else to the sentinel. Narrower than dates.Normalize on
// purpose; embedded citas were only ever written in the slash form.
func dd8(fecha string) string {
	m := reFechaLegacy.FindStringSubmatch(fecha)
	if m == nil {
		return dates.Sentinel
	}
	return m[1] + m[2] + m[3]
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
