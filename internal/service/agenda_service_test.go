package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"
	"github.com/JavierVixer/OCCHIAPP/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agendaNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newAgendaFixture(t *testing.T) (*agendaService, repository.AgendaRepository) {
	t.Helper()
	repo := repository.NewAgendaRepository(storage.NewMemory())
	return &agendaService{
		repo: repo,
		loc:  time.UTC,
		now:  func() time.Time { return agendaNow },
	}, repo
}

func TestCrearCitaConvierteAInstanteUTC(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAgendaFixture(t)

	c, err := svc.Crear(ctx, dto.CrearCitaRequest{
		PacienteNombre: "Ana López",
		Motivo:         "Examen",
		Estado:         model.EstadoPendiente,
		Fecha:          "2026-09-01",
		Hora:           "10:30",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.IDCita)
	assert.Equal(t, "2026-09-01T10:30:00Z", c.FechaISO)
	assert.Equal(t, agendaNow.Format(time.RFC3339), c.CreatedAtISO)
}

func TestActualizarSoloEstadoYNotas(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAgendaFixture(t)

	c, err := svc.Crear(ctx, dto.CrearCitaRequest{
		PacienteNombre: "Ana López", Motivo: "Examen", Estado: model.EstadoPendiente,
		Fecha: "2026-09-01", Hora: "10:30",
	})
	require.NoError(t, err)

	upd, err := svc.Actualizar(ctx, c.IDCita, dto.ActualizarCitaRequest{Estado: model.EstadoConfirmada, Notas: "trae su rx"})
	require.NoError(t, err)
	assert.Equal(t, model.EstadoConfirmada, upd.Estado)
	assert.Equal(t, "trae su rx", upd.Notas)
	assert.Equal(t, c.FechaISO, upd.FechaISO)

	_, err = svc.Actualizar(ctx, "no-existe", dto.ActualizarCitaRequest{Estado: model.EstadoConfirmada})
	assert.ErrorIs(t, err, ErrCitaNoEncontrada)
}

func TestCitasDePacientePrefiereIDYCaeANombre(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAgendaFixture(t)

	seed := []model.Cita{
		{IDCita: "c1", IDPaciente: "PFAL01011990", PacienteNombre: "otro nombre", Estado: model.EstadoPendiente, FechaISO: "2026-09-02T10:00:00Z"},
		{IDCita: "c2", PacienteNombre: "  ana lópez ", Estado: model.EstadoPendiente, FechaISO: "2026-09-03T10:00:00Z"},
		{IDCita: "c3", PacienteNombre: "Ana López", Estado: model.EstadoPendiente, FechaISO: "2026-01-01T10:00:00Z"}, // past
		{IDCita: "c4", PacienteNombre: "Ana López", Estado: model.EstadoPendiente, FechaISO: "rota"},
		{IDCita: "c5", IDPaciente: "POTRO", PacienteNombre: "Pedro Gómez", Estado: model.EstadoPendiente, FechaISO: "2026-09-04T10:00:00Z"},
	}
	for _, c := range seed {
		require.NoError(t, repo.Upsert(ctx, c))
	}

	citas := svc.CitasDePaciente(ctx, "PFAL01011990", "Ana López")
	require.Len(t, citas, 2)
	assert.Equal(t, "c1", citas[0].IDCita)
	assert.Equal(t, "c2", citas[1].IDCita)
}

func TestCitasDePacienteNombreCubreIDObsoleto(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAgendaFixture(t)

	// The cita carries an id that matches no current record, as happens
	// after a delete-and-reregister. The name still links it.
	require.NoError(t, repo.Upsert(ctx, model.Cita{
		IDCita: "c1", IDPaciente: "POTHER", PacienteNombre: "Ana Lopez",
		Estado: model.EstadoPendiente, FechaISO: "2026-09-02T10:00:00Z",
	}))

	citas := svc.CitasDePaciente(ctx, "PFAL01011990", "Ana Lopez")
	require.Len(t, citas, 1)
	assert.Equal(t, "c1", citas[0].IDCita)

	// A different name does not link it.
	assert.Empty(t, svc.CitasDePaciente(ctx, "PFAL01011990", "Luisa Mora"))
}

func TestProximaCitaUsaAgendaLuegoLegado(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAgendaFixture(t)

	p := model.Paciente{ID: "PFAL01011990", Nombre: "Ana López"}

	// No appointments anywhere.
	assert.Nil(t, svc.ProximaCita(ctx, p))

	// Legacy embedded citas are ordered and picked by their raw DDMMYYYY
	// keys, day-major. At 28/08/2026 the key "30072026" compares not lower
	// than "28082026" while "01092026" does, so 30/07 wins over 01/09.
	p.Citas = []model.CitaLegacy{
		{Fecha: "01/09/2026", Hora: "11:00", Motivo: "septiembre"},
		{Fecha: "30/07/2026", Hora: "09:00", Motivo: "julio"},
	}
	pc := svc.ProximaCita(ctx, p)
	require.NotNil(t, pc)
	assert.Equal(t, "julio", pc.Motivo)
	assert.Equal(t, "30/07/2026", pc.Fecha)

	// All legacy citas in the past: the first entry is still shown.
	p.Citas = []model.CitaLegacy{{Fecha: "01/01/2020", Hora: "", Motivo: "vieja"}}
	pc = svc.ProximaCita(ctx, p)
	require.NotNil(t, pc)
	assert.Equal(t, "vieja", pc.Motivo)
	assert.Equal(t, "—", pc.Hora)

	// A shared-agenda hit takes precedence over everything embedded.
	require.NoError(t, repo.Upsert(ctx, model.Cita{
		IDCita: "c9", IDPaciente: p.ID, Estado: model.EstadoConfirmada,
		Motivo: "agenda", FechaISO: "2026-09-10T15:00:00Z",
	}))
	pc = svc.ProximaCita(ctx, p)
	require.NotNil(t, pc)
	assert.Equal(t, "agenda", pc.Motivo)
	assert.Equal(t, "10/09/2026", pc.Fecha)
	assert.Equal(t, "15:00", pc.Hora)
}

func TestProximasNYDelDia(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAgendaFixture(t)

	seed := []model.Cita{
		{IDCita: "a", Estado: model.EstadoPendiente, Motivo: "m1", FechaISO: "2026-08-29T10:00:00Z"},
		{IDCita: "b", Estado: model.EstadoPendiente, Motivo: "m2", FechaISO: "2026-08-30T10:00:00Z"},
		{IDCita: "c", Estado: model.EstadoPendiente, Motivo: "m3", FechaISO: "2026-08-31T10:00:00Z"},
		{IDCita: "d", Estado: model.EstadoPendiente, Motivo: "pasada", FechaISO: "2026-08-01T10:00:00Z"},
	}
	for _, c := range seed {
		require.NoError(t, repo.Upsert(ctx, c))
	}

	prox := svc.ProximasN(ctx, 2)
	require.Len(t, prox, 2)
	assert.Equal(t, "m1", prox[0].Motivo)
	assert.Equal(t, "m2", prox[1].Motivo)

	dia, err := svc.DelDia(ctx, "2026-08-30")
	require.NoError(t, err)
	require.Len(t, dia, 1)
	assert.Equal(t, "b", dia[0].IDCita)

	_, err = svc.DelDia(ctx, "30/08/2026")
	assert.Error(t, err)
}

func TestProximasNReordenaAlmacenSinOrden(t *testing.T) {
	ctx := context.Background()

	// Stores written before the sorted-on-save invariant can hold the
	// collection in any order; seed one directly, bypassing the repo.
	store := storage.NewMemory()
	raw, err := json.Marshal([]model.Cita{
		{IDCita: "b", Estado: model.EstadoPendiente, Motivo: "m2", FechaISO: "2026-09-10T10:00:00Z"},
		{IDCita: "a", Estado: model.EstadoPendiente, Motivo: "m1", FechaISO: "2026-08-30T10:00:00Z"},
		{IDCita: "c", Estado: model.EstadoPendiente, Motivo: "m3", FechaISO: "2026-09-01T10:00:00Z"},
	})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyAgenda, raw))

	svc := &agendaService{
		repo: repository.NewAgendaRepository(store),
		loc:  time.UTC,
		now:  func() time.Time { return agendaNow },
	}

	prox := svc.ProximasN(ctx, 2)
	require.Len(t, prox, 2)
	assert.Equal(t, "m1", prox[0].Motivo)
	assert.Equal(t, "m3", prox[1].Motivo)
}

func TestConteoPorDia(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAgendaFixture(t)

	seed := []model.Cita{
		{IDCita: "a", Estado: model.EstadoPendiente, FechaISO: "2026-09-01T10:00:00Z"},
		{IDCita: "b", Estado: model.EstadoPendiente, FechaISO: "2026-09-01T16:00:00Z"},
		{IDCita: "c", Estado: model.EstadoPendiente, FechaISO: "2026-09-15T10:00:00Z"},
		{IDCita: "d", Estado: model.EstadoPendiente, FechaISO: "2026-10-01T10:00:00Z"},
	}
	for _, c := range seed {
		require.NoError(t, repo.Upsert(ctx, c))
	}

	conteo := svc.ConteoPorDia(ctx, 2026, 9)
	assert.Equal(t, []dto.DiaConteo{{Dia: 1, Citas: 2}, {Dia: 15, Citas: 1}}, conteo)
}

func TestEliminarCita(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAgendaFixture(t)

	c, err := svc.Crear(ctx, dto.CrearCitaRequest{
		PacienteNombre: "Ana", Motivo: "x", Estado: model.EstadoPendiente,
		Fecha: "2026-09-01", Hora: "10:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(ctx, c.IDCita))
	assert.ErrorIs(t, svc.Eliminar(ctx, c.IDCita), ErrCitaNoEncontrada)
}
