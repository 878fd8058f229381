package service

import (
	"context"
	"testing"
	"time"

	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"
	"github.com/JavierVixer/OCCHIAPP/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpedienteFixture(t *testing.T) (*expedienteService, repository.PacienteRepository) {
	t.Helper()
	repo := repository.NewPacienteRepository(storage.NewMemory())
	return &expedienteService{
		repo: repo,
		now:  func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) },
	}, repo
}

func TestCrearDerivaIDYResuelveColisiones(t *testing.T) {
	ctx := context.Background()
	svc, _ := newExpedienteFixture(t)

	req := dto.PacienteRequest{Nombre: "Ana López", Genero: "Femenino", FechaNac: "1990-01-01"}

	p1, err := svc.Crear(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "PFAL01011990", p1.ID)

	p2, err := svc.Crear(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "PFAL01011990-2", p2.ID)

	p3, err := svc.Crear(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "PFAL01011990-3", p3.ID)
}

func TestCrearCalculaEdadCuandoFalta(t *testing.T) {
	ctx := context.Background()
	svc, _ := newExpedienteFixture(t)

	p, err := svc.Crear(ctx, dto.PacienteRequest{Nombre: "Luis Mora", Genero: "Masculino", FechaNac: "1990-09-01"})
	require.NoError(t, err)
	assert.Equal(t, "35", p.Edad)

	assert.NotNil(t, p.Consultas)
	assert.NotNil(t, p.Finanzas)
}

func TestActualizarPreservaIDYColecciones(t *testing.T) {
	ctx := context.Background()
	svc, _ := newExpedienteFixture(t)

	p, err := svc.Crear(ctx, dto.PacienteRequest{Nombre: "Ana López", Genero: "Femenino", FechaNac: "1990-01-01"})
	require.NoError(t, err)
	_, err = svc.AgregarConsulta(ctx, p.ID, dto.ConsultaRequest{Fecha: "2026-01-10", Notas: "primera"})
	require.NoError(t, err)

	// A name and birth date change never re-derives the id.
	upd, err := svc.Actualizar(ctx, p.ID, dto.PacienteRequest{Nombre: "Ana Martínez", Genero: "Femenino", FechaNac: "1991-02-02"})
	require.NoError(t, err)
	assert.Equal(t, p.ID, upd.ID)
	assert.Equal(t, "Ana Martínez", upd.Nombre)
	require.Len(t, upd.Consultas, 1)
	assert.Equal(t, "primera", upd.Consultas[0].Notas)
}

func TestActualizarNoEncontrado(t *testing.T) {
	svc, _ := newExpedienteFixture(t)
	_, err := svc.Actualizar(context.Background(), "PX00000000", dto.PacienteRequest{Nombre: "Nadie"})
	assert.ErrorIs(t, err, ErrPacienteNoEncontrado)
}

func TestAgregarConsultaDevuelveIndice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newExpedienteFixture(t)

	p, err := svc.Crear(ctx, dto.PacienteRequest{Nombre: "Ana López", Genero: "Femenino", FechaNac: "1990-01-01"})
	require.NoError(t, err)

	idx, err := svc.AgregarConsulta(ctx, p.ID, dto.ConsultaRequest{Fecha: "2026-01-10"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = svc.AgregarConsulta(ctx, p.ID, dto.ConsultaRequest{Fecha: "2026-02-10"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestEliminarConsultaDesplazaPosiciones(t *testing.T) {
	ctx := context.Background()
	svc, repo := newExpedienteFixture(t)

	p, err := svc.Crear(ctx, dto.PacienteRequest{Nombre: "Ana López", Genero: "Femenino", FechaNac: "1990-01-01"})
	require.NoError(t, err)
	for _, notas := range []string{"a", "b", "c"} {
		_, err := svc.AgregarConsulta(ctx, p.ID, dto.ConsultaRequest{Fecha: "2026-01-10", Notas: notas})
		require.NoError(t, err)
	}

	require.NoError(t, svc.EliminarConsulta(ctx, p.ID, 0))

	got, ok := repo.FindByID(ctx, p.ID)
	require.True(t, ok)
	require.Len(t, got.Consultas, 2)
	assert.Equal(t, "b", got.Consultas[0].Notas)
	assert.Equal(t, "c", got.Consultas[1].Notas)

	assert.ErrorIs(t, svc.EliminarConsulta(ctx, p.ID, 5), ErrConsultaNoEncontrada)
	assert.ErrorIs(t, svc.EliminarConsulta(ctx, p.ID, -1), ErrConsultaNoEncontrada)
}

func TestAgregarMovimiento(t *testing.T) {
	ctx := context.Background()
	svc, repo := newExpedienteFixture(t)

	p, err := svc.Crear(ctx, dto.PacienteRequest{Nombre: "Ana López", Genero: "Femenino", FechaNac: "1990-01-01"})
	require.NoError(t, err)

	require.NoError(t, svc.AgregarMovimiento(ctx, p.ID, dto.MovimientoRequest{Tipo: "venta", Fecha: "2026-03-01", Monto: "1500"}))

	got, ok := repo.FindByID(ctx, p.ID)
	require.True(t, ok)
	require.Len(t, got.Finanzas, 1)
	assert.Equal(t, model.Movimiento{Tipo: "venta", Fecha: "2026-03-01", Monto: "1500"}, got.Finanzas[0])
}

func TestEliminarPaciente(t *testing.T) {
	ctx := context.Background()
	svc, repo := newExpedienteFixture(t)

	p, err := svc.Crear(ctx, dto.PacienteRequest{Nombre: "Ana López", Genero: "Femenino", FechaNac: "1990-01-01"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(ctx, p.ID))
	assert.False(t, repo.Exists(ctx, p.ID))
	assert.ErrorIs(t, svc.Eliminar(ctx, p.ID), ErrPacienteNoEncontrado)
}
