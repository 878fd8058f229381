package service

import (
	"context"
	"testing"
	"time"

	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"
	"github.com/JavierVixer/OCCHIAPP/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVistaFixture(t *testing.T) (*vistaService, repository.PacienteRepository) {
	t.Helper()
	store := storage.NewMemory()
	pacientes := repository.NewPacienteRepository(store)
	agenda := &agendaService{
		repo: repository.NewAgendaRepository(store),
		loc:  time.UTC,
		now:  func() time.Time { return agendaNow },
	}
	return &vistaService{
		pacientes: pacientes,
		agenda:    agenda,
		now:       func() time.Time { return agendaNow },
	}, pacientes
}

func TestComponerTotalesYAdeudo(t *testing.T) {
	ctx := context.Background()
	svc, repo := newVistaFixture(t)

	require.NoError(t, repo.Upsert(ctx, model.Paciente{
		ID: "P1", Nombre: "Ana López", FechaNac: "1990-01-01",
		Finanzas: []model.Movimiento{
			{Tipo: "Venta", Fecha: "2026-01-10", Monto: "$1,200.50"},
			{Tipo: "pago", Fecha: "2026-02-10", Monto: "300"},
			{Tipo: "venta", Fecha: "2026-03-10", Monto: "no es número"},
			{Tipo: "ajuste", Fecha: "2026-03-11", Monto: "999"},
		},
	}))

	v, err := svc.Componer(ctx, "P1")
	require.NoError(t, err)
	assert.True(t, v.TotalVendido.Equal(decimal.RequireFromString("1200.50")), "vendido=%s", v.TotalVendido)
	assert.True(t, v.TotalPagado.Equal(decimal.RequireFromString("300")), "pagado=%s", v.TotalPagado)
	assert.True(t, v.Adeudo.Equal(decimal.RequireFromString("900.50")), "adeudo=%s", v.Adeudo)
}

func TestComponerAdeudoNuncaNegativo(t *testing.T) {
	ctx := context.Background()
	svc, repo := newVistaFixture(t)

	require.NoError(t, repo.Upsert(ctx, model.Paciente{
		ID: "P1", Nombre: "Ana",
		Finanzas: []model.Movimiento{
			{Tipo: "venta", Fecha: "2026-01-10", Monto: "100"},
			{Tipo: "pago", Fecha: "2026-02-10", Monto: "250"},
		},
	}))

	v, err := svc.Componer(ctx, "P1")
	require.NoError(t, err)
	assert.True(t, v.Adeudo.IsZero())
}

func TestComponerOrdenaConsultasConservandoIndices(t *testing.T) {
	ctx := context.Background()
	svc, repo := newVistaFixture(t)

	require.NoError(t, repo.Upsert(ctx, model.Paciente{
		ID: "P1", Nombre: "Ana",
		Consultas: []model.Consulta{
			{Fecha: "2026-03-15", Notas: "tercera"},
			{Fecha: "garabato", Notas: "sin fecha"},
			{Fecha: "2026-01-05", Notas: "primera"},
		},
	}))

	v, err := svc.Componer(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, v.Consultas, 3)

	// Unparseable dates canonicalize lowest and lead the listing; each row
	// keeps its storage position for the consulta endpoints.
	assert.Equal(t, "sin fecha", v.Consultas[0].Notas)
	assert.Equal(t, 1, v.Consultas[0].Indice)
	assert.Equal(t, "garabato", v.Consultas[0].Fecha)
	assert.Equal(t, "primera", v.Consultas[1].Notas)
	assert.Equal(t, 2, v.Consultas[1].Indice)
	assert.Equal(t, "05/01/2026", v.Consultas[1].Fecha)
	assert.Equal(t, "tercera", v.Consultas[2].Notas)
	assert.Equal(t, 0, v.Consultas[2].Indice)
}

func TestComponerDatosGenerales(t *testing.T) {
	ctx := context.Background()
	svc, repo := newVistaFixture(t)

	require.NoError(t, repo.Upsert(ctx, model.Paciente{
		ID: "P1", Nombre: "Ana López", FechaNac: "1990-01-01", Genero: "Femenino",
	}))

	v, err := svc.Componer(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "01/01/1990", v.Datos.FechaNac)
	assert.Equal(t, "36", v.Datos.Edad)
	assert.Nil(t, v.ProximaCita)

	_, err = svc.Componer(ctx, "no-existe")
	assert.ErrorIs(t, err, ErrPacienteNoEncontrado)
}
