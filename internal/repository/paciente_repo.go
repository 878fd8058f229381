package repository

import (
	"context"

	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/storage"
)

// PacienteRepository is the data access contract for patient records.
// Services depend on this interface, not on the concrete storage-backed
// implementation, enabling clean unit testing via stubs.
type PacienteRepository interface {
	LoadAll(ctx context.Context) []model.Paciente
	FindByID(ctx context.Context, id string) (model.Paciente, bool)
	// Exists reports id presence without decoding the full record; used
	// by the identity collision search.
	Exists(ctx context.Context, id string) bool
	Upsert(ctx context.Context, p model.Paciente) error
	RemoveByID(ctx context.Context, id string) error
}

type pacienteRepo struct {
	col *storage.Collection[model.Paciente]
}

func NewPacienteRepository(store storage.Store) PacienteRepository {
	return &pacienteRepo{
		col: storage.NewCollection(store, storage.KeyPacientes, func(p model.Paciente) string { return p.ID }),
	}
}

func (r *pacienteRepo) LoadAll(ctx context.Context) []model.Paciente {
	return r.col.LoadAll(ctx)
}

func (r *pacienteRepo) FindByID(ctx context.Context, id string) (model.Paciente, bool) {
	return r.col.FindByID(ctx, id)
}

func (r *pacienteRepo) Exists(ctx context.Context, id string) bool {
	_, ok := r.col.FindByID(ctx, id)
	return ok
}

func (r *pacienteRepo) Upsert(ctx context.Context, p model.Paciente) error {
	// Collections must never persist as null; first save normalizes them.
	if p.Consultas == nil {
		p.Consultas = []model.Consulta{}
	}
	if p.Finanzas == nil {
		p.Finanzas = []model.Movimiento{}
	}
	if p.Citas == nil {
		p.Citas = []model.CitaLegacy{}
	}
	return r.col.Upsert(ctx, p)
}

func (r *pacienteRepo) RemoveByID(ctx context.Context, id string) error {
	return r.col.RemoveByID(ctx, id)
}
