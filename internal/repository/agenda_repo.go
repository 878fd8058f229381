package repository

import (
	"context"
	"sort"

	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/storage"
)

// AgendaRepository is the data access contract for the global agenda.
// Invariant: the persisted collection is sorted ascending by FechaISO
// after every write, so readers can rely on chronological order.
type AgendaRepository interface {
	LoadAll(ctx context.Context) []model.Cita
	FindByID(ctx context.Context, idCita string) (model.Cita, bool)
	Upsert(ctx context.Context, c model.Cita) error
	RemoveByID(ctx context.Context, idCita string) error
}

type agendaRepo struct {
	col *storage.Collection[model.Cita]
}

func NewAgendaRepository(store storage.Store) AgendaRepository {
	return &agendaRepo{
		col: storage.NewCollection(store, storage.KeyAgenda, func(c model.Cita) string { return c.IDCita }),
	}
}

func (r *agendaRepo) LoadAll(ctx context.Context) []model.Cita {
	return r.col.LoadAll(ctx)
}

func (r *agendaRepo) FindByID(ctx context.Context, idCita string) (model.Cita, bool) {
	return r.col.FindByID(ctx, idCita)
}

func (r *agendaRepo) Upsert(ctx context.Context, c model.Cita) error {
	citas := r.col.LoadAll(ctx)
	replaced := false
	for i := range citas {
		if citas[i].IDCita == c.IDCita {
			citas[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		citas = append(citas, c)
	}
	return r.persistSorted(ctx, citas)
}

func (r *agendaRepo) RemoveByID(ctx context.Context, idCita string) error {
	citas := r.col.LoadAll(ctx)
	kept := citas[:0]
	for _, c := range citas {
		if c.IDCita != idCita {
			kept = append(kept, c)
		}
	}
	return r.persistSorted(ctx, kept)
}

// persistSorted rewrites the whole agenda sorted by instant. RFC 3339 UTC
// strings order correctly under plain string comparison.
func (r *agendaRepo) persistSorted(ctx context.Context, citas []model.Cita) error {
	sort.SliceStable(citas, func(i, j int) bool {
		return citas[i].FechaISO < citas[j].FechaISO
	})
	return r.col.ReplaceAll(ctx, citas)
}
