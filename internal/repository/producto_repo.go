package repository

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/storage"
)

// idBase is the fixed prefix of every inventory id; the suffix is a
// zero-padded sequence from the monotonic counter: 737440001, 737440002…
const idBase = "737440"

var reSeq = regexp.MustCompile(`^737440(\d{3})$`)

// ProductoRepository is the data access contract for the inventory.
// Ids are assigned once and survive any number of deletions: the counter
// only moves forward.
type ProductoRepository interface {
	LoadAll(ctx context.Context) []model.Producto
	FindByID(ctx context.Context, id string) (model.Producto, bool)
	Upsert(ctx context.Context, p model.Producto) error
	RemoveByID(ctx context.Context, id string) error
	// NextID issues a fresh stable id, migrating the counter from
	// pre-counter stores on first use.
	NextID(ctx context.Context) (string, error)
}

type productoRepo struct {
	col     *storage.Collection[model.Producto]
	counter *storage.Counter
}

func NewProductoRepository(store storage.Store) ProductoRepository {
	return &productoRepo{
		col:     storage.NewCollection(store, storage.KeyProductos, func(p model.Producto) string { return p.ID }),
		counter: storage.NewCounter(store, storage.KeyProductoCounter),
	}
}

func (r *productoRepo) LoadAll(ctx context.Context) []model.Producto {
	return r.col.LoadAll(ctx)
}

func (r *productoRepo) FindByID(ctx context.Context, id string) (model.Producto, bool) {
	return r.col.FindByID(ctx, id)
}

func (r *productoRepo) Upsert(ctx context.Context, p model.Producto) error {
	return r.col.Upsert(ctx, p)
}

func (r *productoRepo) RemoveByID(ctx context.Context, id string) error {
	return r.col.RemoveByID(ctx, id)
}

func (r *productoRepo) NextID(ctx context.Context) (string, error) {
	if r.counter.Current(ctx) == 0 {
		// Stores predating the counter key: resume after the highest
		// sequence already in use so old ids are never re-issued.
		if max := r.maxExistingSeq(ctx); max > 0 {
			if err := r.counter.Seed(ctx, max); err != nil {
				return "", err
			}
		}
	}
	n, err := r.counter.Next(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", idBase, n), nil
}

func (r *productoRepo) maxExistingSeq(ctx context.Context) int {
	max := 0
	for _, p := range r.col.LoadAll(ctx) {
		m := reSeq.FindStringSubmatch(p.ID)
		if m == nil {
			continue
		}
		if seq, err := strconv.Atoi(m[1]); err == nil && seq > max {
			max = seq
		}
	}
	return max
}
