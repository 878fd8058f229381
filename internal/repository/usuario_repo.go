package repository

import (
	"context"
	"strings"

	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/storage"
)

// UsuarioRepository is the data access contract for the auth demo:
// registered users keyed by lowercased email, plus the single active
// session record.
type UsuarioRepository interface {
	LoadAll(ctx context.Context) []model.Usuario
	FindByEmail(ctx context.Context, email string) (model.Usuario, bool)
	Create(ctx context.Context, u model.Usuario) error

	GetSesion(ctx context.Context) (model.Sesion, bool)
	SetSesion(ctx context.Context, s model.Sesion) error
	ClearSesion(ctx context.Context) error
}

type usuarioRepo struct {
	col    *storage.Collection[model.Usuario]
	sesion *storage.Single[model.Sesion]
}

func NewUsuarioRepository(store storage.Store) UsuarioRepository {
	return &usuarioRepo{
		col:    storage.NewCollection(store, storage.KeyUsuarios, func(u model.Usuario) string { return u.Email }),
		sesion: storage.NewSingle[model.Sesion](store, storage.KeySesion),
	}
}

func (r *usuarioRepo) LoadAll(ctx context.Context) []model.Usuario {
	return r.col.LoadAll(ctx)
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (model.Usuario, bool) {
	return r.col.FindByID(ctx, strings.ToLower(email))
}

func (r *usuarioRepo) Create(ctx context.Context, u model.Usuario) error {
	u.Email = strings.ToLower(u.Email)
	return r.col.Upsert(ctx, u)
}

func (r *usuarioRepo) GetSesion(ctx context.Context) (model.Sesion, bool) {
	return r.sesion.Get(ctx)
}

func (r *usuarioRepo) SetSesion(ctx context.Context, s model.Sesion) error {
	return r.sesion.Set(ctx, s)
}

func (r *usuarioRepo) ClearSesion(ctx context.Context) error {
	return r.sesion.Clear(ctx)
}
