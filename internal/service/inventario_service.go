package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"

	"github.com/rs/zerolog/log"
)

var ErrProductoNoEncontrado = errors.New("producto no encontrado")

// CatalogoPDF renders the current inventory as a printable catalog with a
// barcode per item.
type CatalogoPDF interface {
	Generar(productos []model.Producto) ([]byte, error)
}

// InventarioService manages the frame inventory: CRUD over counter-issued
// ids, filtered and sorted listings, and the PDF catalog export.
type InventarioService interface {
	Crear(ctx context.Context, req dto.ProductoRequest) (model.Producto, error)
	Actualizar(ctx context.Context, id string, req dto.ProductoRequest) (model.Producto, error)
	Obtener(ctx context.Context, id string) (model.Producto, error)
	Eliminar(ctx context.Context, id string) error
	Listar(ctx context.Context, filter dto.ProductoFilter) []model.Producto
	ExportarPDF(ctx context.Context) ([]byte, error)
}

type inventarioService struct {
	repo repository.ProductoRepository
	pdf  CatalogoPDF
}

func NewInventarioService(repo repository.ProductoRepository, pdf CatalogoPDF) InventarioService {
	return &inventarioService{repo: repo, pdf: pdf}
}

func (s *inventarioService) Crear(ctx context.Context, req dto.ProductoRequest) (model.Producto, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return model.Producto{}, err
	}
	p := model.Producto{
		ID:       id,
		Modelo:   req.Modelo,
		Linea:    req.Linea,
		Precio:   req.Precio,
		Cantidad: req.Cantidad,
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return model.Producto{}, err
	}
	log.Info().Str("producto_id", p.ID).Msg("producto registrado")
	return p, nil
}

func (s *inventarioService) Actualizar(ctx context.Context, id string, req dto.ProductoRequest) (model.Producto, error) {
	if _, ok := s.repo.FindByID(ctx, id); !ok {
		return model.Producto{}, ErrProductoNoEncontrado
	}
	p := model.Producto{
		ID:       id,
		Modelo:   req.Modelo,
		Linea:    req.Linea,
		Precio:   req.Precio,
		Cantidad: req.Cantidad,
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return model.Producto{}, err
	}
	return p, nil
}

func (s *inventarioService) Obtener(ctx context.Context, id string) (model.Producto, error) {
	p, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return model.Producto{}, ErrProductoNoEncontrado
	}
	return p, nil
}

// Eliminar drops the item. Its id is retired for good: the counter never
// rewinds and remaining items are not renumbered.
func (s *inventarioService) Eliminar(ctx context.Context, id string) error {
	if _, ok := s.repo.FindByID(ctx, id); !ok {
		return ErrProductoNoEncontrado
	}
	return s.repo.RemoveByID(ctx, id)
}

func (s *inventarioService) Listar(ctx context.Context, filter dto.ProductoFilter) []model.Producto {
	productos := s.repo.LoadAll(ctx)

	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		kept := productos[:0]
		for _, p := range productos {
			if strings.Contains(strings.ToLower(p.ID), q) ||
				strings.Contains(strings.ToLower(p.Modelo), q) ||
				strings.Contains(strings.ToLower(p.Linea), q) {
				kept = append(kept, p)
			}
		}
		productos = kept
	}

	switch filter.Sort {
	case "modelo":
		sort.SliceStable(productos, func(i, j int) bool {
			return strings.ToLower(productos[i].Modelo) < strings.ToLower(productos[j].Modelo)
		})
	case "linea":
		sort.SliceStable(productos, func(i, j int) bool {
			return strings.ToLower(productos[i].Linea) < strings.ToLower(productos[j].Linea)
		})
	case "precio":
		sort.SliceStable(productos, func(i, j int) bool {
			return productos[i].Precio.LessThan(productos[j].Precio)
		})
	case "cantidad":
		sort.SliceStable(productos, func(i, j int) bool {
			return productos[i].Cantidad < productos[j].Cantidad
		})
	}
	return productos
}

func (s *inventarioService) ExportarPDF(ctx context.Context) ([]byte, error) {
	return s.pdf.Generar(s.repo.LoadAll(ctx))
}
