// cmd/exportinv/main.go — Exporta el inventario actual a PDF.
// Uso: go run ./cmd/exportinv
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/JavierVixer/OCCHIAPP/internal/config"
	"github.com/JavierVixer/OCCHIAPP/internal/infra"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	store, err := infra.NewStore(cfg)
	if err != nil {
		log.Fatalf("store error: %v", err)
	}

	repo := repository.NewProductoRepository(store)
	productos := repo.LoadAll(context.Background())
	if len(productos) == 0 {
		log.Println("inventario vacío, no se genera PDF")
		return
	}

	path, err := infra.NewCatalogoPDF().GuardarCatalogo(productos, cfg.PDFStoragePath)
	if err != nil {
		log.Fatalf("pdf error: %v", err)
	}
	fmt.Printf("✅ Catalogo generado: %s (%d productos)\n", path, len(productos))
}
