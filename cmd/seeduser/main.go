// cmd/seeduser/main.go — Crea/actualiza usuario de demo.
// Uso: go run ./cmd/seeduser
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/JavierVixer/OCCHIAPP/internal/config"
	"github.com/JavierVixer/OCCHIAPP/internal/infra"
	"github.com/JavierVixer/OCCHIAPP/internal/model"
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

	name := "Demo"
	email := "demo@occhiapp.mx"
	password := "demo1234"

	repo := repository.NewUsuarioRepository(store)
	if err := repo.Create(context.Background(), model.Usuario{Name: name, Email: email, Pass: password}); err != nil {
		log.Fatalf("seed error: %v", err)
	}
	fmt.Printf("✅ Usuario '%s' creado/actualizado con password '%s'\n", email, password)
}
