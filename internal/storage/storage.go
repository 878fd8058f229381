// Package storage is the key-value persistence port of the application.
// Every collection lives under one key as a single JSON value; all writes
// are whole-collection read-modify-write. There is no atomicity across
// keys: updating a patient and a related agenda entry are two independent
// writes, and a crash between them leaves the stores out of sync. That is
// a documented property of the system, not a bug to be fixed here.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is the minimal capability the rest of the code depends on.
// Implementations: Memory (tests), File (local single-user default),
// Redis (shared deployments).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Ping reports whether the underlying medium is reachable.
	Ping(ctx context.Context) error
}

// Keys of the persisted collections. The names are carried over from the
// original localStorage layout so existing exports remain importable.
const (
	KeyPacientes       = "occhiapp_pacientes"
	KeyAgenda          = "occhiapp_agenda"
	KeyProductos       = "productos"
	KeyProductoCounter = "productos_counter"
	KeyUsuarios        = "oa_users"
	KeySesion          = "oa_session"
)
