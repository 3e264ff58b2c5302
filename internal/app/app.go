// Package app wires configuration and shared services for commands.
package app

import (
	"github.com/pennyplot/pennyplot/internal/config"
	"github.com/pennyplot/pennyplot/internal/store"
)

// Deps carries everything a command needs to run. Commands receive a
// *Deps rather than reaching for globals so tests can substitute their
// own configuration and storage.
type Deps struct {
	Config *config.Config
}

// New builds a Deps from a resolved configuration.
func New(cfg *config.Config) *Deps {
	return &Deps{Config: cfg}
}

// OpenStore opens the bbolt database at the configured path.
// Callers own the returned store and must Close it.
func (d *Deps) OpenStore() (*store.Store, error) {
	return store.Open(d.Config.DBPath)
}
