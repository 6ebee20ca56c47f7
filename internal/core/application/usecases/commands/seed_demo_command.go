package commands

import (
	"errors"

	"siparisqr/internal/pkg/guard"
)

var ErrSeedDemoCommandIsNotConstructed = errors.New(
	"SeedDemoCommand must be created via NewSeedDemoCommand constructor",
)

// DemoSlug is the slug of the demo restaurant created by SeedDemoCommand.
const DemoSlug = "demo-restaurant"

// SeedDemoCommand loads a demo restaurant with a small menu and eight tables.
// It does nothing when the demo restaurant already exists.
type SeedDemoCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedDemoCommand() SeedDemoCommand {
	return SeedDemoCommand{guard: guard.NewConstructorGuard()}
}

func (c SeedDemoCommand) Validate() error {
	return c.guard.Validate(ErrSeedDemoCommandIsNotConstructed)
}
