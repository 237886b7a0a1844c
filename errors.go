package plox

import (
	"fmt"

	"github.com/duron27/plox/rules"
)

// SortError wraps a rules.CycleError surfaced while ordering a mod list.
type SortError struct {
	Game rules.Game
	Err  error
}

func (e SortError) Error() string {
	return fmt.Sprintf("plox: could not sort mods for %s: %s", e.Game, e.Err)
}

func (e SortError) Unwrap() error { return e.Err }
