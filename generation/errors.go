package generation

import (
	"fmt"

	"floorgen/components"
)

// ConfigError reports malformed descriptor data found while generating.
// It is fatal for the run.
type ConfigError struct {
	TileID int
	Loc    components.Loc
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tile %d at %d,%d: %s", e.TileID, e.Loc.X, e.Loc.Y, e.Reason)
}
