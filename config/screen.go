package config

// Preview window configuration
const (
	// Tile size in pixels
	TileSize = 12

	// Window dimensions in tiles
	ScreenWidth  = 80
	ScreenHeight = 50

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize
)

// GetWindowSize returns the recommended window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
