package bounce

// Config holds the compiled-in settings for a screensaver run.
// DefaultConfig reproduces the classic look; programs adjust fields in code.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the fixed viewport size in pixels.
	Width  int
	Height int

	// MaxFPS caps the frame rate. Zero or negative disables the cap.
	MaxFPS int
	// Speed scales the velocity vector.
	Speed float64
	// Size is the extent of the sprite on both axes in normalized device
	// units (the viewport spans 2).
	Size float64
	// Velocity is the initial direction in normalized units per second.
	Velocity Vec2

	// ShowFPS draws a frame-rate readout on top of the logo.
	ShowFPS bool
	// Debug logs every bounce to stderr.
	Debug bool
	// Sound plays a short blip on every bounce, on backends that support it.
	Sound bool
}

// Defaults for the classic screensaver.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultMaxFPS = 144
	DefaultSpeed  = 1.0
	DefaultSize   = 0.3
)

// DefaultConfig returns the settings of the classic screensaver: an 800x600
// window capped at 144 FPS with a 0.3-unit logo starting in the top-left
// corner and heading down-right.
func DefaultConfig() Config {
	return Config{
		Title:    "close whisper",
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxFPS:   DefaultMaxFPS,
		Speed:    DefaultSpeed,
		Size:     DefaultSize,
		Velocity: Vec2{X: 0.5, Y: 0.8},
	}
}
