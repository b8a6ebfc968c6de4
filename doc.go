// Package bounce is the animation core of a DVD-style screensaver: a single
// masked logo that drifts around the viewport, rebounds off the four edges
// and cycles through the color wheel over time.
//
// The package owns timing, physics and color generation only. Drawing is
// delegated to a [Renderer]; two are provided in sub-packages:
//
//   - ebitenrender draws into an Ebitengine window with a Kage shader.
//   - termrender draws into a terminal with tcell.
//
// # Quick start
//
//	cfg := bounce.DefaultConfig()
//	r := myRenderer{}
//	saver := bounce.New(cfg, bounce.NewSystemClock(), r)
//	for running {
//		saver.Frame()
//	}
//
// Event-driven hosts split the frame in two: call [Screensaver.Step] from the
// host's update callback and [Screensaver.Present] from its draw callback.
//
// # Coordinates
//
// Geometry lives in normalized device coordinates: X and Y run from -1 to 1
// with Y pointing up, so the top-left of the viewport is (-1, 1). The sprite
// is a quad of six [Vertex] values (two triangles) whose UVs never change.
//
// # Bounces
//
// After every translation the simulator checks the four edges independently
// and reassigns the velocity component to a fixed value rather than
// negating it. The rebound speeds differ per wall (0.7, -1, -0.9, 1.2), so
// the logo's path slowly changes angle over time.
//
// # Color
//
// [HueDegrees] turns elapsed milliseconds into a hue that advances one degree
// every 100 ms; [HueToRGB] maps that hue through a six-sector rainbow. The
// result multiplies the mask color; alpha is never modulated.
package bounce
