package ebitenrender

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// logoShaderSrc tints the mask with the hue for the current time and blends
// toward white by Flash. All shaders use //kage:unit pixels; Ebitengine
// uses premultiplied alpha, so white at coverage a is vec3(a).
const logoShaderSrc = `//kage:unit pixels
package main

var Time int
var Flash float

func rainbow(deg float) vec3 {
	c := mod(deg, 60) / 60
	stage := int(deg / 60)
	if stage == 0 {
		return vec3(1, c, 0)
	}
	if stage == 1 {
		return vec3(1-c, 1, 0)
	}
	if stage == 2 {
		return vec3(0, 1, c)
	}
	if stage == 3 {
		return vec3(0, 1-c, 1)
	}
	if stage == 4 {
		return vec3(c, 0, 1)
	}
	return vec3(1, 0, 1-c)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	col := rainbow(mod(float(Time/100), 360))
	// Outside the mask imageSrc0At is transparent: a clamped border.
	c := imageSrc0At(src) * vec4(col, 1)
	return vec4(mix(c.rgb, vec3(c.a), Flash), c.a)
}
`

// ShaderError reports a shader that failed to compile. Log holds the
// compiler's diagnostic text.
type ShaderError struct {
	Name string
	Log  string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("could not compile %s shader: %s", e.Name, e.Log)
}

// compileShader compiles Kage source, wrapping failures in a *ShaderError.
func compileShader(name, src string) (*ebiten.Shader, error) {
	s, err := ebiten.NewShader([]byte(src))
	if err != nil {
		return nil, &ShaderError{Name: name, Log: err.Error()}
	}
	return s, nil
}
