// Example renders an animated full-viewport quad: a GLFW window, one
// shaderquad program, and a few uniforms driven from the render loop.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/go-theft-auto/shaderquad"
	"github.com/go-theft-auto/shaderquad/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "shaderquad example"
)

const vertexSrc = `
#version 410 core
in vec2 position;

void main() {
    gl_Position = vec4(position, 0.0, 1.0);
}
`

const fragmentSrc = `
#version 410 core
uniform float time;
uniform float pulse;
uniform vec2 resolution;
uniform vec3 tint;

out vec4 fragColor;

void main() {
    vec2 uv = gl_FragCoord.xy / resolution;
    float wave = 0.5 + 0.5 * sin(24.0 * uv.x + 4.0 * time);
    vec3 color = tint * mix(wave, uv.y, pulse);
    fragColor = vec4(color, 1.0);
}
`

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	window, err := opengl.NewWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Terminate()

	prog, err := shaderquad.New(opengl.Functions{}, window, vertexSrc, fragmentSrc,
		shaderquad.WithName("ripple"),
		shaderquad.WithLogger(logger))
	if err != nil {
		return err
	}
	defer prog.Destroy()

	for name, desc := range prog.Uniforms() {
		logger.Info().Str("uniform", name).Stringer("type", desc.Type).
			Int32("location", desc.Location).Msg("active uniform")
	}

	for !window.ShouldClose() {
		t := glfw.GetTime()
		w, h := window.Size()
		hue := float64(math32.Mod(float32(t)*40, 360))
		tint := colorful.Hsv(hue, 0.7, 1)

		prog.SetUniform("time", t)
		prog.SetUniform("pulse", 0.5+0.5*math32.Sin(float32(t)*0.5))
		prog.SetUniform("resolution", []float64{float64(w), float64(h)})
		prog.SetUniform("tint", []float64{tint.R, tint.G, tint.B})

		if err := prog.Draw(); err != nil {
			return err
		}
		window.Swap()
	}
	return nil
}
