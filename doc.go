/*
Package shaderquad manages the lifecycle of a GPU shader program that
renders a full-viewport quad: it compiles and links vertex/fragment source,
introspects the program's uniform interface, and exposes a single safe
entry point for setting uniform values from loosely-typed host data before
each draw call.

The core is written against the GL interface, so every contract — compile
and link error capture, uniform arity/type checking, bind idempotence — is
testable without a GPU. The backend/opengl package provides the go-gl
implementation and a GLFW context adapter.

# Quick Start

	window, _ := opengl.NewWindow(800, 600, "quad")
	defer window.Terminate()

	prog, err := shaderquad.New(opengl.Functions{}, window, vertexSrc, fragmentSrc,
	    shaderquad.WithName("ripple"),
	    shaderquad.WithLogger(logger))
	if err != nil {
	    return err
	}
	defer prog.Destroy()

	for !window.ShouldClose() {
	    prog.SetUniform("time", glfw.GetTime())
	    prog.SetUniform("resolution", []float64{800, 600})
	    prog.Draw()
	    window.Swap()
	}

# Error model

Construction failures (context, compile, link) are stored as the instance's
terminal error; later Bind/SetUniform/Draw calls short-circuit and report
it without touching GPU state. Per-call uniform failures (unknown name,
shape mismatch) are local: the offending call is skipped and logged, prior
and subsequent sets are unaffected. A value that fails validation never
partially applies — validation happens before the first GPU call.

# Threading

Every operation is a synchronous driver call. All calls for one Program
must run on the thread owning its rendering context; the package provides
no locking. Lock the OS thread in main when using the GLFW backend.

# Limitations

Uniform arrays are recorded under the driver-reported name (usually
"name[0]") with their element type; element-indexed access is not modeled,
so setting through the table reaches element 0 only.
*/
package shaderquad
