package shaderquad

import "fmt"

// ContextError reports that the rendering context could not be made current.
// No further GPU call is issued after one is returned.
type ContextError struct {
	Shader string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("shader %q: rendering context could not be made current", e.Shader)
}

// CompileError reports a shader stage compilation failure. Log carries the
// driver diagnostic, truncated to MaxLogLength bytes.
type CompileError struct {
	Shader string
	Stage  Stage
	Log    string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader %q: %s stage failed to compile: %s", e.Shader, e.Stage, e.Log)
}

// LinkError reports a program link failure. Log carries the driver
// diagnostic, truncated to MaxLogLength bytes.
type LinkError struct {
	Shader string
	Log    string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader %q: program failed to link: %s", e.Shader, e.Log)
}

// UnknownUniformError reports a uniform name absent from the uniform table.
// Unused uniforms are compiled away by the driver and legitimately absent
// even when declared in source.
type UnknownUniformError struct {
	Name string
}

func (e *UnknownUniformError) Error() string {
	return fmt.Sprintf("unknown uniform %q", e.Name)
}

// TypeMismatchError reports a host value whose shape does not match the
// uniform's declared GLSL type. The rejected value caused no GPU call.
type TypeMismatchError struct {
	Name     string
	Expected GLSLType
}

func (e *TypeMismatchError) Error() string {
	if n := e.Expected.Components(); n > 1 {
		return fmt.Sprintf("uniform %q: value does not match %s (want a sequence of %d numbers)",
			e.Name, e.Expected, n)
	}
	return fmt.Sprintf("uniform %q: value does not match %s", e.Name, e.Expected)
}

// UnsupportedTypeError reports a uniform whose driver-declared type is not in
// the supported GLSL type set.
type UnsupportedTypeError struct {
	Name string
	Raw  uint32
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("uniform %q: unsupported GLSL type 0x%04X", e.Name, e.Raw)
}

// NotAProgramError reports that a bind was attempted against a handle the
// driver no longer recognizes as a program.
type NotAProgramError struct {
	Shader string
}

func (e *NotAProgramError) Error() string {
	return fmt.Sprintf("shader %q: handle is not a program", e.Shader)
}
