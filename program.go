package shaderquad

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Bounds on driver-reported strings.
const (
	// MaxLogLength caps compile and link diagnostic logs.
	MaxLogLength = 256
	// MaxNameLength caps uniform names reported during introspection.
	MaxNameLength = 256
)

// quadVertices is the fixed geometry contract: two triangles covering
// clip space [-1,1]x[-1,1] as six 2-component vertices, uploaded once as a
// static buffer.
var quadVertices = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	-1, 1,
	1, -1,
	1, 1,
}

// Program owns a compiled and linked GPU program for rendering a
// full-viewport quad, together with its static vertex buffer and the
// uniform table built at link time.
//
// All methods must be called on the thread that owns the rendering context;
// the package does no locking of its own. Two Programs sharing a context
// must be serialized by the caller.
type Program struct {
	gl     GL
	ctx    ContextProvider
	log    zerolog.Logger
	name   string
	attrib string

	err error // terminal construction error, nil when ready

	program   ProgramID
	vbo       BufferID
	vao       VertexArrayID
	attribLoc int32
	uniforms  UniformTable
	destroyed bool
}

// New compiles and links vertexSrc and fragmentSrc into a ready Program.
//
// On failure the error is also stored as the instance's terminal error and
// a non-nil Program is returned alongside it: Bind, Draw and SetUniform on
// a failed instance report the stored error and issue no GPU call. Fixing a
// compile or link error requires a new instance; there are no retries.
func New(g GL, ctx ContextProvider, vertexSrc, fragmentSrc string, opts ...Option) (*Program, error) {
	p := &Program{
		gl:     g,
		ctx:    ctx,
		log:    zerolog.Nop(),
		name:   "shader",
		attrib: "position",
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.build(vertexSrc, fragmentSrc); err != nil {
		p.err = err
		p.log.Error().Str("shader", p.name).Err(err).Msg("shader construction failed")
		return p, err
	}
	return p, nil
}

func (p *Program) build(vertexSrc, fragmentSrc string) error {
	if !p.ctx.MakeCurrent() {
		return &ContextError{Shader: p.name}
	}

	vert, err := p.compile(StageVertex, vertexSrc)
	if err != nil {
		return err
	}
	frag, err := p.compile(StageFragment, fragmentSrc)
	if err != nil {
		p.gl.DeleteShader(vert)
		return err
	}

	prog, err := p.link(vert, frag)
	// The stage objects are either linked into the program or dead; they are
	// not needed beyond this point either way.
	p.gl.DeleteShader(vert)
	p.gl.DeleteShader(frag)
	if err != nil {
		return err
	}
	p.program = prog
	p.gl.UseProgram(prog)

	p.uniforms = introspectUniforms(p.gl, prog)

	loc := p.gl.AttribLocation(prog, p.attrib)
	if loc < 0 {
		p.gl.DeleteProgram(prog)
		p.program = 0
		return fmt.Errorf("shader %q: vertex attribute %q not active in program", p.name, p.attrib)
	}
	p.attribLoc = loc

	p.vao = p.gl.CreateVertexArray()
	p.gl.BindVertexArray(p.vao)
	p.vbo = p.gl.CreateBuffer()
	p.gl.BindArrayBuffer(p.vbo)
	p.gl.BufferData(quadVertices)
	return nil
}

// compile builds a single stage. The failed stage object is deleted before
// returning so it never leaks into the link step.
func (p *Program) compile(stage Stage, src string) (ShaderID, error) {
	sh := p.gl.CreateShader(stage)
	p.gl.ShaderSource(sh, src)
	p.gl.CompileShader(sh)
	if !p.gl.CompileSucceeded(sh) {
		log := p.gl.ShaderInfoLog(sh, MaxLogLength)
		p.gl.DeleteShader(sh)
		return 0, &CompileError{Shader: p.name, Stage: stage, Log: log}
	}
	return sh, nil
}

// link attaches both stages to a fresh program object and links it. On
// failure the program object is deleted.
func (p *Program) link(vert, frag ShaderID) (ProgramID, error) {
	prog := p.gl.CreateProgram()
	p.gl.AttachShader(prog, vert)
	p.gl.AttachShader(prog, frag)
	p.gl.LinkProgram(prog)
	if !p.gl.LinkSucceeded(prog) {
		log := p.gl.ProgramInfoLog(prog, MaxLogLength)
		p.gl.DeleteProgram(prog)
		return 0, &LinkError{Shader: p.name, Log: log}
	}
	return prog, nil
}

// Ready reports whether construction succeeded and the program can be bound.
func (p *Program) Ready() bool {
	return p.err == nil && !p.destroyed
}

// Err returns the terminal construction error, or nil when the program is
// ready.
func (p *Program) Err() error {
	return p.err
}

// Uniforms returns a copy of the uniform table built at link time.
func (p *Program) Uniforms() UniformTable {
	out := make(UniformTable, len(p.uniforms))
	for name, d := range p.uniforms {
		out[name] = d
	}
	return out
}

// SetUniform validates host against the uniform's declared GLSL type and
// issues exactly one typed GPU call. host may be a Value or any loose value
// ValueOf accepts.
//
// A rejected value causes zero GPU state change. Failures are non-fatal:
// they are logged and returned, and prior or subsequent uniform sets are
// unaffected.
func (p *Program) SetUniform(name string, host any) error {
	if err := p.guard(); err != nil {
		return err
	}
	desc, ok := p.uniforms[name]
	if !ok {
		err := &UnknownUniformError{Name: name}
		p.log.Warn().Str("shader", p.name).Str("uniform", name).Msg(err.Error())
		return err
	}
	v, err := ValueOf(host)
	if err != nil {
		err := &TypeMismatchError{Name: name, Expected: desc.Type}
		p.log.Warn().Str("shader", p.name).Str("uniform", name).Msg(err.Error())
		return err
	}
	if err := setUniform(p.gl, name, desc, v); err != nil {
		p.log.Warn().Str("shader", p.name).Str("uniform", name).Msg(err.Error())
		return err
	}
	return nil
}

// Bind prepares the pipeline for a draw call: it makes the context current,
// activates the program and binds the static quad buffer with its
// 2-component float vertex attribute (stride 0, not normalized). Bind is
// idempotent on a ready program.
func (p *Program) Bind() error {
	if err := p.guard(); err != nil {
		return err
	}
	if !p.ctx.MakeCurrent() {
		err := &ContextError{Shader: p.name}
		p.log.Error().Str("shader", p.name).Msg(err.Error())
		return err
	}
	if !p.gl.IsProgram(p.program) {
		err := &NotAProgramError{Shader: p.name}
		p.log.Error().Str("shader", p.name).Msg(err.Error())
		return err
	}
	p.gl.UseProgram(p.program)
	p.gl.BindVertexArray(p.vao)
	p.gl.BindArrayBuffer(p.vbo)
	p.gl.EnableVertexAttribArray(p.attribLoc)
	p.gl.VertexAttribPointer(p.attribLoc, 2, false, 0, 0)
	return nil
}

// Draw binds the program and draws the two-triangle quad.
func (p *Program) Draw() error {
	if err := p.Bind(); err != nil {
		return err
	}
	p.gl.DrawTriangles(0, 6)
	return nil
}

// Destroy releases the program, vertex buffer and vertex array exactly
// once. It is a no-op on failed or already-destroyed instances.
func (p *Program) Destroy() {
	if p.destroyed || p.err != nil {
		return
	}
	p.destroyed = true
	p.gl.DeleteBuffer(p.vbo)
	p.gl.DeleteVertexArray(p.vao)
	p.gl.DeleteProgram(p.program)
}

// guard short-circuits every operation against a failed or destroyed
// instance, surfacing the stored terminal error without touching GPU state.
func (p *Program) guard() error {
	if p.err != nil {
		p.log.Warn().Str("shader", p.name).Err(p.err).Msg("operation on failed shader program")
		return p.err
	}
	if p.destroyed {
		return fmt.Errorf("shader %q: program destroyed", p.name)
	}
	return nil
}
