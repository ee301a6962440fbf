package shaderquad_test

import (
	"strings"

	"github.com/go-theft-auto/shaderquad"
)

// Raw GLSL type enums as a driver would report them.
const (
	rawFloat           = 0x1406
	rawVec2            = 0x8B50
	rawVec3            = 0x8B51
	rawVec4            = 0x8B52
	rawInt             = 0x1404
	rawIVec2           = 0x8B53
	rawIVec3           = 0x8B54
	rawIVec4           = 0x8B55
	rawBool            = 0x8B56
	rawBVec2           = 0x8B57
	rawBVec3           = 0x8B58
	rawBVec4           = 0x8B59
	rawMat2            = 0x8B5A
	rawMat3            = 0x8B5B
	rawMat4            = 0x8B5C
	rawSampler2D       = 0x8B5E
	rawSamplerCube     = 0x8B60
	rawSampler2DShadow = 0x8B62 // outside the supported set
)

type glCall struct {
	name string
	args []any
}

type fakeUniform struct {
	name string
	size int
	raw  uint32
	loc  int32
}

// fakeContext is a test ContextProvider.
type fakeContext struct {
	fail  bool
	calls int
}

func (c *fakeContext) MakeCurrent() bool {
	c.calls++
	return !c.fail
}

// fakeGL is a recording shaderquad.GL for driving the core without a GPU.
type fakeGL struct {
	calls []glCall

	failCompile map[shaderquad.Stage]string // stage -> diagnostic log
	failLink    string                      // non-empty -> link fails with this log
	uniforms    []fakeUniform
	attribs     map[string]int32
	denyProgram bool // IsProgram answers false

	nextShader  uint32
	nextProgram uint32
	nextBuffer  uint32
	nextVA      uint32

	stages          map[shaderquad.ShaderID]shaderquad.Stage
	live            map[shaderquad.ProgramID]bool
	deletedShaders  []shaderquad.ShaderID
	deletedPrograms []shaderquad.ProgramID
	deletedBuffers  []shaderquad.BufferID
	deletedVAs      []shaderquad.VertexArrayID
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		failCompile: map[shaderquad.Stage]string{},
		attribs:     map[string]int32{"position": 0},
		stages:      map[shaderquad.ShaderID]shaderquad.Stage{},
		live:        map[shaderquad.ProgramID]bool{},
	}
}

func (f *fakeGL) record(name string, args ...any) {
	f.calls = append(f.calls, glCall{name: name, args: args})
}

func (f *fakeGL) reset() { f.calls = nil }

func (f *fakeGL) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

// uniformCallCount counts uniform-setter calls (the GPU state changes
// SetUniform is allowed to make).
func (f *fakeGL) uniformCallCount() int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c.name, "Uniform") {
			n++
		}
	}
	return n
}

func (f *fakeGL) last(name string) (glCall, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i], true
		}
	}
	return glCall{}, false
}

func (f *fakeGL) CreateShader(stage shaderquad.Stage) shaderquad.ShaderID {
	f.nextShader++
	sh := shaderquad.ShaderID(f.nextShader)
	f.stages[sh] = stage
	f.record("CreateShader", stage)
	return sh
}

func (f *fakeGL) ShaderSource(sh shaderquad.ShaderID, src string) {
	f.record("ShaderSource", sh, src)
}

func (f *fakeGL) CompileShader(sh shaderquad.ShaderID) {
	f.record("CompileShader", sh)
}

func (f *fakeGL) CompileSucceeded(sh shaderquad.ShaderID) bool {
	return f.failCompile[f.stages[sh]] == ""
}

func (f *fakeGL) ShaderInfoLog(sh shaderquad.ShaderID, maxLen int) string {
	return truncate(f.failCompile[f.stages[sh]], maxLen)
}

func (f *fakeGL) DeleteShader(sh shaderquad.ShaderID) {
	f.deletedShaders = append(f.deletedShaders, sh)
	f.record("DeleteShader", sh)
}

func (f *fakeGL) CreateProgram() shaderquad.ProgramID {
	f.nextProgram++
	p := shaderquad.ProgramID(100 + f.nextProgram)
	f.live[p] = true
	f.record("CreateProgram")
	return p
}

func (f *fakeGL) AttachShader(p shaderquad.ProgramID, sh shaderquad.ShaderID) {
	f.record("AttachShader", p, sh)
}

func (f *fakeGL) LinkProgram(p shaderquad.ProgramID) {
	f.record("LinkProgram", p)
}

func (f *fakeGL) LinkSucceeded(p shaderquad.ProgramID) bool {
	return f.failLink == ""
}

func (f *fakeGL) ProgramInfoLog(p shaderquad.ProgramID, maxLen int) string {
	return truncate(f.failLink, maxLen)
}

func (f *fakeGL) UseProgram(p shaderquad.ProgramID) {
	f.record("UseProgram", p)
}

func (f *fakeGL) IsProgram(p shaderquad.ProgramID) bool {
	return !f.denyProgram && f.live[p]
}

func (f *fakeGL) DeleteProgram(p shaderquad.ProgramID) {
	f.live[p] = false
	f.deletedPrograms = append(f.deletedPrograms, p)
	f.record("DeleteProgram", p)
}

func (f *fakeGL) ActiveUniformCount(p shaderquad.ProgramID) int {
	return len(f.uniforms)
}

func (f *fakeGL) ActiveUniform(p shaderquad.ProgramID, index int, maxLen int) (string, int, uint32) {
	u := f.uniforms[index]
	return truncate(u.name, maxLen), u.size, u.raw
}

func (f *fakeGL) UniformLocation(p shaderquad.ProgramID, name string) int32 {
	for _, u := range f.uniforms {
		if u.name == name {
			return u.loc
		}
	}
	return -1
}

func (f *fakeGL) AttribLocation(p shaderquad.ProgramID, name string) int32 {
	if loc, ok := f.attribs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeGL) CreateBuffer() shaderquad.BufferID {
	f.nextBuffer++
	b := shaderquad.BufferID(200 + f.nextBuffer)
	f.record("CreateBuffer")
	return b
}

func (f *fakeGL) BindArrayBuffer(b shaderquad.BufferID) {
	f.record("BindArrayBuffer", b)
}

func (f *fakeGL) BufferData(data []float32) {
	cp := make([]float32, len(data))
	copy(cp, data)
	f.record("BufferData", cp)
}

func (f *fakeGL) DeleteBuffer(b shaderquad.BufferID) {
	f.deletedBuffers = append(f.deletedBuffers, b)
	f.record("DeleteBuffer", b)
}

func (f *fakeGL) CreateVertexArray() shaderquad.VertexArrayID {
	f.nextVA++
	v := shaderquad.VertexArrayID(300 + f.nextVA)
	f.record("CreateVertexArray")
	return v
}

func (f *fakeGL) BindVertexArray(v shaderquad.VertexArrayID) {
	f.record("BindVertexArray", v)
}

func (f *fakeGL) DeleteVertexArray(v shaderquad.VertexArrayID) {
	f.deletedVAs = append(f.deletedVAs, v)
	f.record("DeleteVertexArray", v)
}

func (f *fakeGL) EnableVertexAttribArray(loc int32) {
	f.record("EnableVertexAttribArray", loc)
}

func (f *fakeGL) VertexAttribPointer(loc int32, size int, normalized bool, stride int, offset int) {
	f.record("VertexAttribPointer", loc, size, normalized, stride, offset)
}

func (f *fakeGL) Uniform1f(loc int32, v float32) { f.record("Uniform1f", loc, v) }

func (f *fakeGL) Uniform2f(loc int32, v0, v1 float32) { f.record("Uniform2f", loc, v0, v1) }

func (f *fakeGL) Uniform3f(loc int32, v0, v1, v2 float32) { f.record("Uniform3f", loc, v0, v1, v2) }

func (f *fakeGL) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	f.record("Uniform4f", loc, v0, v1, v2, v3)
}

func (f *fakeGL) Uniform1i(loc int32, v int32) { f.record("Uniform1i", loc, v) }

func (f *fakeGL) Uniform2i(loc int32, v0, v1 int32) { f.record("Uniform2i", loc, v0, v1) }

func (f *fakeGL) Uniform3i(loc int32, v0, v1, v2 int32) { f.record("Uniform3i", loc, v0, v1, v2) }

func (f *fakeGL) Uniform4i(loc int32, v0, v1, v2, v3 int32) {
	f.record("Uniform4i", loc, v0, v1, v2, v3)
}

func (f *fakeGL) UniformMatrix2fv(loc int32, values []float32) {
	f.record("UniformMatrix2fv", loc, cloneFloats(values))
}

func (f *fakeGL) UniformMatrix3fv(loc int32, values []float32) {
	f.record("UniformMatrix3fv", loc, cloneFloats(values))
}

func (f *fakeGL) UniformMatrix4fv(loc int32, values []float32) {
	f.record("UniformMatrix4fv", loc, cloneFloats(values))
}

func (f *fakeGL) DrawTriangles(first, count int) {
	f.record("DrawTriangles", first, count)
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

func cloneFloats(vs []float32) []float32 {
	cp := make([]float32, len(vs))
	copy(cp, vs)
	return cp
}

// allUniforms is the full supported type set plus one uniform with a type
// outside it.
func allUniforms() []fakeUniform {
	return []fakeUniform{
		{name: "time", size: 1, raw: rawFloat, loc: 1},
		{name: "offset", size: 1, raw: rawVec2, loc: 2},
		{name: "tint", size: 1, raw: rawVec3, loc: 3},
		{name: "blend", size: 1, raw: rawVec4, loc: 4},
		{name: "mode", size: 1, raw: rawInt, loc: 5},
		{name: "grid", size: 1, raw: rawIVec2, loc: 6},
		{name: "cell", size: 1, raw: rawIVec3, loc: 7},
		{name: "box", size: 1, raw: rawIVec4, loc: 8},
		{name: "enabled", size: 1, raw: rawBool, loc: 9},
		{name: "flags2", size: 1, raw: rawBVec2, loc: 10},
		{name: "flags3", size: 1, raw: rawBVec3, loc: 11},
		{name: "flags4", size: 1, raw: rawBVec4, loc: 12},
		{name: "rot", size: 1, raw: rawMat2, loc: 13},
		{name: "nrm", size: 1, raw: rawMat3, loc: 14},
		{name: "mvp", size: 1, raw: rawMat4, loc: 15},
		{name: "tex", size: 1, raw: rawSampler2D, loc: 16},
		{name: "env", size: 1, raw: rawSamplerCube, loc: 17},
		{name: "shadow", size: 1, raw: rawSampler2DShadow, loc: 18},
	}
}

const (
	testVertexSrc   = "void main() { gl_Position = vec4(position, 0.0, 1.0); }"
	testFragmentSrc = "void main() { fragColor = vec4(1.0); }"
)

// readyProgram builds a Program against the fake backend with the full
// uniform set, resetting the recorded calls after construction.
func readyProgram(opts ...shaderquad.Option) (*shaderquad.Program, *fakeGL, *fakeContext) {
	g := newFakeGL()
	g.uniforms = allUniforms()
	ctx := &fakeContext{}
	prog, err := shaderquad.New(g, ctx, testVertexSrc, testFragmentSrc, opts...)
	if err != nil {
		panic(err)
	}
	g.reset()
	ctx.calls = 0
	return prog, g, ctx
}
