// Package opengl provides the OpenGL 4.1 backend for the shaderquad package:
// a go-gl implementation of the shaderquad.GL interface and a GLFW-backed
// window that acts as the context provider.
package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shaderquad"
)

// Functions implements shaderquad.GL on top of go-gl. The zero value is
// ready to use once a context is current and gl.Init has run.
type Functions struct{}

var _ shaderquad.GL = Functions{}

// CreateShader creates a shader object for the given stage.
func (Functions) CreateShader(stage shaderquad.Stage) shaderquad.ShaderID {
	if stage == shaderquad.StageFragment {
		return shaderquad.ShaderID(gl.CreateShader(gl.FRAGMENT_SHADER))
	}
	return shaderquad.ShaderID(gl.CreateShader(gl.VERTEX_SHADER))
}

// ShaderSource submits source text for compilation.
func (Functions) ShaderSource(sh shaderquad.ShaderID, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(sh), 1, csources, nil)
	free()
}

func (Functions) CompileShader(sh shaderquad.ShaderID) {
	gl.CompileShader(uint32(sh))
}

func (Functions) CompileSucceeded(sh shaderquad.ShaderID) bool {
	var status int32
	gl.GetShaderiv(uint32(sh), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (Functions) ShaderInfoLog(sh shaderquad.ShaderID, maxLen int) string {
	buf := make([]byte, maxLen+1)
	var n int32
	gl.GetShaderInfoLog(uint32(sh), int32(maxLen), &n, &buf[0])
	return string(buf[:n])
}

func (Functions) DeleteShader(sh shaderquad.ShaderID) {
	gl.DeleteShader(uint32(sh))
}

func (Functions) CreateProgram() shaderquad.ProgramID {
	return shaderquad.ProgramID(gl.CreateProgram())
}

func (Functions) AttachShader(p shaderquad.ProgramID, sh shaderquad.ShaderID) {
	gl.AttachShader(uint32(p), uint32(sh))
}

func (Functions) LinkProgram(p shaderquad.ProgramID) {
	gl.LinkProgram(uint32(p))
}

func (Functions) LinkSucceeded(p shaderquad.ProgramID) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (Functions) ProgramInfoLog(p shaderquad.ProgramID, maxLen int) string {
	buf := make([]byte, maxLen+1)
	var n int32
	gl.GetProgramInfoLog(uint32(p), int32(maxLen), &n, &buf[0])
	return string(buf[:n])
}

func (Functions) UseProgram(p shaderquad.ProgramID) {
	gl.UseProgram(uint32(p))
}

func (Functions) IsProgram(p shaderquad.ProgramID) bool {
	return gl.IsProgram(uint32(p))
}

func (Functions) DeleteProgram(p shaderquad.ProgramID) {
	gl.DeleteProgram(uint32(p))
}

func (Functions) ActiveUniformCount(p shaderquad.ProgramID) int {
	var count int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORMS, &count)
	return int(count)
}

func (Functions) ActiveUniform(p shaderquad.ProgramID, index int, maxLen int) (string, int, uint32) {
	buf := make([]byte, maxLen+1)
	var length, size int32
	var xtype uint32
	gl.GetActiveUniform(uint32(p), uint32(index), int32(maxLen), &length, &size, &xtype, &buf[0])
	return string(buf[:length]), int(size), xtype
}

func (Functions) UniformLocation(p shaderquad.ProgramID, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (Functions) AttribLocation(p shaderquad.ProgramID, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (Functions) CreateBuffer() shaderquad.BufferID {
	var b uint32
	gl.GenBuffers(1, &b)
	return shaderquad.BufferID(b)
}

func (Functions) BindArrayBuffer(b shaderquad.BufferID) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (Functions) BufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

func (Functions) DeleteBuffer(b shaderquad.BufferID) {
	buf := uint32(b)
	gl.DeleteBuffers(1, &buf)
}

func (Functions) CreateVertexArray() shaderquad.VertexArrayID {
	var v uint32
	gl.GenVertexArrays(1, &v)
	return shaderquad.VertexArrayID(v)
}

func (Functions) BindVertexArray(v shaderquad.VertexArrayID) {
	gl.BindVertexArray(uint32(v))
}

func (Functions) DeleteVertexArray(v shaderquad.VertexArrayID) {
	va := uint32(v)
	gl.DeleteVertexArrays(1, &va)
}

func (Functions) EnableVertexAttribArray(loc int32) {
	gl.EnableVertexAttribArray(uint32(loc))
}

func (Functions) VertexAttribPointer(loc int32, size int, normalized bool, stride int, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(loc), int32(size), gl.FLOAT, normalized, int32(stride), uintptr(offset))
}

func (Functions) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

func (Functions) Uniform2f(loc int32, v0, v1 float32) { gl.Uniform2f(loc, v0, v1) }

func (Functions) Uniform3f(loc int32, v0, v1, v2 float32) { gl.Uniform3f(loc, v0, v1, v2) }

func (Functions) Uniform4f(loc int32, v0, v1, v2, v3 float32) { gl.Uniform4f(loc, v0, v1, v2, v3) }

func (Functions) Uniform1i(loc int32, v int32) { gl.Uniform1i(loc, v) }

func (Functions) Uniform2i(loc int32, v0, v1 int32) { gl.Uniform2i(loc, v0, v1) }

func (Functions) Uniform3i(loc int32, v0, v1, v2 int32) { gl.Uniform3i(loc, v0, v1, v2) }

func (Functions) Uniform4i(loc int32, v0, v1, v2, v3 int32) { gl.Uniform4i(loc, v0, v1, v2, v3) }

func (Functions) UniformMatrix2fv(loc int32, values []float32) {
	gl.UniformMatrix2fv(loc, 1, false, &values[0])
}

func (Functions) UniformMatrix3fv(loc int32, values []float32) {
	gl.UniformMatrix3fv(loc, 1, false, &values[0])
}

func (Functions) UniformMatrix4fv(loc int32, values []float32) {
	gl.UniformMatrix4fv(loc, 1, false, &values[0])
}

func (Functions) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}
