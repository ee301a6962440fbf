package shaderquad

// ShaderID is an opaque handle to a driver shader object.
type ShaderID uint32

// ProgramID is an opaque handle to a driver program object.
type ProgramID uint32

// BufferID is an opaque handle to a driver buffer object.
type BufferID uint32

// VertexArrayID is an opaque handle to a driver vertex array object.
type VertexArrayID uint32

// ContextProvider supplies the rendering context a Program draws against.
// The core never creates or destroys a context; it only asks for it to be
// made current before issuing GPU calls. MakeCurrent reports whether the
// context is now current on the calling thread.
type ContextProvider interface {
	MakeCurrent() bool
}

// GL is the set of driver entry points the core needs. backend/opengl
// implements it on top of go-gl; tests implement it with a recording fake.
//
// All calls are synchronous and must be made on the thread that owns the
// current context. Info log queries truncate to the given maximum length.
type GL interface {
	// Shader objects.
	CreateShader(stage Stage) ShaderID
	ShaderSource(sh ShaderID, src string)
	CompileShader(sh ShaderID)
	CompileSucceeded(sh ShaderID) bool
	ShaderInfoLog(sh ShaderID, maxLen int) string
	DeleteShader(sh ShaderID)

	// Program objects.
	CreateProgram() ProgramID
	AttachShader(p ProgramID, sh ShaderID)
	LinkProgram(p ProgramID)
	LinkSucceeded(p ProgramID) bool
	ProgramInfoLog(p ProgramID, maxLen int) string
	UseProgram(p ProgramID)
	IsProgram(p ProgramID) bool
	DeleteProgram(p ProgramID)

	// Program introspection.
	ActiveUniformCount(p ProgramID) int
	ActiveUniform(p ProgramID, index int, maxLen int) (name string, size int, rawType uint32)
	UniformLocation(p ProgramID, name string) int32
	AttribLocation(p ProgramID, name string) int32

	// Vertex state. BufferData uploads to the bound array buffer with
	// static-draw usage; VertexAttribPointer configures float components
	// on the bound buffer.
	CreateBuffer() BufferID
	BindArrayBuffer(b BufferID)
	BufferData(data []float32)
	DeleteBuffer(b BufferID)
	CreateVertexArray() VertexArrayID
	BindVertexArray(v VertexArrayID)
	DeleteVertexArray(v VertexArrayID)
	EnableVertexAttribArray(loc int32)
	VertexAttribPointer(loc int32, size int, normalized bool, stride int, offset int)

	// Uniform setters. Matrix values are column-major and uploaded
	// untransposed.
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, v0, v1 float32)
	Uniform3f(loc int32, v0, v1, v2 float32)
	Uniform4f(loc int32, v0, v1, v2, v3 float32)
	Uniform1i(loc int32, v int32)
	Uniform2i(loc int32, v0, v1 int32)
	Uniform3i(loc int32, v0, v1, v2 int32)
	Uniform4i(loc int32, v0, v1, v2, v3 int32)
	UniformMatrix2fv(loc int32, values []float32)
	UniformMatrix3fv(loc int32, values []float32)
	UniformMatrix4fv(loc int32, values []float32)

	// Drawing.
	DrawTriangles(first, count int)
}
