package shaderquad

// Descriptor records one active uniform as reported by the driver after a
// successful link.
type Descriptor struct {
	Type     GLSLType
	Location int32
	Raw      uint32 // driver type enum, kept for unsupported-type reporting
	Count    int    // declared array size; 1 for non-array uniforms
}

// UniformTable maps uniform names to their descriptors. It is built once
// from the linked program and never mutated afterwards.
//
// Array uniforms are recorded under the driver-reported name (typically
// "name[0]") with their element type; element-indexed access is not modeled,
// so setting through the table reaches element 0 only.
type UniformTable map[string]Descriptor

// introspectUniforms enumerates the active uniforms of a linked program and
// builds the lookup table used for all subsequent value dispatch. Uniforms
// with a driver type outside the supported set are still recorded, so that
// setting them reports the raw type instead of an unknown name.
func introspectUniforms(g GL, p ProgramID) UniformTable {
	count := g.ActiveUniformCount(p)
	table := make(UniformTable, count)
	for i := 0; i < count; i++ {
		name, size, raw := g.ActiveUniform(p, i, MaxNameLength)
		loc := g.UniformLocation(p, name)
		if loc < 0 {
			continue
		}
		desc := Descriptor{Location: loc, Raw: raw, Count: size}
		if t, ok := typeFromRaw(raw); ok {
			desc.Type = t
		} else {
			desc.Type = GLSLType(-1)
		}
		table[name] = desc
	}
	return table
}

// setUniform validates the value shape against the descriptor and issues
// exactly one typed GPU call, or returns an error having issued none.
func setUniform(g GL, name string, d Descriptor, v Value) error {
	mismatch := func() error { return &TypeMismatchError{Name: name, Expected: d.Type} }

	switch d.Type {
	case TypeFloat:
		f, ok := v.scalar()
		if !ok {
			return mismatch()
		}
		g.Uniform1f(d.Location, float32(f))

	case TypeInt:
		f, ok := v.scalar()
		if !ok {
			return mismatch()
		}
		g.Uniform1i(d.Location, int32(f))

	case TypeBool:
		b, ok := v.truthy()
		if !ok {
			return mismatch()
		}
		g.Uniform1i(d.Location, b)

	case TypeVec2:
		fs, ok := v.floats(2)
		if !ok {
			return mismatch()
		}
		g.Uniform2f(d.Location, fs[0], fs[1])

	case TypeVec3:
		fs, ok := v.floats(3)
		if !ok {
			return mismatch()
		}
		g.Uniform3f(d.Location, fs[0], fs[1], fs[2])

	case TypeVec4:
		fs, ok := v.floats(4)
		if !ok {
			return mismatch()
		}
		g.Uniform4f(d.Location, fs[0], fs[1], fs[2], fs[3])

	case TypeIVec2, TypeBVec2:
		is, ok := v.ints(2)
		if !ok {
			return mismatch()
		}
		g.Uniform2i(d.Location, is[0], is[1])

	case TypeIVec3, TypeBVec3:
		is, ok := v.ints(3)
		if !ok {
			return mismatch()
		}
		g.Uniform3i(d.Location, is[0], is[1], is[2])

	case TypeIVec4, TypeBVec4:
		is, ok := v.ints(4)
		if !ok {
			return mismatch()
		}
		g.Uniform4i(d.Location, is[0], is[1], is[2], is[3])

	case TypeMat2:
		fs, ok := v.floats(4)
		if !ok {
			return mismatch()
		}
		g.UniformMatrix2fv(d.Location, fs)

	case TypeMat3:
		fs, ok := v.floats(9)
		if !ok {
			return mismatch()
		}
		g.UniformMatrix3fv(d.Location, fs)

	case TypeMat4:
		fs, ok := v.floats(16)
		if !ok {
			return mismatch()
		}
		g.UniformMatrix4fv(d.Location, fs)

	case TypeSampler2D, TypeSamplerCube:
		f, ok := v.scalar()
		if !ok {
			return mismatch()
		}
		g.Uniform1i(d.Location, int32(f))

	default:
		return &UnsupportedTypeError{Name: name, Raw: d.Raw}
	}
	return nil
}
