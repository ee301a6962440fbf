package shaderquad

import "fmt"

// Stage identifies a shader pipeline stage.
type Stage int

// Shader stages.
const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the stage name as used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// GLSLType is the closed set of uniform types the binder understands.
// It mirrors the GLSL type reported by the driver for each active uniform.
type GLSLType int

// Uniform types.
const (
	TypeFloat GLSLType = iota
	TypeVec2
	TypeVec3
	TypeVec4
	TypeInt
	TypeIVec2
	TypeIVec3
	TypeIVec4
	TypeBool
	TypeBVec2
	TypeBVec3
	TypeBVec4
	TypeMat2
	TypeMat3
	TypeMat4
	TypeSampler2D
	TypeSamplerCube
)

// Raw GLSL type enums as reported by glGetActiveUniform.
const (
	glFloat       = 0x1406
	glFloatVec2   = 0x8B50
	glFloatVec3   = 0x8B51
	glFloatVec4   = 0x8B52
	glInt         = 0x1404
	glIntVec2     = 0x8B53
	glIntVec3     = 0x8B54
	glIntVec4     = 0x8B55
	glBool        = 0x8B56
	glBoolVec2    = 0x8B57
	glBoolVec3    = 0x8B58
	glBoolVec4    = 0x8B59
	glFloatMat2   = 0x8B5A
	glFloatMat3   = 0x8B5B
	glFloatMat4   = 0x8B5C
	glSampler2D   = 0x8B5E
	glSamplerCube = 0x8B60
)

var rawToType = map[uint32]GLSLType{
	glFloat:       TypeFloat,
	glFloatVec2:   TypeVec2,
	glFloatVec3:   TypeVec3,
	glFloatVec4:   TypeVec4,
	glInt:         TypeInt,
	glIntVec2:     TypeIVec2,
	glIntVec3:     TypeIVec3,
	glIntVec4:     TypeIVec4,
	glBool:        TypeBool,
	glBoolVec2:    TypeBVec2,
	glBoolVec3:    TypeBVec3,
	glBoolVec4:    TypeBVec4,
	glFloatMat2:   TypeMat2,
	glFloatMat3:   TypeMat3,
	glFloatMat4:   TypeMat4,
	glSampler2D:   TypeSampler2D,
	glSamplerCube: TypeSamplerCube,
}

// typeFromRaw maps a driver-reported type enum to a GLSLType.
func typeFromRaw(raw uint32) (GLSLType, bool) {
	t, ok := rawToType[raw]
	return t, ok
}

// String returns the GLSL spelling of the type.
func (t GLSLType) String() string {
	switch t {
	case TypeFloat:
		return "float"
	case TypeVec2:
		return "vec2"
	case TypeVec3:
		return "vec3"
	case TypeVec4:
		return "vec4"
	case TypeInt:
		return "int"
	case TypeIVec2:
		return "ivec2"
	case TypeIVec3:
		return "ivec3"
	case TypeIVec4:
		return "ivec4"
	case TypeBool:
		return "bool"
	case TypeBVec2:
		return "bvec2"
	case TypeBVec3:
		return "bvec3"
	case TypeBVec4:
		return "bvec4"
	case TypeMat2:
		return "mat2"
	case TypeMat3:
		return "mat3"
	case TypeMat4:
		return "mat4"
	case TypeSampler2D:
		return "sampler2D"
	case TypeSamplerCube:
		return "samplerCube"
	default:
		return fmt.Sprintf("GLSLType(%d)", int(t))
	}
}

// Components returns the number of host elements the type consumes:
// 1 for scalars and samplers, 2-4 for vectors, 4/9/16 for matrices.
func (t GLSLType) Components() int {
	switch t {
	case TypeVec2, TypeIVec2, TypeBVec2:
		return 2
	case TypeVec3, TypeIVec3, TypeBVec3:
		return 3
	case TypeVec4, TypeIVec4, TypeBVec4:
		return 4
	case TypeMat2:
		return 4
	case TypeMat3:
		return 9
	case TypeMat4:
		return 16
	default:
		return 1
	}
}
