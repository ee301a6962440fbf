package shaderquad

import "fmt"

type valueKind int

const (
	valueNumber valueKind = iota
	valueBool
	valueSequence
)

// Value is the strongly-typed form of a host-supplied uniform value: a
// single number, a boolean, or an ordered sequence of numbers. The binder
// validates a Value against the uniform's declared GLSL type before issuing
// any GPU call, so a mismatched value never partially applies.
type Value struct {
	kind valueKind
	num  float64
	seq  []float64
}

// Float wraps a single number.
func Float(v float64) Value {
	return Value{kind: valueNumber, num: v}
}

// Int wraps a single integer. Used for int uniforms and sampler texture
// unit indices.
func Int(v int) Value {
	return Value{kind: valueNumber, num: float64(v)}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	v := Value{kind: valueBool}
	if b {
		v.num = 1
	}
	return v
}

// Sequence wraps an ordered sequence of numbers, for vector and matrix
// uniforms. Matrix values are column-major.
func Sequence(vs ...float64) Value {
	return Value{kind: valueSequence, seq: vs}
}

// ValueOf converts a loosely-typed host value into a Value. Accepted inputs
// are Value itself, Go numbers, bool, and slices of numbers (including
// []any whose elements are all numbers). Anything else is rejected here,
// before any uniform lookup or GPU call.
func ValueOf(host any) (Value, error) {
	switch v := host.(type) {
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case float64:
		return Float(v), nil
	case float32:
		return Float(float64(v)), nil
	case int:
		return Float(float64(v)), nil
	case int32:
		return Float(float64(v)), nil
	case int64:
		return Float(float64(v)), nil
	case uint:
		return Float(float64(v)), nil
	case uint32:
		return Float(float64(v)), nil
	case []float64:
		return Sequence(v...), nil
	case []float32:
		seq := make([]float64, len(v))
		for i, f := range v {
			seq[i] = float64(f)
		}
		return Value{kind: valueSequence, seq: seq}, nil
	case []int:
		seq := make([]float64, len(v))
		for i, n := range v {
			seq[i] = float64(n)
		}
		return Value{kind: valueSequence, seq: seq}, nil
	case []any:
		seq := make([]float64, len(v))
		for i, el := range v {
			ev, err := ValueOf(el)
			if err != nil || ev.kind != valueNumber {
				return Value{}, fmt.Errorf("sequence element %d is not a number (%T)", i, el)
			}
			seq[i] = ev.num
		}
		return Value{kind: valueSequence, seq: seq}, nil
	case nil:
		return Value{}, fmt.Errorf("missing value")
	default:
		return Value{}, fmt.Errorf("cannot convert %T to a uniform value", host)
	}
}

// scalar returns the value as a single number.
func (v Value) scalar() (float64, bool) {
	if v.kind == valueNumber || v.kind == valueBool {
		return v.num, true
	}
	return 0, false
}

// truthy coerces the value to a bool uniform's 0/1 integer. Numbers are
// truthy when non-zero.
func (v Value) truthy() (int32, bool) {
	switch v.kind {
	case valueBool, valueNumber:
		if v.num != 0 {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// floats returns the value as a sequence of exactly n float32 elements.
func (v Value) floats(n int) ([]float32, bool) {
	if v.kind != valueSequence || len(v.seq) != n {
		return nil, false
	}
	out := make([]float32, n)
	for i, f := range v.seq {
		out[i] = float32(f)
	}
	return out, true
}

// ints returns the value as a sequence of exactly n int32 elements.
func (v Value) ints(n int) ([]int32, bool) {
	if v.kind != valueSequence || len(v.seq) != n {
		return nil, false
	}
	out := make([]int32, n)
	for i, f := range v.seq {
		out[i] = int32(f)
	}
	return out, true
}
