package commandrs

import "strconv"

// Kind identifies which family of Go types a flag holds. The set is closed:
// every coercion and formatting decision is a switch over these constants.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// Value is the set of Go types a flag may be registered with.
type Value interface {
	bool | string |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// typedValue is the tagged union behind every parsed or default flag value.
// Numeric values are widened to 64 bits for storage; the flag's schema entry
// remembers the registered width and exact type name.
type typedValue struct {
	kind Kind
	s    string
	b    bool
	i    int64
	u    uint64
	f    float64
}

// kindOf maps a registered Go type onto its kind tag, bit width, and name.
// The bit width feeds strconv so that coercion rejects values which overflow
// the declared type, not just the 64-bit storage.
func kindOf[T Value]() (kind Kind, bits int, typeName string) {
	switch any(*new(T)).(type) {
	case string:
		return KindString, 0, "string"
	case bool:
		return KindBool, 0, "bool"
	case int:
		return KindInt, strconv.IntSize, "int"
	case int8:
		return KindInt, 8, "int8"
	case int16:
		return KindInt, 16, "int16"
	case int32:
		return KindInt, 32, "int32"
	case int64:
		return KindInt, 64, "int64"
	case uint:
		return KindUint, strconv.IntSize, "uint"
	case uint8:
		return KindUint, 8, "uint8"
	case uint16:
		return KindUint, 16, "uint16"
	case uint32:
		return KindUint, 32, "uint32"
	case uint64:
		return KindUint, 64, "uint64"
	case float32:
		return KindFloat, 32, "float32"
	}
	return KindFloat, 64, "float64"
}

// valueOf widens a concrete value into the tagged union.
func valueOf[T Value](v T) typedValue {
	kind, _, _ := kindOf[T]()
	tv := typedValue{kind: kind}
	switch x := any(v).(type) {
	case string:
		tv.s = x
	case bool:
		tv.b = x
	case int:
		tv.i = int64(x)
	case int8:
		tv.i = int64(x)
	case int16:
		tv.i = int64(x)
	case int32:
		tv.i = int64(x)
	case int64:
		tv.i = x
	case uint:
		tv.u = uint64(x)
	case uint8:
		tv.u = uint64(x)
	case uint16:
		tv.u = uint64(x)
	case uint32:
		tv.u = uint64(x)
	case uint64:
		tv.u = x
	case float32:
		tv.f = float64(x)
	case float64:
		tv.f = x
	}
	return tv
}

// parseToken coerces one raw token into a typed value for the given flag.
// Booleans accept only the exact tokens "true" and "false"; integers use
// base-10 and fail on overflow of the registered width.
func parseToken(f Flag, text string) (typedValue, error) {
	tv := typedValue{kind: f.Kind}
	switch f.Kind {
	case KindString:
		tv.s = text
		return tv, nil
	case KindBool:
		switch text {
		case "true":
			tv.b = true
		case "false":
			tv.b = false
		default:
			return typedValue{}, &InvalidValueError{Flag: f.Name, Text: text, Type: f.typeName}
		}
		return tv, nil
	case KindInt:
		i, err := strconv.ParseInt(text, 10, f.bits)
		if err != nil {
			return typedValue{}, &InvalidValueError{Flag: f.Name, Text: text, Type: f.typeName}
		}
		tv.i = i
		return tv, nil
	case KindUint:
		u, err := strconv.ParseUint(text, 10, f.bits)
		if err != nil {
			return typedValue{}, &InvalidValueError{Flag: f.Name, Text: text, Type: f.typeName}
		}
		tv.u = u
		return tv, nil
	}
	fl, err := strconv.ParseFloat(text, f.bits)
	if err != nil {
		return typedValue{}, &InvalidValueError{Flag: f.Name, Text: text, Type: f.typeName}
	}
	tv.f = fl
	return tv, nil
}

// formatValue renders a typed value back to its canonical text form, the
// inverse of parseToken for canonical inputs. Used for help text defaults.
func formatValue(tv typedValue) string {
	switch tv.kind {
	case KindString:
		return tv.s
	case KindBool:
		return strconv.FormatBool(tv.b)
	case KindInt:
		return strconv.FormatInt(tv.i, 10)
	case KindUint:
		return strconv.FormatUint(tv.u, 10)
	}
	return strconv.FormatFloat(tv.f, 'g', -1, 64)
}
