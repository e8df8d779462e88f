package commandrs

// Result is the outcome of a successful parse: an immutable store holding
// exactly one typed value per registered flag. Required flags hold the value
// coerced from the command line; optional flags hold either that or their
// default. Retrieval never mutates the store.
type Result struct {
	program *Program
	values  map[string]typedValue
}

// Get retrieves the value of a flag as the exact Go type it was registered
// with. Asking for a different type, even a wider one of the same kind, is a
// TypeMismatchError; asking for an unregistered name is an UnknownNameError.
func Get[T Value](r *Result, name string) (T, error) {
	var zero T
	_, _, typeName := kindOf[T]()
	f, tv, err := r.lookup(name)
	if err != nil {
		return zero, err
	}
	if f.typeName != typeName {
		return zero, &TypeMismatchError{Flag: name, Want: typeName, Got: f.typeName}
	}
	switch p := any(&zero).(type) {
	case *string:
		*p = tv.s
	case *bool:
		*p = tv.b
	case *int:
		*p = int(tv.i)
	case *int8:
		*p = int8(tv.i)
	case *int16:
		*p = int16(tv.i)
	case *int32:
		*p = int32(tv.i)
	case *int64:
		*p = tv.i
	case *uint:
		*p = uint(tv.u)
	case *uint8:
		*p = uint8(tv.u)
	case *uint16:
		*p = uint16(tv.u)
	case *uint32:
		*p = uint32(tv.u)
	case *uint64:
		*p = tv.u
	case *float32:
		*p = float32(tv.f)
	case *float64:
		*p = tv.f
	}
	return zero, nil
}

// GetString returns the value of a string flag.
func (r *Result) GetString(name string) (string, error) {
	f, tv, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	if f.Kind != KindString {
		return "", &TypeMismatchError{Flag: name, Want: "string", Got: f.typeName}
	}
	return tv.s, nil
}

// GetBool returns the value of a boolean flag, switch or explicit.
func (r *Result) GetBool(name string) (bool, error) {
	f, tv, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	if f.Kind != KindBool {
		return false, &TypeMismatchError{Flag: name, Want: "bool", Got: f.typeName}
	}
	return tv.b, nil
}

// GetInt returns the value of any signed integer flag, widened to int64.
func (r *Result) GetInt(name string) (int64, error) {
	f, tv, err := r.lookup(name)
	if err != nil {
		return 0, err
	}
	if f.Kind != KindInt {
		return 0, &TypeMismatchError{Flag: name, Want: "int64", Got: f.typeName}
	}
	return tv.i, nil
}

// GetUint returns the value of any unsigned integer flag, widened to uint64.
func (r *Result) GetUint(name string) (uint64, error) {
	f, tv, err := r.lookup(name)
	if err != nil {
		return 0, err
	}
	if f.Kind != KindUint {
		return 0, &TypeMismatchError{Flag: name, Want: "uint64", Got: f.typeName}
	}
	return tv.u, nil
}

// GetFloat returns the value of any float flag, widened to float64.
func (r *Result) GetFloat(name string) (float64, error) {
	f, tv, err := r.lookup(name)
	if err != nil {
		return 0, err
	}
	if f.Kind != KindFloat {
		return 0, &TypeMismatchError{Flag: name, Want: "float64", Got: f.typeName}
	}
	return tv.f, nil
}

func (r *Result) lookup(name string) (Flag, typedValue, error) {
	idx, ok := r.program.index[name]
	if !ok {
		return Flag{}, typedValue{}, &UnknownNameError{Name: name}
	}
	// values is fully populated for every registered flag, so this lookup
	// cannot miss.
	return r.program.flags[idx], r.values[name], nil
}
