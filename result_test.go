package commandrs

import (
	"errors"
	"testing"
)

func observationResult(t *testing.T) *Result {
	t.Helper()
	b := NewProgram("")
	if err := Required[string](b, "name", ""); err != nil {
		t.Fatalf("Required(name) = %v", err)
	}
	if err := Required[uint16](b, "port", ""); err != nil {
		t.Fatalf("Required(port) = %v", err)
	}
	if err := Optional[int8](b, "mood", -1, ""); err != nil {
		t.Fatalf("Optional(mood) = %v", err)
	}
	if err := Optional(b, "ratio", 0.25, ""); err != nil {
		t.Fatalf("Optional(ratio) = %v", err)
	}
	if err := b.Switch("pats", ""); err != nil {
		t.Fatalf("Switch(pats) = %v", err)
	}

	result, err := b.Build().Parse([]string{"--name", "Ollie", "--port", "8080", "--pats"})
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	return result
}

func TestGetExactTypes(t *testing.T) {
	r := observationResult(t)

	if got, err := Get[string](r, "name"); err != nil || got != "Ollie" {
		t.Errorf("Get[string](name) = (%q, %v), want (%q, nil)", got, err, "Ollie")
	}
	if got, err := Get[uint16](r, "port"); err != nil || got != 8080 {
		t.Errorf("Get[uint16](port) = (%d, %v), want (8080, nil)", got, err)
	}
	if got, err := Get[int8](r, "mood"); err != nil || got != -1 {
		t.Errorf("Get[int8](mood) = (%d, %v), want (-1, nil)", got, err)
	}
	if got, err := Get[float64](r, "ratio"); err != nil || got != 0.25 {
		t.Errorf("Get[float64](ratio) = (%v, %v), want (0.25, nil)", got, err)
	}
	if got, err := Get[bool](r, "pats"); err != nil || !got {
		t.Errorf("Get[bool](pats) = (%v, %v), want (true, nil)", got, err)
	}
}

func TestGetTypeMismatch(t *testing.T) {
	r := observationResult(t)

	tests := []struct {
		name string
		get  func() error
		want string
		got  string
	}{
		{
			name: "wider uint for uint16",
			get:  func() error { _, err := Get[uint64](r, "port"); return err },
			want: "uint64",
			got:  "uint16",
		},
		{
			name: "string for bool",
			get:  func() error { _, err := Get[string](r, "pats"); return err },
			want: "string",
			got:  "bool",
		},
		{
			name: "int for string",
			get:  func() error { _, err := Get[int](r, "name"); return err },
			want: "int",
			got:  "string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.get()
			var mismatch *TypeMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("Get = %v, want TypeMismatchError", err)
			}
			if mismatch.Want != tt.want || mismatch.Got != tt.got {
				t.Errorf("TypeMismatchError = {Want:%q Got:%q}, want {Want:%q Got:%q}",
					mismatch.Want, mismatch.Got, tt.want, tt.got)
			}
		})
	}
}

func TestGetUnknownName(t *testing.T) {
	r := observationResult(t)
	_, err := Get[string](r, "never-registered")
	var unknown *UnknownNameError
	if !errors.As(err, &unknown) {
		t.Fatalf("Get(never-registered) = %v, want UnknownNameError", err)
	}
	if unknown.Name != "never-registered" {
		t.Errorf("UnknownNameError.Name = %q", unknown.Name)
	}
}

func TestConvenienceAccessorsWiden(t *testing.T) {
	r := observationResult(t)

	if got, err := r.GetString("name"); err != nil || got != "Ollie" {
		t.Errorf("GetString(name) = (%q, %v)", got, err)
	}
	if got, err := r.GetBool("pats"); err != nil || !got {
		t.Errorf("GetBool(pats) = (%v, %v)", got, err)
	}
	// Kind-checked, not width-checked: a uint16 flag reads fine as uint64.
	if got, err := r.GetUint("port"); err != nil || got != 8080 {
		t.Errorf("GetUint(port) = (%d, %v)", got, err)
	}
	if got, err := r.GetInt("mood"); err != nil || got != -1 {
		t.Errorf("GetInt(mood) = (%d, %v)", got, err)
	}
	if got, err := r.GetFloat("ratio"); err != nil || got != 0.25 {
		t.Errorf("GetFloat(ratio) = (%v, %v)", got, err)
	}
}

func TestConvenienceAccessorsCheckKind(t *testing.T) {
	r := observationResult(t)

	var mismatch *TypeMismatchError
	if _, err := r.GetInt("port"); !errors.As(err, &mismatch) {
		t.Errorf("GetInt(port) = %v, want TypeMismatchError", err)
	}
	if _, err := r.GetString("port"); !errors.As(err, &mismatch) {
		t.Errorf("GetString(port) = %v, want TypeMismatchError", err)
	}
	var unknown *UnknownNameError
	if _, err := r.GetBool("nope"); !errors.As(err, &unknown) {
		t.Errorf("GetBool(nope) = %v, want UnknownNameError", err)
	}
}
