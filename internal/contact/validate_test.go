package contact

import (
	"errors"
	"testing"
)

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name      string
		nome      string
		email     string
		telefone  string
		wantField string
	}{
		{"all present", "Ana", "ana@x.com", "111", ""},
		{"missing nome", "", "ana@x.com", "111", "nome"},
		{"blank email", "Ana", "   ", "111", "email"},
		{"missing telefone", "Ana", "ana@x.com", "", "telefone"},
		{"first missing wins", "", "", "", "nome"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFields(tt.nome, tt.email, tt.telefone)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateFields() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("error = %v, want ErrMissingField", err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %T, want *FieldError", err)
			}
			if fe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", fe.Field, tt.wantField)
			}
		})
	}
}

func TestGeneratorFor(t *testing.T) {
	for _, name := range []string{"", "uuid", "sequential"} {
		if _, ok := GeneratorFor(name); !ok {
			t.Errorf("GeneratorFor(%q) not found", name)
		}
	}
	if _, ok := GeneratorFor("snowflake"); ok {
		t.Error("GeneratorFor(snowflake) should be unknown")
	}
}

func TestSequential_Counts(t *testing.T) {
	gen := Sequential()
	for _, want := range []string{"1", "2", "3"} {
		if got := gen(); got != want {
			t.Errorf("gen() = %q, want %q", got, want)
		}
	}
}
