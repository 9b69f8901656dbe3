package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"ingredients":["Bacon","Lettuce"]}`, false},
		{"valid with optional", `{"ingredients":["Bacon"],"category":"sandwiches"}`, false},
		{"missing required", `{"category":"salads"}`, true},
		{"empty list", `{"ingredients":[]}`, true},
		{"too many", `{"ingredients":["a","b","c","d","e","f","g","h","i","j","k","l","m","n","o","p"]}`, true},
		{"wrong item type", `{"ingredients":[1,2]}`, true},
		{"bad enum", `{"ingredients":["a"],"category":"desserts"}`, true},
		{"extra property", `{"ingredients":["a"],"price":3}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(ingredientsSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
