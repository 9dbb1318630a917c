package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Category string `validate:"required"`
	Limit    int    `validate:"min=1,max=100"`
}

func TestValidateStructValid(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Category: "food", Limit: 10})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateStructMissingRequired(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Limit: 10})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Fields) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(err.Fields))
	}
	fe := err.Fields[0]
	if fe.Field != "Category" || fe.Tag != "required" {
		t.Errorf("unexpected field error: %+v", fe)
	}
	if fe.Message != "Category is required" {
		t.Errorf("unexpected message: %q", fe.Message)
	}
}

func TestValidateStructOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantTag string
	}{
		{"below min", 0, "min"},
		{"above max", 101, "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&sampleRequest{Category: "food", Limit: tt.limit})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Fields[0].Tag != tt.wantTag {
				t.Errorf("expected tag %s, got %s", tt.wantTag, err.Fields[0].Tag)
			}
		})
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Limit: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Fields))
	}
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("combined message should join errors: %q", err.Error())
	}
}
