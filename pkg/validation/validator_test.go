package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type signup struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,max=5"`
}

func TestToDetails_UsesFormTagNames(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&signup{Email: "not-an-email", Role: "principal"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	details := ToDetails(err)
	want := map[string]string{
		"name":  "is required",
		"email": "must be a valid email",
		"role":  "must be at most 5 characters long",
	}
	for field, msg := range want {
		if details[field] != msg {
			t.Errorf("field %s: expected %q, got %q (all: %v)", field, msg, details[field], details)
		}
	}
}

func TestToDetails_NonValidationErrors(t *testing.T) {
	t.Parallel()

	if ToDetails(nil) != nil {
		t.Fatal("expected nil details for nil error")
	}

	err := json.Unmarshal([]byte("{"), &struct{}{})
	if got := ToDetails(err)["payload"]; got != "invalid json" {
		t.Fatalf("expected invalid json, got %q", got)
	}

	if got := ToDetails(errors.New("boom"))["payload"]; got != "invalid payload" {
		t.Fatalf("expected invalid payload, got %q", got)
	}
}

func TestInit_Idempotent(t *testing.T) {
	Init()
	Init()
}
