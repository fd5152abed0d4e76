package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type createOrderBody struct {
	CustomerName string `json:"customer_name" validate:"required,min=1,max=255"`
	Group        string `json:"group"         validate:"required,min=1,max=255"`
	Quantity     int    `json:"quantity"      validate:"required,gt=0"`
}

func TestValidate_Success(t *testing.T) {
	err := Validate(&createOrderBody{CustomerName: "Nguyen Van An", Group: "Retail", Quantity: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(&createOrderBody{Quantity: 1})
	if err == nil {
		t.Fatal("expected validation error for missing fields")
	}
	fields := FormatValidationErrors(err)
	if fields["customer_name"] == "" {
		t.Errorf("expected customer_name error, got %v", fields)
	}
	if fields["group"] == "" {
		t.Errorf("expected group error, got %v", fields)
	}
}

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	err := Validate(&createOrderBody{CustomerName: "A", Group: "B", Quantity: 0})
	if err == nil {
		t.Fatal("expected validation error for zero quantity")
	}
	fields := FormatValidationErrors(err)
	if _, ok := fields["quantity"]; !ok {
		t.Errorf("expected error keyed by json name, got %v", fields)
	}
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	fields := FormatValidationErrors(http.ErrBodyNotAllowed)
	if len(fields) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", fields)
	}
}

func TestValidateRequest_InvalidJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))

	_, ok := ValidateRequest[createOrderBody](w, r)
	if ok {
		t.Fatal("expected failure for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestValidateRequest_FailsValidation(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"customer_name":"","group":"","quantity":-1}`))

	_, ok := ValidateRequest[createOrderBody](w, r)
	if ok {
		t.Fatal("expected validation failure")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestValidateRequest_Success(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"customer_name":"Tran Thi Bich","group":"Sen Restaurant","quantity":5}`))

	req, ok := ValidateRequest[createOrderBody](w, r)
	if !ok {
		t.Fatalf("expected success, response: %s", w.Body.String())
	}
	if req.CustomerName != "Tran Thi Bich" || req.Quantity != 5 {
		t.Errorf("unexpected decoded body: %+v", req)
	}
}
