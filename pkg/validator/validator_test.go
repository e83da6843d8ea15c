package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/campusmart/campusmart/pkg/validator"
)

type sampleStruct struct {
	Email   string `validate:"required,email"`
	Title   string `validate:"required,min=1,max=100"`
	Contact string `validate:"omitempty,whatsapp"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		Email: "alice@iitd.ac.in",
		Title: "Physics textbook",
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Email"] != "This field is required" {
		t.Errorf("unexpected Email message: %q", m["Email"])
	}
	if m["Title"] != "This field is required" {
		t.Errorf("unexpected Title message: %q", m["Title"])
	}
}

func TestFormatValidationErrors_email(t *testing.T) {
	s := sampleStruct{Email: "not-an-email", Title: "ok"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Email"] != "Must be a valid email address" {
		t.Errorf("unexpected Email message: %q", m["Email"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{Email: "alice@iitd.ac.in", Title: strings.Repeat("x", 101)}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Title"] != "Maximum length is 100" {
		t.Errorf("unexpected Title message: %q", m["Title"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

func TestValidate_whatsappTag(t *testing.T) {
	cases := []struct {
		contact string
		valid   bool
	}{
		{"+919876543210", true},
		{"919876543210", true},
		{"+91 98765 43210", true}, // whitespace tolerated
		{"12345", false},          // too short
		{"+0123456789", false},    // leading zero
		{"+9198765abc10", false},  // letters
		{"+1234567890123456", false}, // 16 digits
	}
	for _, tc := range cases {
		s := sampleStruct{Email: "alice@iitd.ac.in", Title: "ok", Contact: tc.contact}
		err := pkgvalidator.Validate(&s)
		if tc.valid && err != nil {
			t.Errorf("contact %q: expected valid, got %v", tc.contact, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("contact %q: expected validation error", tc.contact)
		}
	}
}

// --- ValidateRequest ---

type listingReq struct {
	Title   string `json:"title"   validate:"required,min=1,max=100"`
	Price   int64  `json:"price"   validate:"required,gt=0"`
	Contact string `json:"contact" validate:"required,whatsapp"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"title":"Casio FX-991","price":800,"contact":"+919876543210"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[listingReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Title != "Casio FX-991" {
		t.Errorf("unexpected Title: %q", req.Title)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[listingReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"title":"Casio FX-991"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[listingReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing price and contact")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_badContact(t *testing.T) {
	body := `{"title":"Casio FX-991","price":800,"contact":"12345"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[listingReq](w, r)
	if ok {
		t.Fatal("expected ok=false for bad contact number")
	}
	if !strings.Contains(w.Body.String(), "WhatsApp") {
		t.Errorf("expected WhatsApp error in body, got: %s", w.Body.String())
	}
}
