package validation

import (
	"reflect"
	"testing"
)

func TestRequired(t *testing.T) {
	if r := Required("Ana", "Name"); !r.Valid {
		t.Fatalf("expected valid, got %q", r.Message)
	}
	if r := Required("", "Name"); r.Valid || r.Message != "Name is required" {
		t.Fatalf("expected 'Name is required', got valid=%v message=%q", r.Valid, r.Message)
	}
	// Whitespace-only values are empty after trimming
	if r := Required("   \t", "Message"); r.Valid || r.Message != "Message is required" {
		t.Fatalf("expected 'Message is required', got valid=%v message=%q", r.Valid, r.Message)
	}
}

func TestEmail(t *testing.T) {
	valid := []string{"ana@x.com", "a.b+c@sub.domain.co", "user_1@machines.io"}
	for _, e := range valid {
		if r := Email(e); !r.Valid {
			t.Errorf("expected %q to be valid, got %q", e, r.Message)
		}
	}

	invalid := []string{"", "bad", "no@tld", "two@@x.com", "spa ce@x.com", "@x.com", "a@.com "}
	for _, e := range invalid {
		r := Email(e)
		if r.Valid {
			t.Errorf("expected %q to be invalid", e)
			continue
		}
		if r.Message != "Please enter a valid email address" {
			t.Errorf("unexpected message for %q: %q", e, r.Message)
		}
	}
}

func TestPhone(t *testing.T) {
	// Empty is valid since the field is optional
	if r := Phone(""); !r.Valid {
		t.Fatalf("expected empty phone to be valid, got %q", r.Message)
	}
	if r := Phone("   "); !r.Valid {
		t.Fatalf("expected whitespace phone to be valid, got %q", r.Message)
	}

	valid := []string{"+1 (234) 567-890", "12345678", "+49 170 1234567"}
	for _, p := range valid {
		if r := Phone(p); !r.Valid {
			t.Errorf("expected %q to be valid, got %q", p, r.Message)
		}
	}

	invalid := []string{"1234567", "abc12345", "+12345678901234567890123"}
	for _, p := range invalid {
		if r := Phone(p); r.Valid {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestInquiryAggregatesAllFailures(t *testing.T) {
	errs := Inquiry(InquiryPayload{Name: "", Email: "bad", Message: ""})

	want := map[string]string{
		"name":    "Name is required",
		"email":   "Please enter a valid email address",
		"message": "Message is required",
	}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestInquiryNoFalseFlags(t *testing.T) {
	errs := Inquiry(InquiryPayload{Name: "Ana", Email: "ana@x.com", Message: "Need a quote"})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	// A single missing field is flagged alone
	errs = Inquiry(InquiryPayload{Name: "", Email: "ana@x.com", Message: "Need a quote"})
	if len(errs) != 1 || errs["name"] == "" {
		t.Fatalf("expected only name to be flagged, got %v", errs)
	}

	// An invalid optional phone is flagged without touching the others
	errs = Inquiry(InquiryPayload{Name: "Ana", Email: "ana@x.com", Phone: "abc", Message: "Need a quote"})
	if len(errs) != 1 || errs["phone"] != "Please enter a valid phone number" {
		t.Fatalf("expected only phone to be flagged, got %v", errs)
	}
}

func TestInquiryIsDeterministic(t *testing.T) {
	payload := InquiryPayload{Name: "", Email: "bad", Phone: "xyz", Message: " "}
	first := Inquiry(payload)
	second := Inquiry(payload)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v vs %v", first, second)
	}
}
