package validator

import "testing"

func TestNewValidatorIsValid(t *testing.T) {
	v := New()
	if !v.Valid() {
		t.Error("fresh validator should be valid")
	}
}

func TestCheckRecordsFailures(t *testing.T) {
	v := New()
	v.Check(true, "name", "must be provided")
	v.Check(false, "email", "must be provided")

	if v.Valid() {
		t.Error("validator with a failed check should be invalid")
	}
	if v.Errors["email"] != "must be provided" {
		t.Errorf("Errors[email] = %q, want %q", v.Errors["email"], "must be provided")
	}
	if _, exists := v.Errors["name"]; exists {
		t.Error("passing check should not record an error")
	}
}

func TestAddErrorFirstWins(t *testing.T) {
	v := New()
	v.AddError("email", "must be provided")
	v.AddError("email", "must be a valid email address")

	if v.Errors["email"] != "must be provided" {
		t.Errorf("Errors[email] = %q, want the first message", v.Errors["email"])
	}
}

func TestEmailRX(t *testing.T) {
	valid := []string{"a@x.com", "jane.doe@example.co.uk", "user+tag@example.org"}
	for _, email := range valid {
		if !Matches(email, EmailRX) {
			t.Errorf("EmailRX should match %q", email)
		}
	}

	invalid := []string{"", "plainaddress", "@example.com", "user@", "user @example.com"}
	for _, email := range invalid {
		if Matches(email, EmailRX) {
			t.Errorf("EmailRX should not match %q", email)
		}
	}
}
