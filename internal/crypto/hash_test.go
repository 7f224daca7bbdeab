package crypto

import (
	"strings"
	"testing"
)

func TestHashPasswordAndVerify(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}
	if hash == "secret1" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if !VerifyPassword("secret1", hash) {
		t.Error("VerifyPassword() = false for correct password")
	}
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if VerifyPassword("wrong", hash) {
		t.Error("VerifyPassword() = true for wrong password")
	}
	if VerifyPassword("", hash) {
		t.Error("VerifyPassword() = true for empty password")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	second, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ by salt")
	}
	if !VerifyPassword("secret1", first) || !VerifyPassword("secret1", second) {
		t.Error("both hashes should verify the original password")
	}
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	if VerifyPassword("secret1", "not-a-bcrypt-hash") {
		t.Error("VerifyPassword() = true for garbage hash")
	}
	if VerifyPassword("secret1", strings.Repeat("x", 60)) {
		t.Error("VerifyPassword() = true for malformed hash")
	}
}
