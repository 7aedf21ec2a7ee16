package auth

import (
	"strings"
	"testing"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	password := "securepassword123"
	hash, err := svc.Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == password {
		t.Error("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}

	if !svc.Verify(hash, password) {
		t.Error("Verify() = false for the correct password")
	}
	if svc.Verify(hash, "wrongpassword") {
		t.Error("Verify() = true for a wrong password")
	}
}

func TestPasswordService_HashesDiffer(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := svc.Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ by salt")
	}
}

func TestPasswordService_VerifyMalformedHash(t *testing.T) {
	svc := NewPasswordService()

	if svc.Verify("not-a-bcrypt-hash", "anything") {
		t.Error("Verify() = true for a malformed stored hash")
	}
	if svc.Verify("", "anything") {
		t.Error("Verify() = true for an empty stored hash")
	}
}
