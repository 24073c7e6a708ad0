package hash

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndMatches(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hashed == "s3cret" {
		t.Fatalf("hash equals plaintext")
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Fatalf("unexpected hash format: %s", hashed)
	}
	if !h.Matches("s3cret", hashed) {
		t.Fatalf("Matches returned false for correct password")
	}
	if h.Matches("wrong", hashed) {
		t.Fatalf("Matches returned true for wrong password")
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct hashes for the same input")
	}
	if !h.Matches("same-input", a) || !h.Matches("same-input", b) {
		t.Fatalf("both hashes must verify against the original input")
	}
}

func TestNewBcryptHasher_CostClamped(t *testing.T) {
	if h := NewBcryptHasher(0); h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
	if h := NewBcryptHasher(99); h.cost != bcrypt.MaxCost {
		t.Fatalf("expected max cost, got %d", h.cost)
	}
}
