package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("hunter22")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "hunter22" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !h.Verify("hunter22", digest) {
		t.Fatalf("Verify rejected the correct password")
	}
	if h.Verify("hunter23", digest) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password should differ (random salt)")
	}
	if !h.Verify("same-password", a) || !h.Verify("same-password", b) {
		t.Fatalf("both hashes must verify")
	}
}

func TestBcryptHasher_CorruptDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$10$tooshort"} {
		if h.Verify("anything", digest) {
			t.Fatalf("Verify accepted corrupt digest %q", digest)
		}
	}
}

func TestBcryptHasher_CostOutOfRange(t *testing.T) {
	h := NewBcryptHasher(999)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost fallback, got %d", h.cost)
	}
}
