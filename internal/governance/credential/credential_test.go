package credential

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	v := NewVerifier(bcrypt.MinCost)

	digest, err := v.Hash("batman123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "batman123" {
		t.Fatal("digest must not equal plaintext")
	}
	if !v.Verify("batman123", digest) {
		t.Fatal("expected matching plaintext to verify")
	}
}

func TestVerifyRejectsNearMisses(t *testing.T) {
	v := NewVerifier(bcrypt.MinCost)
	digest, err := v.Hash("batman123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	for _, plaintext := range []string{"", "batman124", "Batman123", "batman123 "} {
		if v.Verify(plaintext, digest) {
			t.Fatalf("expected %q not to verify", plaintext)
		}
	}
}

func TestVerifyMalformedDigestIsFalse(t *testing.T) {
	v := NewVerifier(bcrypt.MinCost)
	for _, digest := range []string{"", "not-a-digest", "$2a$xx$broken"} {
		if v.Verify("anything", digest) {
			t.Fatalf("expected malformed digest %q to verify false", digest)
		}
	}
}

func TestHashSaltsPerCredential(t *testing.T) {
	v := NewVerifier(bcrypt.MinCost)
	first, err := v.Hash("batman123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := v.Hash("batman123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct digests for the same plaintext")
	}
}

func TestNewVerifierClampsCost(t *testing.T) {
	v := NewVerifier(200)
	if v.cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want default %d", v.cost, bcrypt.DefaultCost)
	}
}
