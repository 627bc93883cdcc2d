package utils

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("darline_Wildin!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "darline_Wildin!" {
		t.Fatal("hash must differ from the plain password")
	}

	if err := hasher.Compare(hash, "darline_Wildin!"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := hasher.Compare(hash, "wrongPassword"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestPasswordHasher_CompareMalformedHash(t *testing.T) {
	err := NewPasswordHasher(bcrypt.MinCost).Compare("not-a-hash", "pw")
	if err == nil || errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected a non-mismatch error, got %v", err)
	}
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	if got := NewPasswordHasher(0).cost; got != bcrypt.DefaultCost {
		t.Errorf("expected default cost, got %d", got)
	}
	if got := NewPasswordHasher(bcrypt.MaxCost + 1).cost; got != bcrypt.DefaultCost {
		t.Errorf("expected default cost, got %d", got)
	}
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	if a == b {
		t.Fatal("expected distinct identifiers")
	}
	if !IsUUID(a) || !IsUUID(b) {
		t.Fatalf("expected valid uuids, got %s and %s", a, b)
	}
	if IsUUID("falseUserId") {
		t.Fatal("expected falseUserId to be rejected")
	}
}
