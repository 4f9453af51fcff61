package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hashed, err := HashPassword("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "correct horse" {
		t.Fatal("password stored in plaintext")
	}
	if err := ComparePassword(hashed, "correct horse"); err != nil {
		t.Errorf("compare with correct password: %v", err)
	}
	if err := ComparePassword(hashed, "battery staple"); err == nil {
		t.Error("expected mismatch for wrong password")
	}
}
