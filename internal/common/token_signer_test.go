package common

import "testing"

func TestTokenSignerRoundTrip(t *testing.T) {
	signer := NewTokenSigner("test-secret")

	token, err := signer.Sign("session-abc")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	sessionID, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if sessionID != "session-abc" {
		t.Errorf("expected session-abc, got %q", sessionID)
	}
}

func TestTokenSignerRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenSigner("secret-one").Sign("session-abc")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := NewTokenSigner("secret-two").Verify(token); err == nil {
		t.Error("expected a token signed with another secret to be rejected")
	}
}

func TestTokenSignerRejectsGarbage(t *testing.T) {
	signer := NewTokenSigner("test-secret")

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := signer.Verify(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
