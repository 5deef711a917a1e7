package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)
	claim := UserClaim{ID: 42, Name: "alice", Email: "alice@example.com"}

	tok, err := m.Issue(claim)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != claim {
		t.Fatalf("claim mismatch: got %+v want %+v", got, claim)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", -1*time.Second)

	tok, err := m.Issue(UserClaim{ID: 1})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = m.Verify(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	tok, err := issuer.Issue(UserClaim{ID: 1, Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Verify(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Verify(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

// Every failure mode must collapse to the same error so callers cannot tell
// a bad signature from an expired token.
func TestVerify_UniformError(t *testing.T) {
	t.Parallel()

	expired := NewManager("secret", -time.Minute)
	foreign := NewManager("other-secret", time.Hour)
	m := NewManager("secret", time.Hour)

	expiredTok, _ := expired.Issue(UserClaim{ID: 1})
	foreignTok, _ := foreign.Issue(UserClaim{ID: 1})

	_, errExpired := m.Verify(expiredTok)
	_, errForeign := m.Verify(foreignTok)
	_, errMalformed := m.Verify("not-a-token")

	if errExpired != ErrInvalidToken || errForeign != ErrInvalidToken || errMalformed != ErrInvalidToken {
		t.Fatalf("errors differ: expired=%v foreign=%v malformed=%v", errExpired, errForeign, errMalformed)
	}
}
