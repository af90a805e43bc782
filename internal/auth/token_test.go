package auth

import (
	"errors"
	"testing"
	"time"
)

type testPayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSignVerifyRoundtrip(t *testing.T) {
	secret := []byte("secret-a")
	token, err := Sign(testPayload{Name: "alice", Count: 3}, secret, 5*time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	payload, err := Verify[testPayload](token, secret)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if payload.Name != "alice" || payload.Count != 3 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := Sign(testPayload{Name: "alice"}, []byte("secret-a"), 5*time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Verify[testPayload](token, []byte("secret-b")); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	secret := []byte("secret-a")
	token, err := Sign(testPayload{Name: "alice"}, secret, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Verify[testPayload](token, secret); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := Verify[testPayload]("not-a-token", []byte("secret-a")); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
	if _, err := Verify[testPayload]("", []byte("secret-a")); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for empty token, got %v", err)
	}
}

func TestDecodeUnverified(t *testing.T) {
	token, err := Sign(testPayload{Name: "alice"}, []byte("secret-a"), 5*time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	// No secret involved; payload and expiry come back regardless of who signed.
	payload, expiry, err := DecodeUnverified[testPayload](token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Name != "alice" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if expiry.Before(time.Now()) {
		t.Fatalf("expected future expiry, got %v", expiry)
	}

	if _, _, err := DecodeUnverified[testPayload]("garbage"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
