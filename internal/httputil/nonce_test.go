package httputil

import (
	"context"
	"testing"
)

func TestGenerateNonce_UniqueAnd22Characters(t *testing.T) {
	a, err := GenerateNonce()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GenerateNonce()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 16 bytes base64url-encoded without padding = 22 characters
	if len(a) != 22 {
		t.Errorf("expected 22-character nonce, got %d: %q", len(a), a)
	}
	if a == b {
		t.Errorf("expected unique nonces, got %q twice", a)
	}
}

func TestNonceFromContext(t *testing.T) {
	ctx := ContextWithNonce(context.Background(), "test-nonce-abc")
	if got := NonceFromContext(ctx); got != "test-nonce-abc" {
		t.Errorf("expected %q, got %q", "test-nonce-abc", got)
	}
	if got := NonceFromContext(context.Background()); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
