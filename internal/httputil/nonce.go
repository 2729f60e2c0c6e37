package httputil

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const nonceBytes = 16

type nonceKey struct{}

// GenerateNonce returns a fresh value for the CSP nonce-source of inline
// <style> and <script> tags.
func GenerateNonce() (string, error) {
	b := make([]byte, nonceBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate csp nonce: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func ContextWithNonce(ctx context.Context, nonce string) context.Context {
	return context.WithValue(ctx, nonceKey{}, nonce)
}

func NonceFromContext(ctx context.Context) string {
	nonce, _ := ctx.Value(nonceKey{}).(string)
	return nonce
}
