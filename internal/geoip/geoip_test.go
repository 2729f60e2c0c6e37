package geoip

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_EmptyPathDisablesLookup(t *testing.T) {
	r := Open("")
	if r.Enabled() {
		t.Error("expected resolver to be disabled")
	}
	if got := r.Country("8.8.8.8"); got != "" {
		t.Errorf("expected empty country, got %q", got)
	}
}

func TestOpen_MissingFileFallsBack(t *testing.T) {
	r := Open("/nonexistent/path.mmdb")
	if r.Enabled() {
		t.Error("expected resolver to be disabled for missing database")
	}
}

func TestOpen_CorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mmdb")
	if err := os.WriteFile(path, []byte("not a maxmind database"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := Open(path)
	if r.Enabled() {
		t.Error("expected resolver to be disabled for corrupt database")
	}
}

func TestCountry_NilResolver(t *testing.T) {
	var r *Resolver
	if got := r.Country("8.8.8.8"); got != "" {
		t.Errorf("expected empty country, got %q", got)
	}
	if err := r.Close(); err != nil {
		t.Errorf("expected no error closing nil resolver, got %v", err)
	}
}
