package geoip

import (
	"errors"
	"testing"

	"wallpaper/internal/domain"
)

func TestResolverWithoutDatabase(t *testing.T) {
	r, err := NewResolver("  ")
	if err != nil {
		t.Fatalf("NewResolver returned error: %v", err)
	}
	if _, err := r.Locate("8.8.8.8"); !errors.Is(err, domain.ErrLocationUnavailable) {
		t.Fatalf("expected ErrLocationUnavailable, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestNewResolverMissingFile(t *testing.T) {
	if _, err := NewResolver(t.TempDir() + "/missing.mmdb"); err == nil {
		t.Fatal("expected error for missing database")
	}
}
