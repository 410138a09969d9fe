package mcp

import (
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	d, err := normalizeDate(" 1990-07-15 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != "1990-07-15" {
		t.Fatalf("expected trimmed date, got %q", d)
	}

	for _, bad := range []string{"", "1990/07/15", "2023-02-29"} {
		if _, err := normalizeDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	if c, err := normalizeClock(""); err != nil || c != "" {
		t.Fatalf("empty clock should pass through, got %q %v", c, err)
	}
	if c, err := normalizeClock("08:30"); err != nil || c != "08:30" {
		t.Fatalf("unexpected clock %q %v", c, err)
	}
	if _, err := normalizeClock("24:10"); err == nil {
		t.Fatal("expected invalid clock error")
	}
}

func TestNormalizeSign(t *testing.T) {
	id, err := normalizeSign(" LEO ")
	if err != nil || id != "leo" {
		t.Fatalf("expected leo, got %q %v", id, err)
	}
	if id, err := normalizeSign("ophiuchus"); err != nil || id != "ophiuchus" {
		t.Fatalf("unknown signs should pass through, got %q %v", id, err)
	}
	if _, err := normalizeSign("  "); err == nil {
		t.Fatal("expected missing sign error")
	}
}

func TestNormalizeProfileRequest(t *testing.T) {
	req, err := normalizeProfileRequest(profileBuildInput{Date: "1990-07-15", Time: "08:30", Name: "  Ada ", Year: 2030})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.BirthDate != "1990-07-15" || req.BirthTime != "08:30" || req.Name != "Ada" || req.Year != 2030 {
		t.Fatalf("unexpected request: %+v", req)
	}

	if _, err := normalizeProfileRequest(profileBuildInput{Date: "1990-07-15", Year: -1}); err == nil {
		t.Fatal("expected invalid year error")
	}
	if _, err := normalizeLifeNumber(-3); err == nil {
		t.Fatal("expected invalid life number error")
	}
}
