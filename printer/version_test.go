package printer

import "testing"

func TestLatestVersionPicksHighestSemver(t *testing.T) {
	sys := NewSystem("test")
	sys.SetVersions([]Version{
		{Name: "printdesk", Version: "1.2.0"},
		{Name: "firmware", Version: "2.0.1"},
		{Name: "bootloader", Version: "1.10.3"},
	})
	if got := sys.LatestVersion(); got != "2.0.1" {
		t.Errorf("LatestVersion = %q, want 2.0.1", got)
	}
}

func TestLatestVersionSkipsUnparsable(t *testing.T) {
	sys := NewSystem("test")
	sys.SetVersions([]Version{
		{Name: "firmware", Version: "build-20260515"},
		{Name: "printdesk", Version: "1.0.0"},
	})
	if got := sys.LatestVersion(); got != "1.0.0" {
		t.Errorf("LatestVersion = %q, want 1.0.0", got)
	}
}

func TestLatestVersionFallbacks(t *testing.T) {
	sys := NewSystem("test")
	if got := sys.LatestVersion(); got != "" {
		t.Errorf("empty list = %q", got)
	}
	sys.SetVersions([]Version{
		{Name: "firmware", Version: "build-1"},
		{Name: "other", Version: "build-2"},
	})
	if got := sys.LatestVersion(); got != "build-1" {
		t.Errorf("no parsable versions = %q, want first entry", got)
	}
}
