package printer

import (
	"strings"

	"github.com/Masterminds/semver"
)

// Version is one reported software or firmware version.
type Version struct {
	Name    string `json:"name"` // component, e.g. "printdesk" or a firmware id
	Version string `json:"version"`
}

// SetVersions replaces the system's version list.
func (s *System) SetVersions(versions []Version) {
	s.mu.Lock()
	s.versions = append([]Version(nil), versions...)
	s.mu.Unlock()
}

// Versions returns a copy of the version list.
func (s *System) Versions() []Version {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Version(nil), s.versions...)
}

// LatestVersion returns the highest semver-comparable version string
// for the web header badge. Entries that do not parse as semver are
// considered only when nothing parses, in which case the first entry
// wins.
func (s *System) LatestVersion() string {
	s.mu.RLock()
	versions := append([]Version(nil), s.versions...)
	s.mu.RUnlock()

	if len(versions) == 0 {
		return ""
	}

	var best *semver.Version
	bestRaw := ""
	for _, v := range versions {
		parsed, err := semver.NewVersion(strings.TrimSpace(v.Version))
		if err != nil {
			continue
		}
		if best == nil || parsed.GreaterThan(best) {
			best = parsed
			bestRaw = v.Version
		}
	}
	if best == nil {
		return versions[0].Version
	}
	return bestRaw
}
