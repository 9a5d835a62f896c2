// Package tle fetches and caches Two-Line Element sets and converts them
// into the classical elements the trajectory sampler consumes, so a real
// satellite can be put on screen by name or by pasting a TLE.
package tle

import (
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akhenakh/sgp4"
)

//go:embed iss_tle.txt
var embeddedTLE string

const tleCacheFile = "stations_tle.txt"

// Store fetches and caches TLE sets from a CelesTrak-style endpoint.
// It uses a tiered fallback strategy: fresh disk cache, network fetch,
// stale disk cache, and finally embedded data baked into the binary.
type Store struct {
	url      string
	cacheDir string
	maxAge   time.Duration
}

// NewStore returns a store that fetches TLEs from the given URL and caches
// them under cacheDir.
func NewStore(tleURL, cacheDir string, refreshHours int) *Store {
	return &Store{
		url:      tleURL,
		cacheDir: cacheDir,
		maxAge:   time.Duration(refreshHours) * time.Hour,
	}
}

// Fetch returns every parseable TLE from the configured source, in file
// order. It tries the disk cache first, then the network, then stale cache,
// and finally falls back to embedded TLE data compiled into the binary.
func (s *Store) Fetch() ([]*sgp4.TLE, error) {
	cachePath := filepath.Join(s.cacheDir, tleCacheFile)

	raw, err := s.loadOrFetch(cachePath)
	if err != nil {
		return nil, err
	}

	return parseAll(raw)
}

// ByName returns the TLE whose name matches (case-insensitive substring, so
// "iss" finds "ISS (ZARYA)"), or an error listing how many sets were
// searched.
func (s *Store) ByName(name string) (*sgp4.TLE, error) {
	sets, err := s.Fetch()
	if err != nil {
		return nil, err
	}
	upper := strings.ToUpper(name)
	for _, t := range sets {
		if strings.Contains(strings.ToUpper(t.Name), upper) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("no TLE matching %q among %d sets", name, len(sets))
}

// CacheInfo reports the cache file's location, age, and freshness for the
// /api/system endpoint.
func (s *Store) CacheInfo() map[string]any {
	cachePath := filepath.Join(s.cacheDir, tleCacheFile)
	info, err := os.Stat(cachePath)
	if err != nil {
		return map[string]any{"path": cachePath, "cached": false}
	}
	age := time.Since(info.ModTime())
	return map[string]any{
		"path":   cachePath,
		"cached": true,
		"age_s":  int(age.Seconds()),
		"fresh":  age < s.maxAge,
	}
}

// loadOrFetch walks the four-tier fallback chain to get raw TLE text:
// fresh cache -> network -> stale cache -> embedded data.
func (s *Store) loadOrFetch(cachePath string) (string, error) {
	// Tier 1: fresh disk cache
	info, err := os.Stat(cachePath)
	if err == nil && time.Since(info.ModTime()) < s.maxAge {
		if b, readErr := os.ReadFile(cachePath); readErr == nil && len(b) > 0 {
			return string(b), nil
		}
	}

	// Tier 2: network fetch
	body, fetchErr := s.fetchFromNetwork()
	if fetchErr == nil {
		// Cache write failure is non-fatal; we already have the data in memory.
		_ = s.writeCache(cachePath, body)
		return body, nil
	}

	// Tier 3: stale disk cache
	if b, readErr := os.ReadFile(cachePath); readErr == nil && len(b) > 0 {
		return string(b), nil
	}

	// Tier 4: embedded fallback baked into the binary
	if embeddedTLE != "" {
		return embeddedTLE, nil
	}

	return "", fmt.Errorf("all TLE sources exhausted: %w", fetchErr)
}

// fetchFromNetwork downloads the TLE data set from CelesTrak (or whatever
// URL is configured). Times out after 30 seconds.
func (s *Store) fetchFromNetwork() (string, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(s.url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("TLE fetch returned HTTP %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// writeCache atomically writes data to cachePath via a temp file and rename
// so readers never see a half-written file.
func (s *Store) writeCache(cachePath, data string) error {
	dir := filepath.Dir(cachePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "tle-*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), cachePath)
}

// parseAll extracts every TLE from a bulk text dump. Input is expected in
// standard 3-line format (name, line 1, line 2) as served by CelesTrak.
// Unparseable groups are skipped.
func parseAll(raw string) ([]*sgp4.TLE, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	var result []*sgp4.TLE
	for i := 0; i+2 < len(lines); i += 3 {
		group := strings.TrimSpace(lines[i]) + "\n" +
			strings.TrimSpace(lines[i+1]) + "\n" +
			strings.TrimSpace(lines[i+2])

		t, err := sgp4.ParseTLE(group)
		if err != nil {
			continue
		}
		result = append(result, t)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("no valid TLEs found in %d lines of input", len(lines))
	}

	return result, nil
}

// Parse parses a single 3-line TLE pasted by a client.
func Parse(raw string) (*sgp4.TLE, error) {
	return sgp4.ParseTLE(strings.TrimSpace(raw))
}
