package ctl

import (
	"fmt"
	"strings"
	"time"
)

// SystemInfo shows runtime information and TLE cache state from the daemon.
func SystemInfo(baseURL string, jsonOutput bool) error {
	var resp struct {
		GoVersion string `json:"go_version"`
		OS        string `json:"os"`
		Arch      string `json:"arch"`
		TLECache  struct {
			Path   string `json:"path"`
			Cached bool   `json:"cached"`
			Fresh  bool   `json:"fresh"`
			AgeS   int    `json:"age_s"`
		} `json:"tle_cache"`
		Disk *struct {
			TotalBytes     uint64 `json:"total_bytes"`
			UsedBytes      uint64 `json:"used_bytes"`
			AvailableBytes uint64 `json:"available_bytes"`
		} `json:"disk"`
	}
	if err := getJSON(baseURL, "/api/system", &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Println()
	fmt.Println(header("  SYSTEM INFO"))
	fmt.Println("  " + strings.Repeat("─", 50))
	fmt.Printf("  Go version:  %s\n", resp.GoVersion)
	fmt.Printf("  OS/Arch:     %s/%s\n", resp.OS, resp.Arch)
	fmt.Printf("  TLE cache:   %s\n", resp.TLECache.Path)

	switch {
	case !resp.TLECache.Cached:
		fmt.Printf("  TLE status:  %s\n", colorize(yellow, "NOT CACHED"))
	case resp.TLECache.Fresh:
		fmt.Printf("  TLE status:  %s (age %s)\n", colorize(green, "FRESH"),
			formatDuration(time.Duration(resp.TLECache.AgeS)*time.Second))
	default:
		fmt.Printf("  TLE status:  %s (age %s)\n", colorize(yellow, "STALE"),
			formatDuration(time.Duration(resp.TLECache.AgeS)*time.Second))
	}

	if resp.Disk != nil {
		fmt.Printf("  Disk total:  %s\n", formatBytes(int64(resp.Disk.TotalBytes)))
		fmt.Printf("  Disk used:   %s\n", formatBytes(int64(resp.Disk.UsedBytes)))
		fmt.Printf("  Disk avail:  %s\n", formatBytes(int64(resp.Disk.AvailableBytes)))
	}

	fmt.Println()
	return nil
}
