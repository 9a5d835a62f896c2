package app

import "syscall"

// diskUsage returns disk usage stats for the given path, or nil on error.
// Used by /api/system to report how much room the TLE cache has.
func diskUsage(path string) map[string]any {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return nil
	}
	total := stat.Blocks * uint64(stat.Bsize)
	free := stat.Bfree * uint64(stat.Bsize)
	used := total - free
	usedPct := 0.0
	if total > 0 {
		usedPct = float64(used) / float64(total) * 100
	}
	return map[string]any{
		"total_bytes":     total,
		"used_bytes":      used,
		"available_bytes": free,
		"used_percent":    usedPct,
	}
}
