package ctl

import (
	"fmt"
	"strings"
	"time"
)

// TrajectoryOptions controls the trajectory command.
type TrajectoryOptions struct {
	Count int // resample with this many points (0 = daemon's current count)
	Full  bool
	JSON  bool
}

// Trajectory fetches the sampled trajectory and prints a summary. With Full
// set, every sample is listed; otherwise just the endpoints.
func Trajectory(baseURL string, opts TrajectoryOptions) error {
	path := "/api/trajectory"
	if opts.Count > 0 {
		path = fmt.Sprintf("%s?count=%d", path, opts.Count)
	}

	var resp struct {
		Body      string       `json:"body"`
		Elements  elementsJSON `json:"elements"`
		PeriodS   float64      `json:"period_s"`
		PerigeeKM float64      `json:"perigee_km"`
		ApogeeKM  float64      `json:"apogee_km"`
		Samples   []struct {
			Time     float64    `json:"t_s"`
			Position [3]float64 `json:"position_km"`
		} `json:"samples"`
	}
	if err := getJSON(baseURL, path, &resp); err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(resp)
	}

	fmt.Println()
	fmt.Println(header("  SAMPLED TRAJECTORY"))
	fmt.Println(colorize(dim, "  "+strings.Repeat("─", 44)))
	fmt.Printf("  %-12s %s\n", colorize(dim, "Body:"), resp.Body)
	fmt.Printf("  %-12s %s\n", colorize(dim, "Orbit:"), resp.Elements.summary())
	fmt.Printf("  %-12s %.1f s (%s)\n", colorize(dim, "Period:"),
		resp.PeriodS, formatDuration(time.Duration(resp.PeriodS)*time.Second))
	fmt.Printf("  %-12s %.1f / %.1f km\n", colorize(dim, "Peri/Apo:"), resp.PerigeeKM, resp.ApogeeKM)
	fmt.Printf("  %-12s %d\n", colorize(dim, "Samples:"), len(resp.Samples))
	fmt.Println()

	if len(resp.Samples) == 0 {
		return nil
	}

	t := newTable("  ", "#", "t (s)", "x (km)", "y (km)", "z (km)")
	addRow := func(i int) {
		s := resp.Samples[i]
		t.row(fmt.Sprintf("%d", i),
			fmt.Sprintf("%.1f", s.Time),
			fmt.Sprintf("%.1f", s.Position[0]),
			fmt.Sprintf("%.1f", s.Position[1]),
			fmt.Sprintf("%.1f", s.Position[2]))
	}
	if opts.Full {
		for i := range resp.Samples {
			addRow(i)
		}
	} else {
		addRow(0)
		if len(resp.Samples) > 1 {
			t.row("...", "", "", "", "")
			addRow(len(resp.Samples) - 1)
		}
	}
	t.flush()
	fmt.Println()

	return nil
}
