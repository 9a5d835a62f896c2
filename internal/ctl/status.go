package ctl

import (
	"fmt"
	"strings"
	"time"
)

// elementsJSON mirrors the element object embedded in several API responses.
type elementsJSON struct {
	SemiMajorAxis float64 `json:"semi_major_axis_km"`
	Eccentricity  float64 `json:"eccentricity"`
	Inclination   float64 `json:"inclination_deg"`
	RAAN          float64 `json:"raan_deg"`
	ArgPerigee    float64 `json:"arg_perigee_deg"`
	TrueAnomaly   float64 `json:"true_anomaly_deg"`
}

func (e elementsJSON) summary() string {
	return fmt.Sprintf("a=%.1f km  e=%.4f  i=%.1f°", e.SemiMajorAxis, e.Eccentricity, e.Inclination)
}

// Status fetches the daemon status and prints a formatted summary.
func Status(baseURL string, jsonOutput bool) error {
	var s struct {
		Name          string       `json:"name"`
		State         string       `json:"state"`
		UptimeSeconds int64        `json:"uptime_seconds"`
		Body          string       `json:"body"`
		Elements      elementsJSON `json:"elements"`
		SampleCount   int          `json:"sample_count"`
		PeriodS       float64      `json:"period_s"`
		PerigeeKM     float64      `json:"perigee_km"`
		ApogeeKM      float64      `json:"apogee_km"`
		DemoEnabled   bool         `json:"demo_enabled"`
	}
	if err := getJSON(baseURL, "/api/status", &s); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(s)
	}

	uptime := formatDuration(time.Duration(s.UptimeSeconds) * time.Second)
	stateStr := colorize(stateColor(s.State), s.State)

	fmt.Println()
	fmt.Println(header("  ORBITVIZ STATUS"))
	fmt.Println(colorize(dim, "  "+strings.Repeat("─", 44)))
	fmt.Printf("  %-12s %s\n", colorize(dim, "Daemon:"), s.Name)
	fmt.Printf("  %-12s %s\n", colorize(dim, "State:"), stateStr)
	fmt.Printf("  %-12s %s\n", colorize(dim, "Uptime:"), uptime)
	fmt.Printf("  %-12s %s\n", colorize(dim, "Body:"), s.Body)
	fmt.Printf("  %-12s %s\n", colorize(dim, "Orbit:"), s.Elements.summary())
	if s.PeriodS > 0 {
		fmt.Printf("  %-12s %s\n", colorize(dim, "Period:"),
			formatDuration(time.Duration(s.PeriodS)*time.Second))
		fmt.Printf("  %-12s %.1f / %.1f km\n", colorize(dim, "Peri/Apo:"), s.PerigeeKM, s.ApogeeKM)
	}
	fmt.Printf("  %-12s %d\n", colorize(dim, "Samples:"), s.SampleCount)
	if s.DemoEnabled {
		fmt.Printf("  %-12s %s\n", colorize(dim, "Demo:"), colorize(cyan, "tour active"))
	}
	fmt.Printf("  %-12s %s\n", colorize(dim, "Host:"), strings.TrimRight(baseURL, "/"))
	fmt.Println()

	return nil
}
