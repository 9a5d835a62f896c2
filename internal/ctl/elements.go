package ctl

import (
	"fmt"
	"strings"
)

// Elements shows the currently loaded orbital elements.
func Elements(baseURL string, jsonOutput bool) error {
	var resp struct {
		Body        string       `json:"body"`
		Elements    elementsJSON `json:"elements"`
		SampleCount int          `json:"sample_count"`
	}
	if err := getJSON(baseURL, "/api/elements", &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	el := resp.Elements
	fmt.Println()
	fmt.Println(header("  ORBITAL ELEMENTS"))
	fmt.Println(colorize(dim, "  "+strings.Repeat("─", 44)))
	fmt.Printf("  %-18s %s\n", colorize(dim, "Central body:"), resp.Body)
	fmt.Printf("  %-18s %.3f km\n", colorize(dim, "Semi-major axis:"), el.SemiMajorAxis)
	fmt.Printf("  %-18s %.6f\n", colorize(dim, "Eccentricity:"), el.Eccentricity)
	fmt.Printf("  %-18s %.4f°\n", colorize(dim, "Inclination:"), el.Inclination)
	fmt.Printf("  %-18s %.4f°\n", colorize(dim, "RAAN:"), el.RAAN)
	fmt.Printf("  %-18s %.4f°\n", colorize(dim, "Arg of perigee:"), el.ArgPerigee)
	fmt.Printf("  %-18s %.4f°\n", colorize(dim, "True anomaly:"), el.TrueAnomaly)
	fmt.Printf("  %-18s %d\n", colorize(dim, "Sample count:"), resp.SampleCount)
	fmt.Println()

	return nil
}

// SetOptions carries the element fields the user wants to change. Nil fields
// keep their current values on the daemon.
type SetOptions struct {
	Body          *string
	SemiMajorAxis *float64
	Eccentricity  *float64
	Inclination   *float64
	RAAN          *float64
	ArgPerigee    *float64
	TrueAnomaly   *float64
	SampleCount   *int
	JSON          bool
}

// Set POSTs an element update. The daemon validates, resamples, and reloads
// the animation; invalid elements are rejected without changing anything.
func Set(baseURL string, opts SetOptions) error {
	body := map[string]any{}
	if opts.Body != nil {
		body["body"] = *opts.Body
	}
	if opts.SemiMajorAxis != nil {
		body["semi_major_axis_km"] = *opts.SemiMajorAxis
	}
	if opts.Eccentricity != nil {
		body["eccentricity"] = *opts.Eccentricity
	}
	if opts.Inclination != nil {
		body["inclination_deg"] = *opts.Inclination
	}
	if opts.RAAN != nil {
		body["raan_deg"] = *opts.RAAN
	}
	if opts.ArgPerigee != nil {
		body["arg_perigee_deg"] = *opts.ArgPerigee
	}
	if opts.TrueAnomaly != nil {
		body["true_anomaly_deg"] = *opts.TrueAnomaly
	}
	if opts.SampleCount != nil {
		body["sample_count"] = *opts.SampleCount
	}
	if len(body) == 0 {
		return fmt.Errorf("no element flags given (try --sma, --ecc, --inc, ...)")
	}

	var result struct {
		OK       bool         `json:"ok"`
		Body     string       `json:"body"`
		Elements elementsJSON `json:"elements"`
		Error    string       `json:"error"`
	}
	if err := postJSON(baseURL, "/api/elements", body, &result); err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(result)
	}

	if !result.OK {
		fmt.Printf("\n  %s  %s\n\n", colorize(red, "REJECTED"), result.Error)
		return nil
	}
	fmt.Printf("\n  %s  %s orbit: %s\n\n",
		colorize(green, "APPLIED"), result.Body, result.Elements.summary())
	return nil
}
