package ctl

import (
	"fmt"
)

// Bodies lists the central-body catalog from the daemon.
func Bodies(baseURL string, jsonOutput bool) error {
	var resp struct {
		Bodies []struct {
			Name       string  `json:"name"`
			Radius     float64 `json:"radius_km"`
			Mu         float64 `json:"mu_km3_s2"`
			MarkerSize int     `json:"marker_size"`
			Color      string  `json:"color"`
		} `json:"bodies"`
	}
	if err := getJSON(baseURL, "/api/bodies", &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Println()
	fmt.Println(header("  CENTRAL BODIES"))

	t := newTable("  ", "Name", "Radius", "μ (km³/s²)", "Marker", "Color")
	for _, b := range resp.Bodies {
		t.row(b.Name,
			fmt.Sprintf("%.1f km", b.Radius),
			fmt.Sprintf("%.1f", b.Mu),
			fmt.Sprintf("%d", b.MarkerSize),
			b.Color)
	}
	t.flush()
	fmt.Println()

	return nil
}
