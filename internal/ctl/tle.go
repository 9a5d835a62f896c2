package ctl

import (
	"fmt"
	"os"
)

// TLEOptions selects the TLE source: a satellite name looked up in the
// daemon's cached catalog, or a local file with a raw TLE set.
type TLEOptions struct {
	Name string
	File string
	JSON bool
}

// TLELoad converts a TLE into classical elements on the daemon and starts
// animating the resulting Earth orbit.
func TLELoad(baseURL string, opts TLEOptions) error {
	body := map[string]string{}
	switch {
	case opts.File != "":
		raw, err := os.ReadFile(opts.File)
		if err != nil {
			return err
		}
		body["raw"] = string(raw)
	case opts.Name != "":
		body["name"] = opts.Name
	default:
		return fmt.Errorf("either a satellite name or --file is required")
	}

	var result struct {
		OK        bool         `json:"ok"`
		Satellite string       `json:"satellite"`
		NoradID   int          `json:"norad_id"`
		Elements  elementsJSON `json:"elements"`
		Error     string       `json:"error"`
	}
	if err := postJSON(baseURL, "/api/tle", body, &result); err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(result)
	}

	if !result.OK {
		fmt.Printf("\n  %s  %s\n\n", colorize(red, "ERROR"), result.Error)
		return nil
	}
	fmt.Printf("\n  %s  %s (NORAD %d): %s\n\n",
		colorize(green, "LOADED"),
		colorize(bold, result.Satellite),
		result.NoradID,
		result.Elements.summary())
	return nil
}
