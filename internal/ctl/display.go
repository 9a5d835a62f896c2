package ctl

import (
	"fmt"
)

// DisplayOptions carries marker-size overrides. Nil fields are left alone.
type DisplayOptions struct {
	BodySize      *int
	SatelliteSize *int
	JSON          bool
}

// Display POSTs new marker sizes. The next figure fetch reflects them.
func Display(baseURL string, opts DisplayOptions) error {
	body := map[string]any{}
	if opts.BodySize != nil {
		body["body_size"] = *opts.BodySize
	}
	if opts.SatelliteSize != nil {
		body["satellite_size"] = *opts.SatelliteSize
	}
	if len(body) == 0 {
		return fmt.Errorf("no display flags given (try --body-size or --sat-size)")
	}

	var result struct {
		OK      bool `json:"ok"`
		Display struct {
			BodySize      int `json:"body_size"`
			SatelliteSize int `json:"satellite_size"`
		} `json:"display"`
		Error string `json:"error"`
	}
	if err := postJSON(baseURL, "/api/display", body, &result); err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(result)
	}

	if !result.OK {
		fmt.Printf("\n  %s  %s\n\n", colorize(red, "ERROR"), result.Error)
		return nil
	}
	fmt.Printf("\n  %s  body marker %d, satellite marker %d\n\n",
		colorize(green, "OK"), result.Display.BodySize, result.Display.SatelliteSize)
	return nil
}
