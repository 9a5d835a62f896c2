package ctl

import (
	"fmt"
	"strings"
)

// Figure dumps the complete scene description as JSON. The output is meant
// to be piped into a plotting frontend, so it is always raw.
func Figure(baseURL string) error {
	status, body, err := getRaw(baseURL, "/api/figure")
	if err != nil {
		return err
	}
	if status != 200 {
		msg := strings.TrimSpace(string(body))
		return fmt.Errorf("HTTP %d: %s", status, msg)
	}
	fmt.Println(string(body))
	return nil
}
