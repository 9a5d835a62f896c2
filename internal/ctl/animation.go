package ctl

// Play resumes frame playback on the daemon.
func Play(baseURL string, jsonOutput bool) error {
	var res commandResult
	if err := postJSON(baseURL, "/api/animation/play", nil, &res); err != nil {
		return err
	}
	return renderResult(res, jsonOutput)
}

// Pause freezes the marker at the current frame.
func Pause(baseURL string, jsonOutput bool) error {
	var res commandResult
	if err := postJSON(baseURL, "/api/animation/pause", nil, &res); err != nil {
		return err
	}
	return renderResult(res, jsonOutput)
}

// Seek jumps playback to the given frame index.
func Seek(baseURL string, index int, jsonOutput bool) error {
	var res commandResult
	if err := postJSON(baseURL, "/api/animation/seek", map[string]int{"index": index}, &res); err != nil {
		return err
	}
	return renderResult(res, jsonOutput)
}

// Rate sets the playback speed multiplier.
func Rate(baseURL string, rate float64, jsonOutput bool) error {
	var res commandResult
	if err := postJSON(baseURL, "/api/animation/rate", map[string]float64{"rate": rate}, &res); err != nil {
		return err
	}
	return renderResult(res, jsonOutput)
}
