// Orbitctl is the command-line client for monitoring and controlling a
// running orbitvizd instance. It connects over HTTP and WebSocket to query
// the orbit, drive the animation, and stream live frame events.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/large-farva/orbitviz/internal/ctl"
)

func main() {
	var (
		host    = pflag.StringP("host", "H", "http://127.0.0.1:8080", "Orbitviz daemon URL (e.g. http://192.168.8.1:8080)")
		jsonOut = pflag.Bool("json", false, "Output raw JSON instead of formatted text")
		filter  = pflag.StringSlice("filter", nil, "Event types to show in watch (e.g. --filter frame,state)")
	)

	// Stop parsing global flags at the first non-flag argument (the command
	// name), so subcommand-specific flags like --count are not rejected.
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	if pflag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	cmd := pflag.Arg(0)
	subArgs := pflag.Args()[1:]

	var err error
	switch cmd {
	// ── Query commands ────────────────────────────────────────────
	case "status":
		err = ctl.Status(*host, *jsonOut)

	case "health":
		err = ctl.Health(*host, *jsonOut)

	case "version":
		err = ctl.VersionInfo(*host, *jsonOut)

	case "config":
		err = ctl.Config(*host, *jsonOut)

	case "bodies":
		err = ctl.Bodies(*host, *jsonOut)

	case "elements":
		err = ctl.Elements(*host, *jsonOut)

	case "trajectory":
		opts := ctl.TrajectoryOptions{JSON: *jsonOut}
		trajFlags := pflag.NewFlagSet("trajectory", pflag.ContinueOnError)
		trajFlags.IntVar(&opts.Count, "count", 0, "Resample with this many points")
		trajFlags.BoolVar(&opts.Full, "full", false, "List every sample instead of just the endpoints")
		_ = trajFlags.Parse(subArgs)
		err = ctl.Trajectory(*host, opts)

	case "figure":
		err = ctl.Figure(*host)

	case "system-info":
		err = ctl.SystemInfo(*host, *jsonOut)

	// ── Control commands ──────────────────────────────────────────
	case "set":
		opts := ctl.SetOptions{JSON: *jsonOut}
		setFlags := pflag.NewFlagSet("set", pflag.ContinueOnError)
		body := setFlags.String("body", "", "Central body (Earth, Moon, Mars)")
		sma := setFlags.Float64("sma", 0, "Semi-major axis in km")
		ecc := setFlags.Float64("ecc", 0, "Eccentricity [0, 1)")
		inc := setFlags.Float64("inc", 0, "Inclination in degrees")
		raan := setFlags.Float64("raan", 0, "RAAN in degrees")
		argp := setFlags.Float64("argp", 0, "Argument of perigee in degrees")
		nu := setFlags.Float64("nu", 0, "True anomaly in degrees")
		count := setFlags.Int("count", 0, "Sample count")
		_ = setFlags.Parse(subArgs)

		// Only flags the user actually set are sent; the daemon keeps the
		// rest of the current orbit.
		if setFlags.Changed("body") {
			opts.Body = body
		}
		if setFlags.Changed("sma") {
			opts.SemiMajorAxis = sma
		}
		if setFlags.Changed("ecc") {
			opts.Eccentricity = ecc
		}
		if setFlags.Changed("inc") {
			opts.Inclination = inc
		}
		if setFlags.Changed("raan") {
			opts.RAAN = raan
		}
		if setFlags.Changed("argp") {
			opts.ArgPerigee = argp
		}
		if setFlags.Changed("nu") {
			opts.TrueAnomaly = nu
		}
		if setFlags.Changed("count") {
			opts.SampleCount = count
		}
		err = ctl.Set(*host, opts)

	case "display":
		opts := ctl.DisplayOptions{JSON: *jsonOut}
		dispFlags := pflag.NewFlagSet("display", pflag.ContinueOnError)
		bodySize := dispFlags.Int("body-size", 0, "Central body marker size")
		satSize := dispFlags.Int("sat-size", 0, "Satellite marker size")
		_ = dispFlags.Parse(subArgs)
		if dispFlags.Changed("body-size") {
			opts.BodySize = bodySize
		}
		if dispFlags.Changed("sat-size") {
			opts.SatelliteSize = satSize
		}
		err = ctl.Display(*host, opts)

	case "play":
		err = ctl.Play(*host, *jsonOut)

	case "pause":
		err = ctl.Pause(*host, *jsonOut)

	case "seek":
		seekFlags := pflag.NewFlagSet("seek", pflag.ContinueOnError)
		index := seekFlags.Int("index", 0, "Frame index to jump to")
		_ = seekFlags.Parse(subArgs)
		err = ctl.Seek(*host, *index, *jsonOut)

	case "rate":
		rateFlags := pflag.NewFlagSet("rate", pflag.ContinueOnError)
		rate := rateFlags.Float64("rate", 1.0, "Playback speed multiplier (0, 100]")
		_ = rateFlags.Parse(subArgs)
		err = ctl.Rate(*host, *rate, *jsonOut)

	case "tle":
		opts := ctl.TLEOptions{JSON: *jsonOut}
		tleFlags := pflag.NewFlagSet("tle", pflag.ContinueOnError)
		tleFlags.StringVar(&opts.File, "file", "", "Local file with a raw TLE set")
		_ = tleFlags.Parse(subArgs)
		if tleFlags.NArg() > 0 {
			opts.Name = tleFlags.Arg(0)
		}
		err = ctl.TLELoad(*host, opts)

	case "reload":
		err = ctl.Reload(*host, *jsonOut)

	// ── Live streaming ────────────────────────────────────────────
	case "watch":
		err = ctl.Watch(*host, ctl.WatchOptions{
			Filter: *filter,
			JSON:   *jsonOut,
		})

	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Print(`
  orbitctl — Orbitviz control CLI

  USAGE
    orbitctl [flags] <command> [command-flags]

  COMMANDS (query)
    status          Show daemon state, current orbit, and uptime
    health          Check daemon liveness
    version         Show CLI and daemon version information
    config          Show the daemon's running configuration
    bodies          List the central-body catalog
    elements        Show the loaded orbital elements
    trajectory      Show the sampled trajectory
    figure          Dump the full scene description as JSON
    system-info     Show runtime and TLE cache information

  COMMANDS (control)
    set             Update orbital elements (validates and resamples)
    display         Change marker sizes in the figure
    play            Resume frame playback
    pause           Freeze the satellite at the current frame
    seek            Jump to a frame index
    rate            Set the playback speed multiplier
    tle             Load an orbit from a TLE (by name or local file)
    reload          Reload configuration from disk

  COMMANDS (live)
    watch           Stream live events from the daemon (Ctrl-C to stop)

  GLOBAL FLAGS
    -H, --host URL      Daemon base URL (default: http://127.0.0.1:8080)
        --json          Output raw JSON instead of formatted text
        --filter TYPE   Event types to show in watch (comma-separated)

  COMMAND FLAGS
    set:
        --body NAME         Central body (Earth, Moon, Mars)
        --sma KM            Semi-major axis in km
        --ecc E             Eccentricity [0, 1)
        --inc DEG           Inclination in degrees
        --raan DEG          RAAN in degrees
        --argp DEG          Argument of perigee in degrees
        --nu DEG            True anomaly in degrees
        --count N           Sample count

    trajectory:
        --count N           Resample with this many points
        --full              List every sample

    display:
        --body-size N       Central body marker size
        --sat-size N        Satellite marker size

    seek:
        --index N           Frame index to jump to

    rate:
        --rate X            Playback speed multiplier (0, 100]

    tle:
        --file PATH         Local file with a raw TLE set

  EXAMPLES
    orbitctl status
    orbitctl --json elements
    orbitctl --host http://192.168.8.1:8080 watch
    orbitctl set --sma 7078 --ecc 0.1 --inc 45
    orbitctl set --body Moon --sma 1838 --ecc 0.01 --inc 90
    orbitctl trajectory --count 250
    orbitctl display --body-size 20 --sat-size 8
    orbitctl pause
    orbitctl seek --index 50
    orbitctl rate --rate 4
    orbitctl tle "ISS (ZARYA)"
    orbitctl tle --file stations.tle
    orbitctl figure > figure.json
    orbitctl watch --filter frame,state

`)
}
