// Orbitvizd is the main daemon for the orbitviz satellite orbit visualizer.
//
// It loads configuration, samples the configured orbit, and serves the scene
// geometry and live animation frames over HTTP/WebSocket. Shutdown is
// handled gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/large-farva/orbitviz/internal/app"
	"github.com/large-farva/orbitviz/internal/config"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "/etc/orbitviz/orbitviz.toml", "Path to config TOML")
		bind       = pflag.String("bind", "0.0.0.0:8080", "HTTP bind address")
	)
	pflag.Parse()

	path := *configPath
	cfg, err := config.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file is fine: the defaults draw the reference orbit.
			// Clear the path so health checks and reload don't look for it.
			cfg = config.Default()
			path = ""
		} else {
			log.Fatalf("config load failed: %v", err)
		}
	}

	logger := log.New(os.Stdout, "orbitvizd ", log.LstdFlags|log.Lmicroseconds)

	a := app.New(app.Options{
		Logger:     logger,
		Cfg:        cfg,
		ConfigPath: path,
		Bind:       *bind,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("orbitvizd failed: %v", err)
	}

	// Brief pause so in-flight log writes can flush before exit.
	time.Sleep(50 * time.Millisecond)
}
