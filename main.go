package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jtarchie/conductor/engine/messaging"
	"github.com/jtarchie/conductor/engine/model"
	"github.com/jtarchie/conductor/engine/orchestrator"
	"github.com/jtarchie/conductor/orchestra"
	_ "github.com/jtarchie/conductor/orchestra/docker"
	_ "github.com/jtarchie/conductor/orchestra/k8s"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/lmittmann/tint"
)

// RunCmd executes one run of the test engine: it resolves the named
// driver, runs every given test config in order (each test provisions
// and tears down its own runners through that driver), and prints the
// accumulated State as JSON. Rendering
// test documents from disk, templating them against prior state, and
// formatting a human-readable report are all out of scope here — this
// is the ambient entrypoint, not the report tool.
type RunCmd struct {
	Driver string   `arg:"" help:"Runner driver DSN: a registered driver name, optionally followed by ':key=value,...' params."`
	Tests  []string `arg:"" help:"Paths to rendered test config JSON files, run in order."`
}

func parseDriverDSN(dsn string) (string, map[string]string) {
	name, rawParams, hasParams := strings.Cut(dsn, ":")

	params := map[string]string{}
	if !hasParams {
		return name, params
	}

	for _, pair := range strings.Split(rawParams, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}

		params[key] = value
	}

	return name, params
}

func (r *RunCmd) Run(logger *slog.Logger) error {
	name, params := parseDriverDSN(r.Driver)

	initFunc, ok := orchestra.Get(name)
	if !ok {
		return fmt.Errorf("unknown driver %q", name)
	}

	runID, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("generating run id: %w", err)
	}

	driver, err := initFunc(runID, logger, params)
	if err != nil {
		return fmt.Errorf("initializing driver %q: %w", name, err)
	}
	defer func() {
		if err := driver.Close(); err != nil {
			logger.Warn("driver.close.failed", "driver", name, "err", err)
		}
	}()

	orch := orchestrator.New(driver, messaging.New(logger), logger)

	state := model.State{}
	ctx := context.Background()

	for _, path := range r.Tests {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading test config %s: %w", path, err)
		}

		var config model.TestConfig
		if err := json.Unmarshal(raw, &config); err != nil {
			return fmt.Errorf("parsing test config %s: %w", path, err)
		}

		logger.Info("test.starting", "name", config.Name, "filename", path)

		state = orch.RunTest(ctx, config, state, runID)

		logger.Info("test.finished", "name", config.Name, "error", state[config.Name].Summary.Error)
	}

	encoded, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding final state: %w", err)
	}

	fmt.Println(string(encoded))

	return nil
}

type CLI struct {
	Run RunCmd `cmd:"" help:"Run one or more rendered test configs against a runner driver"`

	LogLevel  slog.Level `default:"info"              env:"CONDUCTOR_LOG_LEVEL"  help:"Set the log level (debug, info, warn, error)"`
	AddSource bool       `env:"CONDUCTOR_ADD_SOURCE"  help:"Add source code location to log messages"`
	LogFormat string     `default:"text"              env:"CONDUCTOR_LOG_FORMAT" enum:"text,json" help:"Set the log format (text, json)"`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli)

	if cli.LogFormat == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     cli.LogLevel,
			AddSource: cli.AddSource,
		})))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:     cli.LogLevel,
			AddSource: cli.AddSource,
		})))
	}

	err := ctx.Run(slog.Default())
	ctx.FatalIfErrorf(err)
}
