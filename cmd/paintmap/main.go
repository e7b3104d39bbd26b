// Flightmap - Regional Flight Statistics Map Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Command paintmap fetches region statistics from a flightmap server and
// writes a colored copy of an SVG region map.
//
// Usage:
//
//	paintmap -svg web/map.svg -out painted.svg
//	paintmap -url http://flightmap:3000 -svg map.svg -region 23
//
// With -region the hover text and details panel for that region are printed
// to stderr. If the statistics cannot be fetched, every region is painted
// neutral, the map is still written, and the exit status is 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lctflights/flightmap/internal/logging"
	"github.com/lctflights/flightmap/internal/mapview"
)

var errUsage = errors.New("usage")

type options struct {
	baseURL string
	svgPath string
	outPath string
	region  string
	timeout time.Duration
	level   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "paintmap:", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("paintmap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.baseURL, "url", "http://localhost:3000", "flightmap server base URL")
	fs.StringVar(&o.svgPath, "svg", "", "input SVG region map (required)")
	fs.StringVar(&o.outPath, "out", "-", "output file, - for stdout")
	fs.StringVar(&o.region, "region", "", "print hover text and details for this region id")
	fs.DurationVar(&o.timeout, "timeout", 10*time.Second, "statistics request timeout")
	fs.StringVar(&o.level, "log-level", "warn", "log level")

	if err := fs.Parse(args); err != nil {
		return o, errUsage
	}
	if o.svgPath == "" {
		fmt.Fprintln(stderr, "paintmap: -svg is required")
		fs.Usage()
		return o, errUsage
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logging.Init(logging.Config{Level: o.level, Format: "console", Output: stderr})

	m, err := loadMap(o.svgPath)
	if err != nil {
		return err
	}

	source, err := mapview.NewHTTPSource(o.baseURL, &http.Client{Timeout: o.timeout})
	if err != nil {
		return err
	}

	ctrl := mapview.NewController(m, source)
	refreshErr := ctrl.Refresh(ctx)

	if err := writeMap(ctrl, o.outPath, stdout); err != nil {
		return err
	}

	if o.region != "" {
		if err := describe(ctrl, o.region, stderr); err != nil {
			return err
		}
	}

	if refreshErr != nil {
		return fmt.Errorf("painted neutral map: %w", refreshErr)
	}
	return nil
}

func loadMap(path string) (*mapview.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	m, err := mapview.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func writeMap(ctrl *mapview.Controller, path string, stdout io.Writer) error {
	if path == "-" {
		return ctrl.Render(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := ctrl.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func describe(ctrl *mapview.Controller, id string, w io.Writer) error {
	hover, ok := ctrl.Hover(id)
	if !ok {
		return fmt.Errorf("region %q is not on the map", id)
	}
	details, _ := ctrl.Click(id)

	fmt.Fprintf(w, "hover: %s\n", hover)
	fmt.Fprintln(w, strings.Join(details.Lines(), "\n"))
	return nil
}
