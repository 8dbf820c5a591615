package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atyab/atyab-menu/internal/app"
	"github.com/atyab/atyab-menu/internal/config"
	"github.com/atyab/atyab-menu/internal/logging"
	"github.com/atyab/atyab-menu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupFields(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode separates a bad menu document, which the user must fix, from
// runtime failures.
func exitCode(err error) int {
	if errors.Is(err, app.ErrInvalidMenu) {
		return 2
	}
	return 1
}

// startupFields describes the process for the app.start trace entry.
func startupFields(cfg config.Config) events.Fields {
	flags := make(events.Fields, len(cfg.Flags)+2)
	for name, value := range cfg.Flags {
		flags[name] = value
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	fields := events.Fields{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    probeTerminals(),
	}
	record := func(key string, value string, err error) {
		if err != nil {
			fields[key+"Error"] = err.Error()
			return
		}
		fields[key] = value
	}
	exe, err := os.Executable()
	record("executable", exe, err)
	cwd, err := os.Getwd()
	record("cwd", cwd, err)
	return fields
}

type terminalReport struct {
	Detected *terminalSize  `json:"detected,omitempty"`
	Probes   []terminalInfo `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalInfo struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminals reports which standard descriptors are terminals and the
// first size that could be read.
func probeTerminals() terminalReport {
	var report terminalReport
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		info := probeTerminal(f)
		report.Probes = append(report.Probes, info)
		if report.Detected == nil && info.IsTerminal && info.Error == "" {
			report.Detected = &terminalSize{Source: info.Name, Width: info.Width, Height: info.Height}
		}
	}
	return report
}

func probeTerminal(f *os.File) terminalInfo {
	info := terminalInfo{Name: descriptorName(f)}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return info
	}
	info.IsTerminal = true
	w, h, err := term.GetSize(fd)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Width, info.Height = w, h
	return info
}

func descriptorName(f *os.File) string {
	switch f {
	case os.Stdin:
		return "stdin"
	case os.Stdout:
		return "stdout"
	case os.Stderr:
		return "stderr"
	}
	return f.Name()
}
