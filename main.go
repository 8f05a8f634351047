// pulsegauge shows one host metric as a live gradient gauge or sparkline in
// the terminal, remembering the chosen view, theme and sampling interval.
//
// Usage:
//
//	pulsegauge [flags]
//	pulsegauge version | metrics | prefs
//
// Flags:
//
//	--prefs string      Preference file (default: $XDG_CONFIG_HOME/pulsegauge/prefs.toml)
//	-m, --metric string Metric to display: cpu|memory|swap|disk|load (default: cpu)
//	--disk-path string  Mount point for the disk metric (default: /)
//	--once              Print one frame and exit
//	--log-file string   Write logs to this file
//	-v, --verbose       Log at debug level
package main

import "gitlab.com/tinyland/lab/pulsegauge/pkg/cli"

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
