// Package cli implements the mavenpub command-line interface.
//
// This package provides commands for assembling a Maven publication from a
// project file: publish writes a signed, repository-ready bundle, pom prints
// the generated POM, resolve shows which repository a version targets, and
// init writes a starter project file. The CLI is built using cobra and logs
// through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - publish: Assemble POMs, archives and signatures into an upload bundle
//   - pom: Print the POM of a publication
//   - resolve: Print the destination repository for a version
//   - init: Write a starter mavenpub.toml
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Publish
// events from the orchestrator are forwarded to the logger through
// observability hooks.
//
// # Example
//
//	import "github.com/matzehuels/mavenpub/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mavenpub/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Finalized 2 publications (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks forwards orchestrator events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.PublishHooks = logHooks{}

func (h logHooks) OnFinalizeStart(_ context.Context, runID string, publications int) {
	h.logger.Debug("finalize started", "run", runID, "publications", publications)
}

func (h logHooks) OnFinalizeComplete(_ context.Context, runID string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("finalize failed", "run", runID, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("finalize complete", "run", runID, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnPublicationConfigured(_ context.Context, publication string, artifacts int) {
	h.logger.Debug("publication configured", "name", publication, "artifacts", artifacts)
}

func (h logHooks) OnRepositorySelected(_ context.Context, url string, snapshot bool) {
	h.logger.Debug("repository selected", "url", url, "snapshot", snapshot)
}

func (h logHooks) OnSigningSkipped(context.Context) {
	h.logger.Debug("signing skipped")
}

func (h logHooks) OnSigned(_ context.Context, publication string, signatures int) {
	h.logger.Debug("publication signed", "name", publication, "signatures", signatures)
}
