package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mavenpub/pkg/buildinfo"
	"github.com/matzehuels/mavenpub/pkg/config"
	"github.com/matzehuels/mavenpub/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "mavenpub"

	// defaultOutDir is where publish writes the bundle.
	defaultOutDir = "build/mavenpub"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer

	// LookupEnv reads publishing secrets. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(w, level),
		Out:       os.Stdout,
		LookupEnv: os.LookupEnv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// InstallHooks routes orchestrator events to the CLI logger.
func (c *CLI) InstallHooks() {
	observability.SetPublishHooks(logHooks{logger: c.Logger})
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "mavenpub assembles signed Maven publications",
		Long:          `mavenpub builds the POM, auxiliary archives, repository selection and PGP signatures for a Maven publication and writes them as a bundle ready for upload.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	// Register all subcommands
	root.AddCommand(c.publishCommand())
	root.AddCommand(c.pomCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Project Loading
// =============================================================================

// loadProject reads the project file at path, or finds one in the working
// directory when path is empty.
func (c *CLI) loadProject(path string) (*config.Project, error) {
	if path == "" {
		found, err := config.Find(".")
		if err != nil {
			return nil, err
		}
		path = found
	}
	p, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded project", "path", path, "coordinate", p.Group+":"+p.Artifact+":"+p.Version)
	return p, nil
}

// env reads publishing secrets once per command.
func (c *CLI) env() config.Env {
	return config.LoadEnv(c.LookupEnv)
}
