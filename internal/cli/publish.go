package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mavenpub/pkg/artifact"
	"github.com/matzehuels/mavenpub/pkg/config"
	"github.com/matzehuels/mavenpub/pkg/publish"
)

type publishOptions struct {
	configPath string
	outDir     string
	dryRun     bool
}

// publishCommand creates the publish command.
func (c *CLI) publishCommand() *cobra.Command {
	var opts publishOptions

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Assemble a publication bundle ready for upload",
		Long: `Assemble the POM, javadoc and sources archives and signatures for every
publication in the project file and write them in Maven repository layout,
together with a publication.json manifest naming the destination repository.

The destination is the snapshot repository when the version ends with
SNAPSHOT and the release repository otherwise. Repository credentials are
read from SONATYPE_USER and SONATYPE_PWD. Signing is enabled only when both
SIGNINGKEY and SIGNINGPASSWORD are set.`,
		Example: `  # Write the bundle to build/mavenpub
  mavenpub publish

  # Show what would be published without writing files
  mavenpub publish --dry-run -c mavenpub.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPublish(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "project file (default: mavenpub.toml, mavenpub.yaml or mavenpub.yml)")
	cmd.Flags().StringVarP(&opts.outDir, "output", "o", defaultOutDir, "bundle output directory")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "finalize and print the summary without writing files")

	return cmd
}

func (c *CLI) runPublish(ctx context.Context, opts publishOptions) error {
	prog := newProgress(c.Logger)

	cfg, err := c.loadProject(opts.configPath)
	if err != nil {
		return err
	}
	project, err := newProject(cfg, c.Logger)
	if err != nil {
		return err
	}

	settings, err := cfg.Settings(c.env())
	if err != nil {
		return err
	}
	if !opts.dryRun {
		staging, err := os.MkdirTemp("", appName+"-")
		if err != nil {
			return fmt.Errorf("create staging directory: %w", err)
		}
		defer os.RemoveAll(staging)

		if err := buildArchives(project, cfg, staging, c.Logger); err != nil {
			return err
		}
		settings.StagingDir = staging
	}

	if err := publish.Setup(project, settings); err != nil {
		return err
	}
	res, err := project.Finalize(ctx)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Finalized %d publication(s)", len(res.Publications)))

	printSummary(c.Out, res)
	if opts.dryRun {
		printInfo(c.Out, "dry run: no bundle written")
		return nil
	}

	m, err := publish.WriteBundle(opts.outDir, res)
	if err != nil {
		return err
	}
	printSuccess(c.Out, "Wrote bundle to %s", opts.outDir)
	for _, mp := range m.Publications {
		for _, f := range mp.Files {
			printFile(c.Out, f)
		}
		for _, f := range mp.Signatures {
			printFile(c.Out, f)
		}
	}
	printFile(c.Out, publish.ManifestFile)
	return nil
}

// newProject creates the project and declares the configured publications.
func newProject(cfg *config.Project, logger *log.Logger) (*publish.Project, error) {
	p := publish.NewProject(cfg.Group, cfg.Artifact, cfg.Version, logger)
	for _, decl := range cfg.Publications {
		pub, err := p.Declare(decl.Name)
		if err != nil {
			return nil, err
		}
		if decl.Artifact != "" {
			pub.Coordinate.ArtifactID = decl.Artifact
		}
		pub.DisplayName = cfg.Name
	}
	return p, nil
}

// buildArchives packs the javadoc and sources directories into staging and
// registers the archives with the project before Setup runs, so the
// orchestrator picks up the built javadoc jar instead of creating its own.
// Without a javadoc directory Setup builds an empty javadoc jar itself.
func buildArchives(p *publish.Project, cfg *config.Project, staging string, logger *log.Logger) error {
	if cfg.JavadocDir != "" {
		javadocPath := filepath.Join(staging, "javadoc.jar")
		n, err := artifact.WriteJar(javadocPath, resolveDir(cfg, cfg.JavadocDir))
		if err != nil {
			return err
		}
		logger.Debug("built javadoc jar", "files", n)
		if err := p.Artifacts.Register(&artifact.Artifact{
			Name:       artifact.JavadocTask,
			Classifier: artifact.ClassifierJavadoc,
			Path:       javadocPath,
		}); err != nil {
			return err
		}
	}

	if cfg.SourcesDir == "" {
		return nil
	}
	sourcesPath := filepath.Join(staging, "sources.jar")
	n, err := artifact.WriteJar(sourcesPath, resolveDir(cfg, cfg.SourcesDir))
	if err != nil {
		return err
	}
	logger.Debug("built sources jar", "files", n)

	sources := artifact.SourcesJar(p.Artifacts)
	sources.Path = sourcesPath
	for _, pub := range p.Publications() {
		if err := pub.Attach(sources); err != nil {
			return err
		}
	}
	return nil
}

// resolveDir makes dir relative to the project file.
func resolveDir(cfg *config.Project, dir string) string {
	if dir == "" || filepath.IsAbs(dir) || cfg.Path() == "" {
		return dir
	}
	return filepath.Join(filepath.Dir(cfg.Path()), dir)
}
