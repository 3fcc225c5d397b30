package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mavenpub/pkg/config"
	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/publish"
)

// pomCommand creates the pom command.
func (c *CLI) pomCommand() *cobra.Command {
	var (
		configPath  string
		publication string
	)

	cmd := &cobra.Command{
		Use:   "pom",
		Short: "Print the generated POM",
		Long: `Print the POM that publish would write. Without --publication the first
publication in the project file is used. No secrets are read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPOM(cmd.Context(), configPath, publication)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "project file")
	cmd.Flags().StringVarP(&publication, "publication", "p", "", "publication name")

	return cmd
}

func (c *CLI) runPOM(ctx context.Context, configPath, name string) error {
	cfg, err := c.loadProject(configPath)
	if err != nil {
		return err
	}
	project, err := newProject(cfg, c.Logger)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings(config.Env{})
	if err != nil {
		return err
	}
	if err := publish.Setup(project, settings); err != nil {
		return err
	}
	res, err := project.Finalize(ctx)
	if err != nil {
		return err
	}

	if name == "" {
		name = cfg.Publications[0].Name
	}
	for _, pub := range res.Publications {
		if pub.Name != name {
			continue
		}
		data, err := pub.POM()
		if err != nil {
			return err
		}
		_, err = c.Out.Write(data)
		return err
	}
	return errors.New(errors.ErrCodeNotFound, "publication %q is not declared", name)
}
