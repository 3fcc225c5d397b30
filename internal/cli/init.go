package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mavenpub/pkg/config"
)

// initCommand creates the init command.
func (c *CLI) initCommand() *cobra.Command {
	var (
		path     string
		group    string
		artifact string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter mavenpub.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Write(path, config.Starter(group, artifact), force); err != nil {
				return err
			}
			printSuccess(c.Out, "Created %s", path)
			printNextStep(c.Out, "Edit the project values, then assemble the bundle", appName+" publish")
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", config.FileNames[0], "file to create")
	cmd.Flags().StringVar(&group, "group", "", "group id")
	cmd.Flags().StringVar(&artifact, "artifact", "", "artifact id")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
