package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mavenpub/pkg/repository"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var release, snapshot string

	cmd := &cobra.Command{
		Use:   "resolve <version>",
		Short: "Print the repository a version is published to",
		Example: `  mavenpub resolve 1.2.0
  mavenpub resolve 1.3.0-SNAPSHOT --snapshot https://repo.example.com/snapshots`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			releaseURL, err := repository.ParseURL("release", release)
			if err != nil {
				return err
			}
			snapshotURL, err := repository.ParseURL("snapshot", snapshot)
			if err != nil {
				return err
			}
			version := args[0]
			c.Logger.Debug("resolving repository", "version", version, "snapshot", repository.IsSnapshot(version))
			_, err = fmt.Fprintln(c.Out, repository.Resolve(version, releaseURL, snapshotURL))
			return err
		},
	}

	cmd.Flags().StringVar(&release, "release", repository.SonatypeRelease, "release repository URL")
	cmd.Flags().StringVar(&snapshot, "snapshot", repository.SonatypeSnapshot, "snapshot repository URL")

	return cmd
}
