package cli

import "github.com/spf13/cobra"

// version is set at build time via -ldflags.
var version = "dev"

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the morph version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("morph", version)
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
