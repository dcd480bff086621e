package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reoring/gonml/glm"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gonml",
	Short: "Read, convert, and validate namelist configuration files",
	Long: `gonml works with Fortran-style namelist (NML) configuration files:
it converts them to and from JSON/YAML and validates them against the
GLM schema.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		glm.InitSchema()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. Errors are logged by the subcommands.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
