package main

import (
	"github.com/spf13/cobra"
)

// skipAppInit marks commands that run without loading config or logging.
const skipAppInit = "designtools.skip-app-init"

type rootFlags struct {
	verbose    bool
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "designtools",
		Short:         "Inspect and edit utility-class strings the way the design tools panel does",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipAppInit] == "true" {
				return nil
			}
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a designtools config file (default ~/.designtools/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(newReplaceCmd(app))
	cmd.AddCommand(newSetCmd(app))
	cmd.AddCommand(newInspectCmd(app))
	cmd.AddCommand(newFieldsCmd(app))
	cmd.AddCommand(newSessionCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
