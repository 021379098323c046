package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inkdown-dev/inkdown/internal/log"
)

func Root() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "inkdown",
		Short:         "Convert inkdown project blocks to notebook cells and back",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(*cobra.Command, []string) {
			if debug {
				log.Set(zap.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(convertCmd())
	cmd.AddCommand(fmtCmd())
	cmd.AddCommand(typesCmd())

	return cmd
}

func Execute() error {
	defer log.Flush()
	return Root().Execute()
}
