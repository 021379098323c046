package cmd

import (
	"github.com/spf13/cobra"

	"github.com/inkdown-dev/inkdown/pkg/document/transform"
)

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the block types with a registered content transform",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, tag := range transform.Builtin().SupportedTypes() {
				cmd.Println(tag)
			}
		},
	}
}
