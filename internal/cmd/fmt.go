package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inkdown-dev/inkdown/internal/log"
	"github.com/inkdown-dev/inkdown/pkg/document/editor"
	"github.com/inkdown-dev/inkdown/pkg/document/transform"
	"github.com/inkdown-dev/inkdown/pkg/project"
)

func fmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Round-trip every notebook through the cell model and write the file back",
		Long: `Runs every notebook's blocks through the block-to-cell conversion and back,
then rewrites the file. The conversion is lossless for persisted fields;
blocks missing an id or ordering key gain generated ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := project.Load(args[0])
			if err != nil {
				return err
			}

			conv := editor.NewConverter(transform.Builtin(), editor.Options{Logger: log.Get()})

			for _, nb := range f.Notebooks() {
				nb.Blocks = conv.ToBlocks(conv.ToCells(nb.Blocks))
				log.Get().Debug("formatted notebook",
					zap.String("notebook", nb.ID),
					zap.Int("blocks", len(nb.Blocks)),
				)
			}

			return f.Write(args[0])
		},
	}

	return cmd
}
