package cmd

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/inkdown-dev/inkdown/internal/log"
	"github.com/inkdown-dev/inkdown/pkg/document/editor"
	"github.com/inkdown-dev/inkdown/pkg/document/transform"
	"github.com/inkdown-dev/inkdown/pkg/project"
)

func convertCmd() *cobra.Command {
	var notebookSelector string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a notebook's blocks to the editor cell model and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := project.Load(args[0])
			if err != nil {
				return err
			}

			nb, err := f.Notebook(notebookSelector)
			if err != nil {
				return err
			}

			conv := editor.NewConverter(transform.Builtin(), editor.Options{Logger: log.Get()})
			notebook := &editor.Notebook{
				Cells: conv.ToCells(nb.Blocks),
			}
			if nb.ID != "" {
				notebook.Metadata = map[string]any{
					editor.PrefixAttributeName(editor.InternalAttributePrefix, "notebook"): nb.ID,
				}
			}

			data, err := json.MarshalIndent(notebook, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to marshal cells")
			}

			cmd.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&notebookSelector, "notebook", "", "notebook id or name (defaults to the only notebook)")

	return cmd
}
