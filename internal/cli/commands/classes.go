package commands

import (
	"github.com/spf13/cobra"
)

func newClassesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the declared classes",
		Long: `List the classes declared in the registry.

For every class the listing shows its class annotations, the number of
reflected constructor parameters and methods, and the number of annotated
properties. Use 'annotate inspect <class>' for the full structure.`,
		Example: `  # List classes
  annotate classes

  # List classes as JSON
  annotate classes --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := opts.catalog.Registry()

			rows := make([]classSummary, 0)
			for _, name := range opts.catalog.Names() {
				class, _ := opts.catalog.Lookup(name)
				rows = append(rows, newClassSummary(registry.Type(class)))
			}

			formatter, err := opts.formatter(cmd)
			if err != nil {
				return err
			}
			return formatter.Format(rows)
		},
	}
}
