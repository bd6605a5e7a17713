package commands

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/annotations/internal/cli/ui"
)

// selectFunc asks the user to pick one of options
type selectFunc func(message string, options []string) (string, error)

func surveySelect(message string, options []string) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

// errClassRequired is returned when inspect gets neither a class nor --interactive
var errClassRequired = errors.New("class name required (or use --interactive)")

func newInspectCommand(opts *rootOptions) *cobra.Command {
	var (
		interactive bool
		method      string
		property    string
	)

	cmd := &cobra.Command{
		Use:   "inspect [class]",
		Short: "Show the reflected structure of a class",
		Long: `Show the reflected structure of a class.

Displays the class annotations, the constructor parameters, every method of
the class and the annotated properties. Unannotated methods are only listed
with --verbose. Use --method or --property to show a single member.`,
		Example: `  # Inspect a class
  annotate inspect UserService

  # Inspect a single method as JSON
  annotate inspect UserService --method Register --format json

  # Choose the class from a list
  annotate inspect --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			switch {
			case len(args) == 1:
				name = args[0]
			case interactive:
				picked, err := opts.selectClass("Choose a class:", opts.catalog.Names())
				if err != nil {
					return fmt.Errorf("select class: %w", err)
				}
				name = picked
			default:
				return errClassRequired
			}

			class, ok := opts.catalog.Lookup(name)
			if !ok {
				suggestions := ui.Suggest(name, opts.catalog.Names())
				fmt.Fprint(cmd.ErrOrStderr(), ui.ClassNotFoundError(name, suggestions, opts.noColor))
				return reported(fmt.Errorf("class %q not found", name))
			}

			formatter, err := opts.formatter(cmd)
			if err != nil {
				return err
			}

			registry := opts.catalog.Registry()
			switch {
			case method != "":
				info, err := registry.Method(class, method)
				if err != nil {
					return fmt.Errorf("inspect %s: %w", class.Name(), err)
				}
				return formatter.Format(newMethodDoc(info))
			case property != "":
				return formatter.Format(newPropertyDoc(registry.Property(class, property)))
			default:
				return formatter.Format(newClassDoc(registry.Type(class)))
			}
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the class from a list")
	cmd.Flags().StringVar(&method, "method", "", "Show only the named method")
	cmd.Flags().StringVar(&property, "property", "", "Show only the named property")
	cmd.MarkFlagsMutuallyExclusive("method", "property")

	return cmd
}
