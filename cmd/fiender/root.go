package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fiender/internal/clients/external"
	"github.com/KirkDiggler/fiender/internal/orchestrators/lookup"
)

func newRootCmd(a *app) *cobra.Command {
	var (
		spell  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "fiender [flags] <name>",
		Short: "Look up D&D 5e creatures and spells on Open5e",
		Long: `fiender fetches a creature or spell from the Open5e API and prints it as Markdown.

  fiender goblin
  fiender ancient red dragon
  fiender --spell fireball
  fiender --format yaml goblin`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.setupLogging(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.lookupService()
			if err != nil {
				return err
			}

			output, err := svc.Lookup(cmd.Context(), &lookup.LookupInput{
				Kind:   kindFlag(spell),
				Name:   strings.Join(args, " "),
				Format: lookup.Format(format),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), output.Document)
			return err
		},
	}

	// --monster only exists to be explicit; creature is the default
	cmd.Flags().BoolP("monster", "m", false, "Look up a creature (default)")
	cmd.Flags().BoolVarP(&spell, "spell", "s", false, "Look up a spell")
	cmd.MarkFlagsMutuallyExclusive("monster", "spell")
	cmd.Flags().StringVarP(&format, "format", "f", lookup.FormatMarkdown.String(), "Output format: markdown or yaml")

	// Add persistent flags for all commands
	cmd.PersistentFlags().StringVar(&a.baseURL, "base-url", external.DefaultBaseURL, "Open5e API base URL")
	cmd.PersistentFlags().DurationVar(&a.timeout, "timeout", external.DefaultHTTPTimeout, "Request timeout")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log requests at debug level")

	// Add subcommands
	cmd.AddCommand(newPagesCmd(a))
	cmd.AddCommand(newRollCmd(a))

	return cmd
}

func kindFlag(spell bool) lookup.Kind {
	if spell {
		return lookup.KindSpell
	}
	return lookup.KindCreature
}
