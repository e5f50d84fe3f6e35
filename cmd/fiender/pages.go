package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fiender/internal/orchestrators/lookup"
)

func newPagesCmd(a *app) *cobra.Command {
	var (
		spell   bool
		collect bool
	)

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Walk every page of the creature or spell listing",
		Long: `Walk the paginated listing, printing progress as each page arrives. Examples:

  pages
  pages --spell --collect`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.lookupService()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			output, err := svc.Walk(cmd.Context(), &lookup.WalkInput{
				Kind:    kindFlag(spell),
				Collect: collect,
				OnPage: func(pageNum int) {
					_, _ = fmt.Fprintf(out, "Pages scanned: %d\n", pageNum)
				},
			})
			if err != nil {
				return err
			}

			if collect {
				_, err = fmt.Fprintf(out, "Collected %d of %d %ss\n", output.Collected(), output.Count, output.Kind)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&spell, "spell", "s", false, "Walk the spell listing instead of creatures")
	cmd.Flags().BoolVar(&collect, "collect", false, "Keep every record rather than only counting pages")

	return cmd
}
