package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fiender/internal/orchestrators/dice"
)

func newRollCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roll <creature> <action>",
		Short: "Roll the damage of a creature action",
		Long: `Roll the damage dice of one of a creature's actions. Examples:

  roll goblin scimitar
  roll "ancient red dragon" bite`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.diceService()
			if err != nil {
				return err
			}

			output, err := svc.Roll(cmd.Context(), &dice.RollInput{
				Creature: args[0],
				Action:   args[1],
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n", output.Description)
			_, err = fmt.Fprintf(out, "Total: %d\n", output.Total)
			return err
		},
	}
}
