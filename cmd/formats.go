package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recapio/recap/internal/render"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the registered output formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := render.NewRegistry(render.DefaultFormat, nil)
		if err != nil {
			return err
		}
		for _, name := range reg.Names() {
			marker := " "
			if name == reg.Active() {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
		}
		return nil
	},
}
