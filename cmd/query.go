package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/recapio/recap/internal/ingest"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query [dataset] [selector]",
	Short: "Evaluate a JSONPath selector against a dataset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := osfs.New(filepath.Dir(args[0]))
		data, err := ingest.LoadJSON(fs, filepath.Base(args[0]))
		if err != nil {
			return err
		}
		matches, err := ingest.Select(data, args[1])
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Println(oj.JSON(m, &ojg.Options{Sort: true}))
		}
		return nil
	},
}
