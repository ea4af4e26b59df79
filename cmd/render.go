package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	"github.com/recapio/recap/api"
	"github.com/recapio/recap/internal/config"
	"github.com/recapio/recap/internal/ingest"
	"github.com/recapio/recap/internal/render"
)

var (
	formatName    string
	description   bool
	recordID      string
	presetName    string
	outputPath    string
	chainOverride string
)

func init() {
	renderCmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format (text, markdown, html, json)")
	renderCmd.Flags().BoolVar(&description, "description", false, "Include descriptive fields when present")
	renderCmd.Flags().StringVar(&recordID, "record", "", "Record id when the dataset is a SQLite snapshot")
	renderCmd.Flags().StringVar(&presetName, "preset", "", "Preset name from the config file")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to a file instead of stdout")
	renderCmd.Flags().StringVar(&chainOverride, "chain", "", "Override the dataset's category chain")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [dataset]",
	Short: "Render a dataset file or snapshot record as a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		opts := api.Options{Description: description, Format: formatName}
		active := render.DefaultFormat
		if configPath != "" {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.DefaultFormat != "" {
				active = cfg.DefaultFormat
			}
			if presetName != "" {
				p, err := cfg.Preset(presetName)
				if err != nil {
					return err
				}
				if opts.Format == "" {
					opts.Format = p.Format
				}
				if p.Description {
					opts.Description = true
				}
				if chainOverride == "" {
					chainOverride = p.Chain
				}
			}
		} else if presetName != "" {
			return fmt.Errorf("--preset requires --config")
		}

		var (
			data map[string]any
			err  error
		)
		if recordID != "" || filepath.Ext(path) == ".db" {
			if recordID == "" {
				return fmt.Errorf("snapshot datasets need --record")
			}
			data, err = ingest.LoadRecord(path, recordID)
		} else {
			fs := osfs.New(filepath.Dir(path))
			data, err = ingest.LoadJSON(fs, filepath.Base(path))
		}
		if err != nil {
			return err
		}

		if chainOverride != "" {
			data[api.ChainField] = chainOverride
		}

		reg, err := render.NewRegistry(active, nil)
		if err != nil {
			return err
		}
		out, err := reg.Transform(data, opts)
		if err != nil {
			return err
		}

		if outputPath == "" {
			fmt.Print(out)
			return nil
		}
		outFS := osfs.New(filepath.Dir(outputPath))
		if err := util.WriteFile(outFS, filepath.Base(outputPath), []byte(out), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info("report written", "path", outputPath, "bytes", len(out))
		return nil
	},
}
