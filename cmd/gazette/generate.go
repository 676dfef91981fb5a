package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thebtf/gazette/internal/assembler"
	"github.com/thebtf/gazette/internal/store"
	"github.com/thebtf/gazette/pkg/cluster"
)

var (
	genMinSimilarity float64
	genNoClustering  bool
	genOutput        string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble the magazine document from stored records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.StorePath)
		if err != nil {
			return err
		}

		opts := cfg.ClusterOptions()
		if cmd.Flags().Changed("min-similarity") {
			opts.MinSimilarity = genMinSimilarity
		}
		if genNoClustering {
			opts.EnableClustering = false
		}

		output := cfg.OutputPath
		if genOutput != "" {
			output = genOutput
		}

		result := cluster.Generate(st.List(), opts)
		log.Debug().
			Int("items", result.Metrics.ItemCount).
			Int("sections", result.Metrics.SectionCount).
			Float64("avg_section_size", result.Metrics.AvgSectionSize).
			Msg("Clustering finished")

		if err := assembler.Write(output, cfg.Title, result, opts.EnableClustering); err != nil {
			return err
		}
		fmt.Println(output)
		return nil
	},
}

func init() {
	generateCmd.Flags().Float64Var(&genMinSimilarity, "min-similarity", cluster.DefaultMinSimilarity, "Clustering admission threshold (0-100)")
	generateCmd.Flags().BoolVar(&genNoClustering, "no-clustering", false, "Emit a single flat section in insertion order")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output path (defaults to the configured output_path)")
	rootCmd.AddCommand(generateCmd)
}
