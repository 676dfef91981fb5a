package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/thebtf/gazette/internal/store"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored content records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.StorePath)
		if err != nil {
			return err
		}
		articles := st.List()

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(articles)
		}

		for _, a := range articles {
			category := a.Category
			if category == "" {
				category = "-"
			}
			fmt.Printf("%s  %-12s  %s\n", a.ID, category, a.Title)
		}
		fmt.Printf("%d article(s)\n", len(articles))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
