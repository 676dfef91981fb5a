package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thebtf/gazette/internal/store"
	"github.com/thebtf/gazette/pkg/models"
)

var (
	addBody     string
	addBodyFile string
	addCategory string
	addTags     []string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Save a content record to the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := addBody
		if addBodyFile != "" {
			data, err := os.ReadFile(addBodyFile)
			if err != nil {
				return fmt.Errorf("read body file: %w", err)
			}
			body = string(data)
		}

		st, err := store.Open(cfg.StorePath)
		if err != nil {
			return err
		}

		article := models.NewArticle(args[0], body, addCategory, addTags)
		stored, err := st.Add(article)
		if err != nil {
			return err
		}

		log.Info().Str("id", stored.ID).Str("title", stored.Title).Msg("Article saved")
		fmt.Println(stored.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addBody, "body", "", "Article body (marked-up text allowed)")
	addCmd.Flags().StringVar(&addBodyFile, "body-file", "", "Read the article body from a file")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Optional category label")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "Tag (repeatable)")
	rootCmd.AddCommand(addCmd)
}
