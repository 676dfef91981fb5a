package main

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thebtf/gazette/internal/server"
	"github.com/thebtf/gazette/internal/store"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the upload form and JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.ListenAddr = serveAddr
		}

		st, err := store.Open(cfg.StorePath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc := server.New(cfg, st)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return svc.ListenAndServe(ctx)
		})
		g.Go(func() error {
			// Pick up stores edited by other processes while serving.
			return st.Watch(ctx)
		})

		err = g.Wait()
		log.Info().Msg("Server stopped")
		return err
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to the configured listen_addr)")
	rootCmd.AddCommand(serveCmd)
}
