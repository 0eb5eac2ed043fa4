package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calabashre/calabash/internal/describe"
	"github.com/calabashre/calabash/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Long:  "Start an HTTP server exposing the catalog, auth, favorites, listings and blog as a JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")

	return cmd
}

func runServe(ctx context.Context, port int) error {
	sv, err := openServices()
	if err != nil {
		return err
	}
	defer sv.close()

	if ctx == nil {
		ctx = context.Background()
	}

	var gen *describe.Generator
	if sv.cfg.GeminiAPIKey != "" {
		gen, err = describe.NewGenerator(ctx, sv.cfg.GeminiAPIKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: description service unavailable: %v\n", err)
			gen = nil
		}
	}

	server := web.NewServer(sv.auth, sv.catalog, sv.favorites, sv.listings, gen)
	return server.ListenAndServe(port)
}
