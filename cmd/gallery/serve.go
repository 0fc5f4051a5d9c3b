package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/hey-adora/artbounty-sub000/httpapi"
	"github.com/hey-adora/artbounty-sub000/store"
)

func newServeCmd() *cobra.Command {
	var (
		dbPath string
		addr   string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery's paging API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer startProfile()()

			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			handler := httpapi.NewHandler(s)
			log.Printf("gallery: listening on %s (db=%s)", addr, dbPath)
			return http.ListenAndServe(addr, handler)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "gallery.db", "path to the SQLite database")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	return cmd
}
