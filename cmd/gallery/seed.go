package main

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/hey-adora/artbounty-sub000/internal/fixture"
	"github.com/hey-adora/artbounty-sub000/store"
)

func newSeedCmd() *cobra.Command {
	var (
		dbPath string
		count  int
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate a SQLite store with generated demo items",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer startProfile()()

			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			items := fixture.Items(count, uint64(time.Now().UnixNano()))
			ctx := context.Background()
			for _, it := range items {
				if err := s.Put(ctx, it); err != nil {
					return err
				}
			}
			log.Printf("gallery: seeded %d items into %s", len(items), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "gallery.db", "path to the SQLite database")
	cmd.Flags().IntVar(&count, "count", 500, "number of demo items to generate")
	return cmd
}
