// Command gallery runs the justified image gallery's HTTP server, or seeds
// a local SQLite store with demo data, grounded on the teacher's
// example/kitchen/main.go entrypoint shape.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var profileMode string

func main() {
	root := &cobra.Command{
		Use:   "gallery",
		Short: "Virtualized justified image gallery server and tooling",
	}
	root.PersistentFlags().StringVar(&profileMode, "profile", "", "enable profiling: cpu, mem, or block")
	root.AddCommand(newServeCmd(), newSeedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// startProfile starts the requested profile.Profile and returns its Stop
// func, or a no-op if profiling was not requested.
func startProfile() func() {
	switch profileMode {
	case "cpu":
		p := profile.Start(profile.CPUProfile)
		return p.Stop
	case "mem":
		p := profile.Start(profile.MemProfile)
		return p.Stop
	case "block":
		p := profile.Start(profile.BlockProfile)
		return p.Stop
	case "":
		return func() {}
	default:
		log.Fatalf("gallery: unknown -profile mode %q", profileMode)
		return func() {}
	}
}
