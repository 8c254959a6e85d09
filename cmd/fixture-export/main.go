// fixture-export extracts a persisted run from a scan database into a
// standalone replay fixture file, usable as a regression baseline.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mhollis/gridscan/internal/dataset"
	"github.com/mhollis/gridscan/internal/replay"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to scans.db")
	runID := flag.String("run", "", "run ID to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *runID == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/scans.db --run <run-id> --out path/to/fixture.json")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, runID, outPath string) error {
	store, err := dataset.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	f, err := replay.FromStore(store, runID)
	if err != nil {
		return err
	}

	// The export must replay clean before it is written out.
	res, err := replay.Replay(f)
	if err != nil {
		return err
	}
	if !res.OK() {
		return fmt.Errorf("run does not replay cleanly: %d mismatches, first: %s",
			len(res.Mismatches), res.Mismatches[0])
	}

	if err := replay.SaveFixture(outPath, f); err != nil {
		return err
	}
	fmt.Printf("exported run %s (%d points) to %s\n", runID, f.NumPoints(), outPath)
	return nil
}

// #endregion main
