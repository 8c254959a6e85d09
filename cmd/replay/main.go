// replay re-executes a recorded scan, either from a fixture file or
// straight from a run database, and reports any drift from the recording.
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
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	dbPath := flag.String("db", "", "path to scans.db (DB mode)")
	runID := flag.String("run", "", "run ID to replay (DB mode)")
	flag.Parse()

	fixtureMode := *fixturePath != ""
	dbMode := *dbPath != "" && *runID != ""
	if fixtureMode == dbMode {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/scans.db --run <run-id>")
		os.Exit(2)
	}

	var f *replay.Fixture
	var err error
	if fixtureMode {
		f, err = replay.LoadFixture(*fixturePath)
	} else {
		f, err = loadFromDB(*dbPath, *runID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	res, err := replay.Replay(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("replayed %d points (%s)\n", res.Points, f.Description)
	if !res.OK() {
		fmt.Printf("%d mismatches:\n", len(res.Mismatches))
		for _, m := range res.Mismatches {
			fmt.Printf("  %s\n", m)
		}
		os.Exit(1)
	}
	fmt.Println("recording reproduced exactly")
}

// #endregion main

// #region db-mode

func loadFromDB(dbPath, runID string) (*replay.Fixture, error) {
	store, err := dataset.NewStore(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return replay.FromStore(store, runID)
}

// #endregion db-mode
