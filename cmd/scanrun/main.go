// scanrun executes a scan described by a JSON or YAML scan document,
// either in-process against a synthetic measurement or through a remote
// executor service, optionally persisting the run to SQLite and exporting
// a replay fixture.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/mhollis/gridscan/internal/dataset"
	"github.com/mhollis/gridscan/internal/describe"
	"github.com/mhollis/gridscan/internal/executor"
	"github.com/mhollis/gridscan/internal/replay"
	"github.com/mhollis/gridscan/internal/runner"
	"github.com/mhollis/gridscan/internal/scan"
	"github.com/mhollis/gridscan/internal/sink"
)

// #region main

func main() {
	scanPath := flag.String("scan", "", "path to scan document (.json/.yaml)")
	dbPath := flag.String("db", envOr("SCAN_DB", ""), "persist the run to this SQLite database")
	executorAddr := flag.String("executor", envOr("EXECUTOR_ADDR", ""), "run points through the executor service at this address")
	fixtureOut := flag.String("fixture-out", "", "write a replay fixture of the finished run")
	chunkSize := flag.Int("chunk-size", runner.DefaultChunkSize, "points per executor round trip")
	flag.Parse()

	if *scanPath == "" {
		fmt.Fprintln(os.Stderr, "usage: scanrun --scan path/to/scan.json [--db scans.db] [--executor host:port] [--fixture-out fixture.json]")
		os.Exit(2)
	}
	if err := run(*scanPath, *dbPath, *executorAddr, *fixtureOut, *chunkSize); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

const fragmentFQN = "gridscan.synthetic.Peak"

func run(scanPath, dbPath, executorAddr, fixtureOut string, chunkSize int) error {
	doc, err := scan.LoadDocument(scanPath)
	if err != nil {
		return err
	}
	spec, err := doc.BuildSpec()
	if err != nil {
		return err
	}

	out := sink.NewResultChannel("readout", "synthetic peak response")
	outSink := sink.NewMemorySink()
	channels := []*sink.ResultChannel{out}

	desc, err := describe.Describe(spec, fragmentFQN, channels, nil)
	if err != nil {
		return err
	}

	axisMems := make([]*sink.MemorySink, len(spec.Axes))
	axisSinks := make([]sink.Sink, len(spec.Axes))
	for i := range axisSinks {
		axisMems[i] = sink.NewMemorySink()
		axisSinks[i] = axisMems[i]
	}

	params := runner.Params{
		Spec:      spec,
		Scheduler: runner.NeverPause{},
		AxisSinks: axisSinks,
		Channels:  channels,
		Config:    runner.Config{ChunkSize: chunkSize},
	}

	var runRec dataset.RunRecord
	var store *dataset.Store
	if dbPath != "" {
		store, err = dataset.NewStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		runRec, err = store.BeginRun(desc, doc)
		if err != nil {
			return err
		}
		rec := dataset.NewRecorder(store, runRec.RunID, len(spec.Axes))
		for i := range axisSinks {
			axisSinks[i] = dataset.Tee(axisMems[i], rec.AxisSink(i))
		}
		params.AxisSinks = axisSinks
		params.Log = rec
		params.Points = rec
		out.SetSink(dataset.Tee(outSink, rec.ChannelSink(out.Name())))
	} else {
		out.SetSink(outSink)
	}

	if executorAddr != "" {
		client, err := executor.NewClient(executorAddr)
		if err != nil {
			return fmt.Errorf("connect executor at %s: %w", executorAddr, err)
		}
		defer client.Close()
		params.Target = client
	} else {
		params.Fragment = runner.FragmentFunc(func(ctx context.Context) error {
			point := make([]float64, len(spec.Axes))
			for i, ax := range spec.Axes {
				point[i] = ax.Store.Get()
			}
			out.Push(syntheticPeak(point))
			return nil
		})
	}

	r, err := runner.New(params)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("[SCAN] %d axes, seed %d, executor=%q db=%q",
		len(spec.Axes), desc.Seed, executorAddr, dbPath)
	runErr := r.Run(ctx)

	if store != nil {
		completed := r.State() == runner.Completed
		if err := store.FinishRun(runRec.RunID, r.State().String(), completed); err != nil {
			log.Printf("[SCAN] record terminal state: %v", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Printf("scan %s: %d points delivered\n", r.State(), r.Delivered())
	if missing := r.Missing(); len(missing) > 0 {
		fmt.Printf("channels with missing results: %v\n", missing)
	}

	if fixtureOut != "" {
		doc.Seed = spec.Options.Seed
		axes := make([][]float64, len(axisMems))
		for i, mem := range axisMems {
			axes[i] = mem.Values()
		}
		f, err := replay.Record(fmt.Sprintf("scanrun %s", scanPath), *doc, axes,
			map[string][]float64{out.Name(): outSink.Values()})
		if err != nil {
			return fmt.Errorf("record fixture: %w", err)
		}
		if err := replay.SaveFixture(fixtureOut, f); err != nil {
			return err
		}
		fmt.Printf("fixture written to %s\n", fixtureOut)
	}
	return nil
}

// syntheticPeak is the built-in measurement: a unit peak at the origin of
// the scanned coordinates. executord serves the same function, so host and
// remote runs of the same document produce identical data.
func syntheticPeak(point []float64) float64 {
	var sq float64
	for _, v := range point {
		sq += v * v
	}
	return 1 / (1 + sq)
}

// #endregion run

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
