// inspect browses a scan run database: recent runs as a table, or one
// run's detail with its channels and event log.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mhollis/gridscan/internal/dataset"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to scans.db")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/scans.db [--last N] [--run id] [--json]")
		os.Exit(2)
	}

	store, err := dataset.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID     string `json:"run_id"`
	Fragment  string `json:"fragment_fqn"`
	Seed      int64  `json:"seed"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
	Points    int    `json:"points"`
	StartedAt string `json:"started_at"`
}

func runListMode(store *dataset.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	rows := make([]listRow, 0, len(runs))
	for _, r := range runs {
		n, err := store.PointCount(r.RunID)
		if err != nil {
			return err
		}
		rows = append(rows, listRow{
			RunID:     r.RunID,
			Fragment:  r.FragmentFQN,
			Seed:      r.Seed,
			State:     r.State,
			Completed: r.Completed,
			Points:    n,
			StartedAt: r.StartedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s  %-28s  %-10s  %7s  %20s  %s\n",
		"Run", "Fragment", "State", "Points", "Seed", "Started")
	for _, r := range rows {
		fmt.Printf("%-10s  %-28s  %-10s  %7d  %20d  %s\n",
			shortID(r.RunID), r.Fragment, r.State, r.Points, r.Seed, r.StartedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	Run      listRow            `json:"run"`
	Channels []channelDetail    `json:"channels"`
	Events   []dataset.RunEvent `json:"events"`
	Describe json.RawMessage    `json:"describe"`
}

type channelDetail struct {
	Name   string `json:"name"`
	Values int    `json:"values"`
}

func runDetailMode(store *dataset.Store, runID string, jsonOut bool) error {
	rec, err := store.GetRun(runID)
	if err != nil {
		return err
	}
	n, err := store.PointCount(runID)
	if err != nil {
		return err
	}
	channels, err := store.Channels(runID)
	if err != nil {
		return err
	}
	events, err := store.Events(runID)
	if err != nil {
		return err
	}

	out := detailOutput{
		Run: listRow{
			RunID:     rec.RunID,
			Fragment:  rec.FragmentFQN,
			Seed:      rec.Seed,
			State:     rec.State,
			Completed: rec.Completed,
			Points:    n,
			StartedAt: rec.StartedAt.Format("2006-01-02T15:04:05Z"),
		},
		Describe: json.RawMessage(rec.DescribeJSON),
	}
	for _, name := range channels {
		values, err := store.ChannelValues(runID, name)
		if err != nil {
			return err
		}
		out.Channels = append(out.Channels, channelDetail{Name: name, Values: len(values)})
	}
	out.Events = events

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Run:       %s\n", rec.RunID)
	fmt.Printf("Fragment:  %s\n", rec.FragmentFQN)
	fmt.Printf("State:     %s (completed=%v)\n", rec.State, rec.Completed)
	fmt.Printf("Seed:      %d\n", rec.Seed)
	fmt.Printf("Points:    %d\n", n)
	fmt.Printf("Started:   %s\n", out.Run.StartedAt)

	fmt.Printf("\nChannels:\n")
	for _, ch := range out.Channels {
		missing := ""
		if ch.Values < n {
			missing = fmt.Sprintf("  (%d points missing)", n-ch.Values)
		}
		fmt.Printf("  %-20s %d values%s\n", ch.Name, ch.Values, missing)
	}

	fmt.Printf("\nEvents:\n")
	for _, ev := range events {
		detail := ""
		if ev.Detail != "" {
			detail = "  " + ev.Detail
		}
		fmt.Printf("  %s  %-16s%s\n", ev.CreatedAt.Format("15:04:05.000"), ev.Event, detail)
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
