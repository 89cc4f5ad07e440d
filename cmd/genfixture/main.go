// Command genfixture decodes a file of raw ISH lines into a JSON fixture of
// observations. It runs the same domain transformation as the pipeline, so
// the output matches what the service publishes.
//
// Usage:
//
//	go run ./cmd/genfixture \
//	  -in internal/pipeline/testdata/observations.ish \
//	  -out data/mock/observations.json \
//	  -archive data/mock/observations.db
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/ish-observation-etl/internal/adapter/sqlite"
	"github.com/couchcryptid/ish-observation-etl/internal/domain"
	"github.com/couchcryptid/ish-observation-etl/internal/ish"
	"github.com/couchcryptid/ish-observation-etl/internal/observability"
	"github.com/jonboulle/clockwork"
)

// fixtureTime is the ProcessedAt stamped on every fixture observation.
var fixtureTime = time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	in := flag.String("in", "", "input file of raw ISH lines")
	out := flag.String("out", "", "output path for the JSON observation fixture")
	archivePath := flag.String("archive", "", "optional SQLite archive to load the observations into")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -in, -out")
	}

	// Set a fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	observations, failures, err := decodeFile(*in)
	if err != nil {
		return fmt.Errorf("processing %s: %w", *in, err)
	}
	log.Printf("decoded %d records, %d failures", len(observations), len(failures))

	if err := writeJSON(*out, observations); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s", *out)

	if *archivePath != "" {
		if err := archive(*archivePath, observations); err != nil {
			return fmt.Errorf("writing archive: %w", err)
		}
		log.Printf("wrote archive: %s", *archivePath)
	}

	printStats(observations, failures)
	return nil
}

// lineFailure is a line that did not decode.
type lineFailure struct {
	line int
	err  error
}

func decodeFile(path string) ([]domain.Observation, []lineFailure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	decoder := ish.NewDecoder(ish.DefaultDescriptions())
	lines := ish.NewReader(f)

	var observations []domain.Observation
	var failures []lineFailure
	for lines.Next() {
		raw := domain.RawEvent{Value: []byte(lines.Line())}
		obs, err := domain.ParseRawEventWith(decoder, raw)
		if err != nil {
			failures = append(failures, lineFailure{line: lines.LineNumber(), err: err})
			continue
		}
		observations = append(observations, domain.EnrichObservation(obs))
	}
	if err := lines.Err(); err != nil {
		return nil, nil, fmt.Errorf("read: %w", err)
	}
	return observations, failures, nil
}

func archive(path string, observations []domain.Observation) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	store, err := sqlite.Open(path, observability.NewMetricsForTesting())
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.LoadBatch(context.Background(), observations); err != nil {
		return err
	}
	n, err := store.Count(context.Background())
	if err != nil {
		return err
	}
	log.Printf("archive holds %d observations", n)
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

type keyCount struct {
	key   string
	count int
}

func sortedCounts(m map[string]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, c := range m {
		out = append(out, keyCount{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

func printCounts(label string, m map[string]int) {
	fmt.Printf("%s (%d):", label, len(m))
	for _, kc := range sortedCounts(m) {
		fmt.Printf(" %s=%d", kc.key, kc.count)
	}
	fmt.Println()
}

func printStats(observations []domain.Observation, failures []lineFailure) {
	reportTypes := map[string]int{}
	stations := map[string]int{}
	codes := map[string]int{}
	skipped := map[string]int{}
	var withHumidity, withWeather int

	for i := range observations {
		obs := &observations[i]
		reportTypes[obs.ReportType]++
		stations[obs.Station]++
		for _, c := range obs.AdditionalCodes {
			codes[c]++
		}
		for _, c := range obs.SkippedCodes {
			skipped[c]++
		}
		if obs.RelativeHumidity != nil {
			withHumidity++
		}
		if len(obs.PresentWeather) > 0 {
			withWeather++
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(observations))
	fmt.Printf("With relative humidity: %d\n", withHumidity)
	fmt.Printf("With present weather: %d\n", withWeather)
	printCounts("Report types", reportTypes)
	printCounts("Stations", stations)
	printCounts("Additional codes", codes)
	if len(skipped) > 0 {
		printCounts("Skipped codes", skipped)
	}

	if len(failures) > 0 {
		fmt.Printf("\nFailures (%d):\n", len(failures))
		for _, f := range failures {
			fmt.Printf("  line %d: %v\n", f.line, f.err)
		}
	}
}
