// Command validate checks a JSON observation fixture against the raw ISH
// file it was generated from. It re-decodes every line with the current
// decoder and verifies record counts, identity keys, required fields, and
// that each fixture document still matches the decoder output.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -in internal/pipeline/testdata/observations.ish \
//	  -fixture data/mock/observations.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/couchcryptid/ish-observation-etl/internal/domain"
	"github.com/couchcryptid/ish-observation-etl/internal/ish"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	in := flag.String("in", "", "raw ISH file the fixture was generated from")
	fixture := flag.String("fixture", "", "path to the JSON observation fixture")
	flag.Parse()

	if *in == "" || *fixture == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(*in, *fixture))
}

// sourceLine is a decoded source line, or the reason it failed.
type sourceLine struct {
	lineNum int
	obs     domain.Observation
	err     error
}

func run(inPath, fixturePath string) int {
	// Set a fixed clock matching genfixture.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	fmt.Println("=== ISH Fixture Validation ===")
	fmt.Println()

	source, err := loadSource(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load source: %v\n", err)
		return 1
	}

	docs, err := loadFixture(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load fixture: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateSourceDecoding(source),
		validateFixtureParity(source, docs),
		validateRequiredFields(docs),
		validateDocuments(source, docs),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d source lines, %d fixture documents\n", len(source), len(docs))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Data loading ──

func loadSource(path string) ([]sourceLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := ish.NewDecoder(ish.DefaultDescriptions())
	lines := ish.NewReader(f)

	var out []sourceLine
	for lines.Next() {
		obs, err := domain.ParseRawEventWith(decoder, domain.RawEvent{Value: []byte(lines.Line())})
		if err == nil {
			obs = domain.EnrichObservation(obs)
		}
		out = append(out, sourceLine{lineNum: lines.LineNumber(), obs: obs, err: err})
	}
	return out, lines.Err()
}

// loadFixture reads the fixture as generic documents. Reports have no
// decoding counterpart, so comparison happens on the JSON shape.
func loadFixture(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var docs []map[string]any
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func toDocument(obs domain.Observation) (map[string]any, error) {
	data, err := json.Marshal(obs)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decoded(source []sourceLine) []sourceLine {
	var out []sourceLine
	for _, s := range source {
		if s.err == nil {
			out = append(out, s)
		}
	}
	return out
}

// ── Phases ──

func validateSourceDecoding(source []sourceLine) *phase {
	p := &phase{name: "Source decoding"}
	if len(source) == 0 {
		p.errorf("source file has no records")
	}
	for _, s := range source {
		if s.err != nil {
			p.errorf("line %d: %v", s.lineNum, s.err)
			continue
		}
		if len(s.obs.SkippedCodes) > 0 {
			p.errorf("line %d: unknown additional codes %v", s.lineNum, s.obs.SkippedCodes)
		}
	}
	return p
}

func validateFixtureParity(source []sourceLine, docs []map[string]any) *phase {
	p := &phase{name: "Fixture parity"}
	ok := decoded(source)
	if len(ok) != len(docs) {
		p.errorf("count mismatch: %d decoded lines, %d fixture documents", len(ok), len(docs))
	}

	seen := make(map[string]int, len(docs))
	for i, doc := range docs {
		id, _ := doc["id"].(string)
		if prev, dup := seen[id]; dup {
			p.errorf("fixture[%d]: duplicate id %s (also fixture[%d])", i, id, prev)
		}
		seen[id] = i
	}

	for _, s := range ok {
		if _, found := seen[s.obs.ID]; !found {
			p.errorf("line %d: id %s missing from fixture", s.lineNum, s.obs.ID)
		}
	}
	return p
}

var requiredFields = []string{"id", "station", "report_type", "observed_at", "time_bucket", "report", "processed_at"}

func validateRequiredFields(docs []map[string]any) *phase {
	p := &phase{name: "Required fields"}
	for i, doc := range docs {
		for _, f := range requiredFields {
			v, ok := doc[f]
			if !ok || v == nil || v == "" {
				p.errorf("fixture[%d]: missing %s", i, f)
			}
		}

		observed, _ := doc["observed_at"].(string)
		bucket, _ := doc["time_bucket"].(string)
		t, err := time.Parse(time.RFC3339, observed)
		if err != nil {
			p.errorf("fixture[%d]: observed_at %q: %v", i, observed, err)
			continue
		}
		if want := t.Truncate(time.Hour).Format(time.RFC3339); bucket != want {
			p.errorf("fixture[%d]: time_bucket %q, want %q", i, bucket, want)
		}
	}
	return p
}

func validateDocuments(source []sourceLine, docs []map[string]any) *phase {
	p := &phase{name: "Decoder output matches fixture"}

	byID := make(map[string]map[string]any, len(docs))
	for _, doc := range docs {
		if id, ok := doc["id"].(string); ok {
			byID[id] = doc
		}
	}

	for _, s := range decoded(source) {
		fixture, ok := byID[s.obs.ID]
		if !ok {
			continue
		}
		want, err := toDocument(s.obs)
		if err != nil {
			p.errorf("line %d: marshal: %v", s.lineNum, err)
			continue
		}
		if diff := cmp.Diff(want, fixture); diff != "" {
			p.errorf("line %d (%s) mismatch (-decoded +fixture):\n%s", s.lineNum, s.obs.ID, diff)
		}
	}
	return p
}
