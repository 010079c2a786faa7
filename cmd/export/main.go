// Command export derives the dashboard view models from a season
// payload and writes them to JSON files, for fully static deployments
// that serve pre-rendered data instead of running the HTTP service.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/kiyose/janstats/internal/domain/matches"
	"github.com/kiyose/janstats/internal/domain/roster"
	"github.com/kiyose/janstats/internal/domain/season"
	"github.com/kiyose/janstats/internal/domain/summary"
	"github.com/kiyose/janstats/internal/domain/timeline"
)

func main() {
	input := pflag.StringP("input", "i", "dist/data/summary.json", "season payload JSON file")
	outDir := pflag.StringP("out", "o", "dist/data", "output directory for derived view models")
	pretty := pflag.Bool("pretty", true, "indent the emitted JSON")
	pflag.Parse()

	if err := run(*input, *outDir, *pretty); err != nil {
		fmt.Fprintln(os.Stderr, "export failed:", err)
		os.Exit(1)
	}
}

func run(input, outDir string, pretty bool) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open payload: %w", err)
	}
	defer f.Close()

	payload, err := season.Decode(f)
	if err != nil {
		return err
	}

	reg := roster.Default()
	outputs := map[string]any{
		"timeline.json": timeline.Build(payload, reg),
		"players.json":  summary.Build(payload, reg),
		"matches.json":  matches.Build(payload, reg),
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for name, v := range outputs {
		path := filepath.Join(outDir, name)
		if err := writeJSONFile(path, v, pretty); err != nil {
			return err
		}
		fmt.Println("wrote", path)
	}
	return nil
}

func writeJSONFile(path string, v any, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
