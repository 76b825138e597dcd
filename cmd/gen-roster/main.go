// Command gen-roster writes a synthetic fighter roster as JSON, suitable as
// the roster supply for the forecast service.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/burdigala/melee/internal/rostergen"
)

const defaultFighters = 32

func main() {
	var (
		count = flag.Int("fighters", defaultFighters, "Number of fighters to generate")
		seed  = flag.Int64("seed", time.Now().UnixNano(), "Random seed (same seed, same roster)")
		out   = flag.String("out", "", "Output file (default: stdout)")
	)
	flag.Parse()

	fighters := rostergen.Generate(*count, *seed)

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			os.Stderr.WriteString("creating output file: " + err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close() //nolint:errcheck // flushed by Encode
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fighters); err != nil {
		os.Stderr.WriteString("encoding roster: " + err.Error() + "\n")
		os.Exit(1)
	}
}
