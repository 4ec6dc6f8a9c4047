// history-gen produces a synthetic placement-history file for local testing
// and benchmarking. The output matches the real dataset layout: a header
// row, then one record per placement with timestamp, actor, color, and a
// quoted coordinate list. Compression follows the output extension.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// The 2017 canvas palette.
var palette = []string{
	"#FFFFFF", "#E4E4E4", "#888888", "#222222",
	"#FFA7D1", "#E50000", "#E59500", "#A06A42",
	"#E5D900", "#94E044", "#02BE01", "#00D3DD",
	"#0083C7", "#0000EA", "#CF6EE4", "#820080",
}

func main() {
	out := flag.String("o", "history.csv.gz", "Output path (.gz, .zst, or plain .csv)")
	count := flag.Int("n", 100000, "Number of placement records")
	actors := flag.Int("actors", 1000, "Size of the synthetic actor pool")
	rectRatio := flag.Float64("rect-ratio", 0.001, "Fraction of records that are rectangle placements")
	seed := flag.Int64("seed", 1, "PRNG seed, for reproducible histories")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	actorPool := make([]string, *actors)
	for i := range actorPool {
		actorPool[i] = uuid.NewString()
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	var (
		sink     io.Writer = file
		compress io.Closer
	)
	switch filepath.Ext(*out) {
	case ".gz":
		gz := gzip.NewWriter(file)
		sink, compress = gz, gz
	case ".zst", ".zstd":
		zw, err := zstd.NewWriter(file)
		if err != nil {
			log.Fatalf("Failed to create zstd writer: %v", err)
		}
		sink, compress = zw, zw
	}

	w := csv.NewWriter(sink)
	if err := w.Write([]string{"ts", "user_hash", "color", "coordinate"}); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}

	ts := time.Date(2017, time.March, 31, 12, 0, 0, 0, time.UTC)
	for i := 0; i < *count; i++ {
		ts = ts.Add(time.Duration(rng.Intn(250)) * time.Millisecond)

		var coordinate string
		if rng.Float64() < *rectRatio {
			x1, y1 := rng.Intn(2000), rng.Intn(2000)
			x2 := x1 + rng.Intn(2000-x1)
			y2 := y1 + rng.Intn(2000-y1)
			coordinate = fmt.Sprintf("%d,%d,%d,%d", x1, y1, x2, y2)
		} else {
			coordinate = fmt.Sprintf("%d,%d", rng.Intn(2000), rng.Intn(2000))
		}

		record := []string{
			ts.Format("2006-01-02 15:04:05.999") + " UTC",
			actorPool[rng.Intn(len(actorPool))],
			palette[rng.Intn(len(palette))],
			coordinate,
		}
		if err := w.Write(record); err != nil {
			log.Fatalf("Failed to write record %d: %v", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Failed to flush records: %v", err)
	}
	if compress != nil {
		if err := compress.Close(); err != nil {
			log.Fatalf("Failed to finish compressed stream: %v", err)
		}
	}
	if err := file.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *out, err)
	}

	log.Printf("Wrote %d records to %s", *count, *out)
}
