package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/csvforge/internal/catalog"
	"pkg.jsn.cam/csvforge/internal/config"
	"pkg.jsn.cam/csvforge/pkg/synth"
	"pkg.jsn.cam/csvforge/pkg/table"
)

/*generates a synthetic server-migration inventory CSV*/

var (
	numRows     = flag.Int("num-rows", 100, "Number of server migration data rows to generate")
	outputFile  = flag.String("output-file", "server_migration_data.csv", "Name of the output CSV file")
	catalogPath = flag.String("catalog", "var/runs.db", "Run catalog database path (empty disables run recording)")
)

func main() {
	flag.Parse()

	if *numRows <= 0 {
		log.Fatalf("num-rows must be positive, got %d", *numRows)
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gen := synth.NewServerGenerator(cfg.Server)
	gen.Init(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	tbl, err := table.New(gen.Header())
	if err != nil {
		log.Fatalf("Failed to build table: %v", err)
	}

	bar := progressbar.Default(int64(*numRows), "generating")
	for i := 0; i < *numRows; i++ {
		row, err := gen.Next()
		if err != nil {
			log.Fatalf("Failed to generate row %d: %v", i, err)
		}
		if err := tbl.AppendRow(row); err != nil {
			log.Fatalf("Failed to collect row %d: %v", i, err)
		}
		_ = bar.Add(1)
	}

	if dir := filepath.Dir(*outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}
	if err := tbl.WriteFile(*outputFile); err != nil {
		log.Fatalf("Failed to write %s: %v", *outputFile, err)
	}

	info, err := os.Stat(*outputFile)
	if err != nil {
		log.Fatalf("Failed to stat %s: %v", *outputFile, err)
	}

	recordRun(*catalogPath, catalog.Run{
		Dataset:    "servers",
		Rows:       *numRows,
		OutputPath: *outputFile,
		Bytes:      info.Size(),
	})

	fmt.Printf("Generated %d rows of server migration data into %s (%s)\n",
		*numRows, *outputFile, humanize.Bytes(uint64(info.Size())))
}

// recordRun appends the run to the catalog. Recording is best-effort;
// the CSV on disk is the product, not the catalog entry.
func recordRun(path string, run catalog.Run) {
	if path == "" {
		return
	}
	cat, err := catalog.Open(path)
	if err != nil {
		log.Printf("[CATALOG] Skipping run record: %v", err)
		return
	}
	defer cat.Close()

	if _, err := cat.Append(run); err != nil {
		log.Printf("[CATALOG] Failed to record run: %v", err)
	}
}
