package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/csvforge/internal/catalog"
	"pkg.jsn.cam/csvforge/internal/config"
	"pkg.jsn.cam/csvforge/pkg/synth"
	"pkg.jsn.cam/csvforge/pkg/table"
)

/*generates a fixed batch of synthetic payroll records*/

const (
	outputFile         = "fake_payroll.csv"
	defaultCatalogPath = "var/runs.db"
)

func main() {
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gen, err := synth.NewPayrollGenerator(cfg.Payroll)
	if err != nil {
		log.Fatalf("Invalid payroll configuration: %v", err)
	}
	gen.Init(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	tbl, err := table.FromSource(gen, cfg.Payroll.BatchSize)
	if err != nil {
		log.Fatalf("Failed to generate payroll data: %v", err)
	}

	if err := tbl.WriteFile(outputFile); err != nil {
		log.Fatalf("Failed to write %s: %v", outputFile, err)
	}

	info, err := os.Stat(outputFile)
	if err != nil {
		log.Fatalf("Failed to stat %s: %v", outputFile, err)
	}

	recordRun(defaultCatalogPath, catalog.Run{
		Dataset:    "payroll",
		Rows:       cfg.Payroll.BatchSize,
		OutputPath: outputFile,
		Bytes:      info.Size(),
	})

	fmt.Printf("Generated %d rows of payroll data into %s (%s)\n",
		cfg.Payroll.BatchSize, outputFile, humanize.Bytes(uint64(info.Size())))
}

// recordRun appends the run to the catalog. Recording is best-effort;
// the CSV on disk is the product, not the catalog entry.
func recordRun(path string, run catalog.Run) {
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
