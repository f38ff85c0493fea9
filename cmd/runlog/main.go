package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/csvforge/internal/catalog"
)

/*lists previously recorded generation runs*/

var dbPath = flag.String("db", "var/runs.db", "Run catalog database path")

func main() {
	flag.Parse()

	cat, err := catalog.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer cat.Close()

	runs, err := cat.List()
	if err != nil {
		log.Fatalf("Failed to list runs: %v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return
	}

	fmt.Printf("%-36s %-10s %8s %10s %-19s %s\n", "RUN ID", "DATASET", "ROWS", "SIZE", "RECORDED", "OUTPUT")
	fmt.Println("────────────────────────────────────────────────────────────────────────────────────────────────────")
	for _, run := range runs {
		fmt.Printf("%-36s %-10s %8d %10s %-19s %s\n",
			run.ID,
			run.Dataset,
			run.Rows,
			humanize.Bytes(uint64(run.Bytes)),
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.OutputPath)
	}
}
