// GlassCut is a glass cut list optimizer.
//
// Packs a list of rectangular glass panels onto stock sheets using a
// guillotine best-area-fit heuristic with optional population-based
// refinement, and prints a utilization report.
//
// Build:
//   go build -o glasscut ./cmd/glasscut
//
// Usage:
//   glasscut -job kitchen.json
//   glasscut -job kitchen.json -refine -out kitchen-solved.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/packwise/glasscut/internal/engine"
	"github.com/packwise/glasscut/internal/model"
	"github.com/packwise/glasscut/internal/project"
)

func main() {
	jobPath := flag.String("job", "", "path to a job JSON file (required)")
	outPath := flag.String("out", "", "write the job including its solution to this path")
	refine := flag.Bool("refine", false, "run the population-based refinement pass")
	offcuts := flag.Bool("offcuts", false, "list reusable offcuts")
	flag.Parse()

	if *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	job, err := project.Load(*jobPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glasscut: %v\n", err)
		os.Exit(1)
	}

	if *refine && job.Settings.Refine == nil {
		cfg := model.DefaultRefineConfig()
		job.Settings.Refine = &cfg
	}

	solution, err := engine.New(job.Settings).Pack(job.Parts, job.Stocks)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			fmt.Fprintf(os.Stderr, "glasscut: %v\n", err)
			os.Exit(1)
		}
		// Stock exhaustion still yields a usable partial layout.
		fmt.Fprintf(os.Stderr, "glasscut: warning: %v\n", err)
	}

	printReport(engine.Summarize(solution))

	for _, u := range solution.Unplaced {
		fmt.Printf("unplaced: %s %.0fx%.0f (%s)\n",
			u.Part.Location, u.Part.Length, u.Part.Height, u.Reason)
	}

	if *offcuts {
		for _, o := range model.DetectAllOffcuts(solution) {
			fmt.Printf("offcut: sheet %d  %.0fx%.0f at (%.0f, %.0f)\n",
				o.SheetIndex+1, o.Length, o.Width, o.X, o.Y)
		}
	}

	if *outPath != "" {
		job.Solution = &solution
		if err := project.Save(*outPath, job); err != nil {
			fmt.Fprintf(os.Stderr, "glasscut: %v\n", err)
			os.Exit(1)
		}
	}
}

func printReport(report engine.Report) {
	fmt.Printf("sheets used:  %d\n", report.SheetsUsed)
	fmt.Printf("utilization:  %.1f%%\n", report.UtilizationPct)
	fmt.Printf("waste:        %.1f%%\n", report.WastePct)
	sizes := make([]engine.SheetSize, 0, len(report.SheetSizeHistogram))
	for size := range report.SheetSizeHistogram {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool {
		if sizes[i].Length != sizes[j].Length {
			return sizes[i].Length > sizes[j].Length
		}
		return sizes[i].Width > sizes[j].Width
	})
	for _, size := range sizes {
		fmt.Printf("  %gx%g: %d sheet(s)\n", size.Length, size.Width, report.SheetSizeHistogram[size])
	}
	for i, g := range report.Groups {
		fmt.Printf("layout %d (x%d): %d panel(s)", i+1, g.Count, len(g.Sheet.Placements))
		if len(g.Locations) > 0 {
			fmt.Printf("  [%s", g.Locations[0])
			for _, loc := range g.Locations[1:] {
				fmt.Printf(", %s", loc)
			}
			fmt.Print("]")
		}
		fmt.Println()
	}
}
