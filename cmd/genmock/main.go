// Command genmock generates a synthetic global-temperature dataset in the
// source document shape. Output is deterministic for a given seed, and it
// is run back through the domain parser before being written so fixtures
// always load the way the live dataset does.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -from 1753 -to 1762 -seed 1 \
//	  -out internal/pipeline/testdata/global-temperature.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
)

type options struct {
	from, to int
	base     float64
	seed     uint64
	gap      float64 // probability of dropping a month
	trend    float64 // °C per century
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	from := flag.Int("from", 1753, "first year")
	to := flag.Int("to", 2015, "last year")
	base := flag.Float64("base", 8.66, "base temperature")
	seed := flag.Uint64("seed", 1, "random seed")
	gap := flag.Float64("gap", 0, "probability in [0,1) that a month is missing")
	trend := flag.Float64("trend", 1.0, "warming trend in degrees per century")
	out := flag.String("out", "", "output path")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *to < *from {
		return fmt.Errorf("-to %d is before -from %d", *to, *from)
	}
	if *gap < 0 || *gap >= 1 {
		return fmt.Errorf("-gap must be in [0,1)")
	}

	ds := generate(options{from: *from, to: *to, base: *base, seed: *seed, gap: *gap, trend: *trend})

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := domain.ParseDataset(data); err != nil {
		return fmt.Errorf("generated dataset does not parse: %w", err)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil { //nolint:gosec // fixture files are not secret
		return fmt.Errorf("write: %w", err)
	}

	printStats(ds)
	log.Printf("wrote %s", *out)
	return nil
}

// generate builds a dataset with a seasonal cycle, a linear trend, and
// gaussian noise. Variances are rounded to three decimals like the source.
func generate(o options) domain.Dataset {
	rng := rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))
	ds := domain.Dataset{BaseTemperature: o.base}

	for y := o.from; y <= o.to; y++ {
		for m := 1; m <= 12; m++ {
			if o.gap > 0 && rng.Float64() < o.gap {
				continue
			}
			seasonal := 0.4 * math.Cos(2*math.Pi*float64(m-7)/12)
			drift := o.trend * float64(y-o.from) / 100
			noise := rng.NormFloat64() * 0.8
			v := math.Round((seasonal+drift+noise-o.trend/2)*1000) / 1000
			ds.MonthlyVariance = append(ds.MonthlyVariance, domain.Observation{Year: y, Month: m, Variance: v})
		}
	}
	return ds
}

func printStats(ds domain.Dataset) {
	first, last := ds.YearSpan()
	lo, hi := ds.TemperatureRange()
	fmt.Println()
	fmt.Println("=== Generated Dataset ===")
	fmt.Printf("  Observations:   %d\n", len(ds.MonthlyVariance))
	fmt.Printf("  Years:          %d-%d (%d distinct)\n", first, last, len(ds.Years()))
	fmt.Printf("  Temperature:    %.3f to %.3f\n", lo, hi)
	fmt.Printf("  Base:           %g\n", ds.BaseTemperature)
}
