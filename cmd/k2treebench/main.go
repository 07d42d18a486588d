// Command k2treebench builds a rectangular K²-tree from a synthetic
// sparse relation and drives it with a mixed read/range/first-successor
// workload, reporting p25/p50/p99 latency per operation kind. The
// workload mix and request distribution follow the same shape as
// pkg/ycsb's WorkloadConfig; the percentile accounting is
// internal/latency, adapted from the shard runtime's latency tracker.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nszioual/k2trees/internal/latency"
	"github.com/nszioual/k2trees/pkg/k2tree"
)

// workloadMix is a k2treebench-local analog of pkg/ycsb's
// WorkloadConfig: proportions of the query mix plus the request
// distribution used to pick rows.
type workloadMix struct {
	name                string
	lookupProportion    float64
	successorProportion float64
	rangeProportion     float64
	firstSuccProportion float64
	requestDistribution string // "uniform" or "zipfian"
}

var (
	workloadReadHeavy = workloadMix{
		name:                "read-heavy",
		lookupProportion:    0.85,
		successorProportion: 0.10,
		rangeProportion:     0.025,
		firstSuccProportion: 0.025,
		requestDistribution: "zipfian",
	}
	workloadScanHeavy = workloadMix{
		name:                "scan-heavy",
		lookupProportion:    0.20,
		successorProportion: 0.30,
		rangeProportion:     0.40,
		firstSuccProportion: 0.10,
		requestDistribution: "uniform",
	}
	workloadUniform = workloadMix{
		name:                "uniform",
		lookupProportion:    0.25,
		successorProportion: 0.25,
		rangeProportion:     0.25,
		firstSuccProportion: 0.25,
		requestDistribution: "uniform",
	}
)

var workloadsByName = map[string]workloadMix{
	workloadReadHeavy.name: workloadReadHeavy,
	workloadScanHeavy.name: workloadScanHeavy,
	workloadUniform.name:   workloadUniform,
}

func selectOp(m workloadMix, r *rand.Rand) string {
	x := r.Float64()
	if x < m.lookupProportion {
		return "lookup"
	}
	x -= m.lookupProportion
	if x < m.successorProportion {
		return "successor"
	}
	x -= m.successorProportion
	if x < m.rangeProportion {
		return "range"
	}
	return "firstSuccessor"
}

// pickRow chooses a row index according to m's request distribution.
// "zipfian" is the same simplified 80/20 hot-range approximation
// pkg/ycsb uses rather than a true Zipfian draw.
func pickRow(m workloadMix, numRows int, r *rand.Rand) int {
	switch m.requestDistribution {
	case "zipfian":
		if r.Float64() < 0.8 {
			return r.Intn(maxInt(numRows/5, 1))
		}
		return numRows/5 + r.Intn(maxInt(numRows*4/5, 1))
	default:
		return r.Intn(numRows)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// buildSyntheticRelation returns a sparse relation with approximately
// density*numRows*numCols non-null bool cells, keyed by row then
// column, suitable for k2tree.FromSparseRows.
func buildSyntheticRelation(numRows, numCols int, density float64, r *rand.Rand) map[int]map[int]bool {
	sparse := make(map[int]map[int]bool, numRows)
	target := int(density * float64(numRows) * float64(numCols))
	for n := 0; n < target; n++ {
		row := r.Intn(numRows)
		col := r.Intn(numCols)
		if sparse[row] == nil {
			sparse[row] = make(map[int]bool)
		}
		sparse[row][col] = true
	}
	return sparse
}

func main() {
	var (
		numRows     int
		numCols     int
		kr, kc      int
		density     float64
		workloadArg string
		operations  int
		workers     int
		seed        int64
		mode        string
	)

	flag.IntVar(&numRows, "rows", 1<<16, "number of rows in the synthetic relation")
	flag.IntVar(&numCols, "cols", 1<<16, "number of columns in the synthetic relation")
	flag.IntVar(&kr, "kr", 4, "row arity")
	flag.IntVar(&kc, "kc", 4, "column arity")
	flag.Float64Var(&density, "density", 0.0005, "fraction of cells that are non-null")
	flag.StringVar(&workloadArg, "workload", "read-heavy", "workload mix: read-heavy, scan-heavy, uniform")
	flag.IntVar(&operations, "ops", 200_000, "total query operations to run")
	flag.IntVar(&workers, "workers", 4, "concurrent query workers")
	flag.Int64Var(&seed, "seed", 1, "PRNG seed for the synthetic relation and workload")
	flag.StringVar(&mode, "mode", "dynamic", "list construction mode: recursive, temptree, dynamic")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	workload, ok := workloadsByName[workloadArg]
	if !ok {
		log.Fatal().Str("workload", workloadArg).Msg("k2treebench: unknown workload")
	}

	buildSeed := rand.New(rand.NewSource(seed))
	sparse := buildSyntheticRelation(numRows, numCols, density, buildSeed)
	rows := k2tree.FromSparseRows(sparse, numRows)

	var constructMode k2tree.Mode
	switch mode {
	case "recursive":
		constructMode = k2tree.ModeRecursive
	case "temptree":
		constructMode = k2tree.ModeTempTree
	default:
		constructMode = k2tree.ModeDynamic
	}

	buildStart := time.Now()
	tree, err := k2tree.NewFromLists[bool](rows, kr, kc, constructMode, false)
	if err != nil {
		log.Fatal().Err(err).Msg("k2treebench: construction failed")
	}
	buildElapsed := time.Since(buildStart)

	log.Info().
		Str("workload", workload.name).
		Int("numRows", tree.NumRows()).
		Int("numCols", tree.NumCols()).
		Int("nonNullCells", tree.CountElements()).
		Dur("buildTime", buildElapsed).
		Msg("k2treebench: tree built")

	tracker := latency.NewTracker()
	opsPerWorker := operations / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(workerID int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed + int64(workerID) + 1))
			for n := 0; n < opsPerWorker; n++ {
				row := pickRow(workload, tree.NumRows(), r)
				op := selectOp(workload, r)

				start := time.Now()
				switch op {
				case "lookup":
					col := r.Intn(tree.NumCols())
					tree.IsNotNull(row, col)
				case "successor":
					tree.SuccessorPositions(row)
				case "range":
					span := 1 + r.Intn(64)
					colSpan := 1 + r.Intn(64)
					i2 := minInt(row+span, tree.NumRows()-1)
					j1 := r.Intn(tree.NumCols())
					j2 := minInt(j1+colSpan, tree.NumCols()-1)
					tree.PositionsInRange(row, i2, j1, j2)
				case "firstSuccessor":
					tree.FirstSuccessor(row)
				}
				tracker.Record(op, time.Since(start))
			}
		}(w)
	}
	wg.Wait()

	for _, kind := range []string{"lookup", "successor", "range", "firstSuccessor"} {
		p25, p50, p99 := tracker.Percentiles(kind)
		log.Info().
			Str("op", kind).
			Dur("p25", p25).
			Dur("p50", p50).
			Dur("p99", p99).
			Msg("k2treebench: latency")
	}

	fmt.Printf("k2treebench: workload=%s rows=%d cols=%d nonNull=%d buildTime=%s ops=%d\n",
		workload.name, tree.NumRows(), tree.NumCols(), tree.CountElements(), buildElapsed, operations)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
