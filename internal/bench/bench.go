// Package bench times raid6.Recover calls, reporting net throughput
// the way original_source/raid6_test/raid6_test.cpp's CCycleTimer
// does: the timed region excludes buffer setup and parity priming, so
// the number reported is recovery work alone.
package bench

import (
	"fmt"
	"time"

	"github.com/Anthya1104/evenodd-raid6/internal/raid6"
	"github.com/sirupsen/logrus"
)

// Result is one (numDisk, miss1, miss2) measurement.
type Result struct {
	NumDisk        int
	Miss1          int
	Miss2          int
	Bytes          int
	Elapsed        time.Duration
	ThroughputMBps float64
}

// Run times a single Recover call over a block already primed with
// valid parity, with block[miss1]/block[miss2] zeroed by the caller.
// Setup (allocation, priming) happens before Run is called so it never
// enters the timed region.
func Run(e *raid6.Engine, block [][]byte, numBytes, numDisk, miss1, miss2 int) (Result, error) {
	start := time.Now()
	err := e.Recover(block, numBytes, numDisk, miss1, miss2)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}

	mb := float64(numBytes) / (1024 * 1024)
	throughput := mb / elapsed.Seconds()
	return Result{
		NumDisk:        numDisk,
		Miss1:          miss1,
		Miss2:          miss2,
		Bytes:          numBytes,
		Elapsed:        elapsed,
		ThroughputMBps: throughput,
	}, nil
}

// Log reports a Result through logrus at info level, the way the bench
// command surfaces every sweep point.
func (r Result) Log() {
	logrus.Infof("%s", r.String())
}

func (r Result) String() string {
	return fmt.Sprintf("numDisk=%d miss=(%d,%d) bytes=%d elapsed=%s throughput=%.2fMB/s",
		r.NumDisk, r.Miss1, r.Miss2, r.Bytes, r.Elapsed, r.ThroughputMBps)
}

// Sweep runs Run once per (miss1, miss2) pair with 0 <= miss1 <= miss2
// < numDisk against a freshly cloned copy of block for each pair, the
// same full-table walk TestRecover_FullSweep exercises for
// correctness, used here for throughput instead.
func Sweep(e *raid6.Engine, block [][]byte, numBytes, numDisk int) ([]Result, error) {
	results := make([]Result, 0, numDisk*(numDisk+1)/2)
	for m1 := 0; m1 < numDisk; m1++ {
		for m2 := m1; m2 < numDisk; m2++ {
			trial := cloneBlock(block)
			for i := range trial[m1] {
				trial[m1][i] = 0
			}
			for i := range trial[m2] {
				trial[m2][i] = 0
			}
			res, err := Run(e, trial, numBytes, numDisk, m1, m2)
			if err != nil {
				return nil, fmt.Errorf("bench: recover(%d,%d,%d): %w", numDisk, m1, m2, err)
			}
			results = append(results, res)
		}
	}
	return results, nil
}

func cloneBlock(block [][]byte) [][]byte {
	out := make([][]byte, len(block))
	for i, d := range block {
		out[i] = append([]byte(nil), d...)
	}
	return out
}
