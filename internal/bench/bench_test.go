package bench_test

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/Anthya1104/evenodd-raid6/internal/bench"
	"github.com/Anthya1104/evenodd-raid6/internal/raid6"
	"github.com/stretchr/testify/assert"
)

func primedBlock(t *testing.T, e *raid6.Engine, numDisk, numStripes int) ([][]byte, int) {
	t.Helper()
	numBytes := numStripes * (e.Prime - 1) * 8
	block := make([][]byte, numDisk)
	for x := range block {
		block[x] = make([]byte, numBytes)
	}
	rng := rand.New(rand.NewSource(9))
	for x := 2; x < numDisk; x++ {
		for i := 0; i < numBytes; i += 8 {
			binary.LittleEndian.PutUint64(block[x][i:i+8], rng.Uint64())
		}
	}
	assert.Nil(t, e.Recover(block, numBytes, numDisk, 0, 1))
	return block, numBytes
}

func TestRun(t *testing.T) {
	e, err := raid6.NewEngine(17, 8)
	assert.Nil(t, err)
	block, numBytes := primedBlock(t, e, 5, 2)

	for i := range block[2] {
		block[2][i] = 0
	}
	res, err := bench.Run(e, block, numBytes, 5, 2, 2)
	assert.Nil(t, err)
	assert.Equal(t, 5, res.NumDisk)
	assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
	assert.NotEmpty(t, res.String())
}

func TestSweep(t *testing.T) {
	e, err := raid6.NewEngine(17, 8)
	assert.Nil(t, err)
	block, numBytes := primedBlock(t, e, 4, 1)

	results, err := bench.Sweep(e, block, numBytes, 4)
	assert.Nil(t, err)
	assert.Equal(t, 4*5/2, len(results))
}
