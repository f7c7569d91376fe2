// Package rsverify independently cross-checks the erasure patterns
// raid6 recovers from by re-encoding the same logical data with a
// Reed-Solomon codec carrying matching data/parity shard counts and
// confirming it tolerates the same two-disk loss. It never touches the
// core recovery path; it exists solely as a second, mathematically
// unrelated witness in raid6's own tests.
package rsverify

import (
	"fmt"

	"github.com/klauspost/reedsolomon"
)

// Verifier drives an independent reedsolomon.Encoder over the same
// numDataShards/numParityShards split a raid6 block uses (numDisk-2
// data disks, 2 parity disks).
type Verifier struct {
	encoder reedsolomon.Encoder
}

// NewVerifier builds a Verifier for numDisk total disks (2 of which
// are parity, matching raid6's row+diagonal layout).
func NewVerifier(numDisk int) (*Verifier, error) {
	if numDisk < 3 {
		return nil, fmt.Errorf("rsverify: numDisk must be >= 3, got %d", numDisk)
	}
	enc, err := reedsolomon.New(numDisk-2, 2)
	if err != nil {
		return nil, fmt.Errorf("rsverify: building encoder: %w", err)
	}
	return &Verifier{encoder: enc}, nil
}

// EncodeShards splits data into numDisk-2 data shards of shardSize
// bytes each (zero-padded) and computes the 2 parity shards.
func (v *Verifier) EncodeShards(data []byte, shardSize, numDisk int) ([][]byte, error) {
	shards := make([][]byte, numDisk)
	for i := 0; i < numDisk-2; i++ {
		shards[i] = make([]byte, shardSize)
		start := i * shardSize
		if start < len(data) {
			copy(shards[i], data[start:])
		}
	}
	for i := numDisk - 2; i < numDisk; i++ {
		shards[i] = make([]byte, shardSize)
	}
	if err := v.encoder.Encode(shards); err != nil {
		return nil, fmt.Errorf("rsverify: encode: %w", err)
	}
	return shards, nil
}

// ConfirmRecoverable reports whether the codec can reconstruct shards
// after miss1 and miss2 are erased, independently confirming the same
// two-disk loss raid6.Recover just handled.
func (v *Verifier) ConfirmRecoverable(shards [][]byte, miss1, miss2 int) error {
	trial := make([][]byte, len(shards))
	copy(trial, shards)
	trial[miss1] = nil
	if miss2 != miss1 {
		trial[miss2] = nil
	}
	if err := v.encoder.Reconstruct(trial); err != nil {
		return fmt.Errorf("rsverify: reconstruct: %w", err)
	}
	for i, shard := range shards {
		if string(trial[i]) != string(shard) {
			return fmt.Errorf("rsverify: shard %d diverged after reconstruct", i)
		}
	}
	return nil
}
