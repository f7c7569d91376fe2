package raid6

import "sync"

// CheckInput validates a recover() call's arguments without mutating
// any buffer, per spec.md §4.5 step 1 / §7. Recover calls this
// internally; exposed separately so callers can pre-validate (e.g.
// before allocating a reconstruction target) the way the reference
// library's check_input is a standalone entry point.
func (e *Engine) CheckInput(block [][]byte, numBytes, numDisk, miss1, miss2 int) error {
	if numDisk < 3 || numDisk > e.MaxDisks {
		return ErrInvalidDiskNum
	}
	if miss1 < 0 || miss1 >= numDisk {
		return ErrInvalidMissIdx
	}
	if miss2 < 0 || miss2 >= numDisk {
		return ErrInvalidMissIdx
	}
	stripeBytes := (e.Prime - 1) * wordSize
	if numBytes <= 0 || numBytes%stripeBytes != 0 {
		return ErrSizeNotAligned
	}
	if block == nil {
		return ErrNullBlockPointer
	}
	if len(block) != numDisk {
		return ErrNullBlockPointer
	}
	for _, disk := range block {
		if disk == nil || len(disk) < numBytes {
			return ErrNullBlockPointer
		}
		if !isWordAligned(disk[:numBytes]) {
			return ErrBufferNotAligned
		}
	}
	return nil
}

// Recover reconstructs the disks at miss1 and miss2 (equal values mean
// a single missing disk) in place from the survivors in block, per
// spec.md §4.5. All validation happens before any buffer is touched, so
// a non-nil error leaves every buffer unchanged.
func (e *Engine) Recover(block [][]byte, numBytes, numDisk, miss1, miss2 int) error {
	if err := e.CheckInput(block, numBytes, numDisk, miss1, miss2); err != nil {
		return err
	}

	// The three-step swap the reference implementation gets wrong
	// (it self-assigns missingDisk2 = missingDisk1 after overwriting
	// missingDisk1, losing the original value). spec.md §9 requires
	// the corrected swap.
	if miss1 > miss2 {
		miss1, miss2 = miss2, miss1
	}

	if numDisk == 3 {
		recoverThreeDisk(block, numBytes, miss1, miss2)
		return nil
	}

	e.ensureTable()
	handler := e.table[numDisk-3][miss1][miss2]
	if handler == nil {
		return ErrFail
	}

	words := make([][]T, numDisk)
	for i, disk := range block {
		words[i] = wordsView(disk[:numBytes])
	}
	handler(words, e.Prime, numDisk)
	return nil
}

// recoverThreeDisk handles the degenerate D=3 case: with one data disk
// and two parity disks, every stripe is self-replicating (data = row =
// diagonal), so any missing pair is repaired by copying the lone
// survivor. The survivor-selection order (prefer 0, else 2, else 1)
// matches original_source/raid6_lib/raid6.cpp's recover().
func recoverThreeDisk(block [][]byte, numBytes, miss1, miss2 int) {
	var notMissing int
	if miss1 > 0 {
		notMissing = 0
	} else if miss2 < 2 {
		notMissing = 2
	} else {
		notMissing = 1
	}
	copy(block[miss1][:numBytes], block[notMissing][:numBytes])
	copy(block[miss2][:numBytes], block[notMissing][:numBytes])
}

// DefaultPrime and DefaultMaxDisks are the reference library's
// compile-time configuration (raid6_config.hpp: ePrime=17,
// eSupportDiskNum=8).
const (
	DefaultPrime    = 17
	DefaultMaxDisks = 8
)

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// DefaultEngine returns the process-wide Engine for the reference
// configuration (P=17, maxDisks=8), constructing it exactly once.
func DefaultEngine() *Engine {
	defaultEngineOnce.Do(func() {
		e, err := NewEngine(DefaultPrime, DefaultMaxDisks)
		if err != nil {
			// DefaultPrime/DefaultMaxDisks are compile-time constants
			// known to be valid; a failure here means the constants
			// themselves were changed incorrectly.
			panic(err)
		}
		defaultEngine = e
	})
	return defaultEngine
}

// CheckInput validates against the default (P=17, maxDisks=8) engine.
func CheckInput(block [][]byte, numBytes, numDisk, miss1, miss2 int) error {
	return DefaultEngine().CheckInput(block, numBytes, numDisk, miss1, miss2)
}

// Recover reconstructs disks against the default (P=17, maxDisks=8)
// engine.
func Recover(block [][]byte, numBytes, numDisk, miss1, miss2 int) error {
	return DefaultEngine().Recover(block, numBytes, numDisk, miss1, miss2)
}
