package raid6

import "fmt"

// Status mirrors the EnumLibErrorCode status codes of the reference
// library. The zero value is StatusOK.
type Status int

const (
	StatusOK Status = iota
	StatusInvalidDiskNum
	StatusInvalidMissIdx
	StatusNullBlockPointer
	StatusBufferNotAligned
	StatusSizeNotAligned
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusInvalidDiskNum:
		return "InvalidDiskNum"
	case StatusInvalidMissIdx:
		return "InvalidMissIdx"
	case StatusNullBlockPointer:
		return "NullBlockPointer"
	case StatusBufferNotAligned:
		return "BufferNotAligned"
	case StatusSizeNotAligned:
		return "SizeNotAligned"
	case StatusFail:
		return "Fail"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// StatusError adapts a non-OK Status to the error interface so callers
// can both compare against the documented status codes and use it as a
// regular Go error.
type StatusError struct {
	Status Status
	Msg    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("raid6: %s: %s", e.Status, e.Msg)
}

// Is allows errors.Is(err, raid6.ErrInvalidDiskNum) and friends to work
// against a *StatusError returned from CheckInput/Recover.
func (e *StatusError) Is(target error) bool {
	other, ok := target.(*StatusError)
	if !ok {
		return false
	}
	return e.Status == other.Status
}

// Sentinel errors, one per non-OK status, for errors.Is comparisons.
var (
	ErrInvalidDiskNum   = &StatusError{StatusInvalidDiskNum, "numDisk out of [3, maxDisks] range"}
	ErrInvalidMissIdx   = &StatusError{StatusInvalidMissIdx, "miss1/miss2 out of [0, numDisk) range"}
	ErrNullBlockPointer = &StatusError{StatusNullBlockPointer, "block is nil, has the wrong disk count, or a disk slice is nil or shorter than numBytes"}
	ErrBufferNotAligned = &StatusError{StatusBufferNotAligned, "disk buffer not aligned to sizeof(T)"}
	ErrSizeNotAligned   = &StatusError{StatusSizeNotAligned, "numBytes must be a positive multiple of (P-1)*sizeof(T)"}
	ErrFail             = &StatusError{StatusFail, "dispatch table miss (internal inconsistency)"}
)
