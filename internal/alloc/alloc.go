// Package alloc provides page-aligned disk buffers for callers that
// need to satisfy raid6's BufferNotAligned precondition without hand
// rolling their own alignment arithmetic.
package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// AlignedBuffer is a word-aligned byte buffer backed by an anonymous
// mmap region. Free must be called once the buffer is no longer
// needed to release the mapping.
type AlignedBuffer struct {
	bytes []byte
}

// NewAlignedBuffer mmaps a private, anonymous region of at least size
// bytes. The kernel guarantees page alignment, which is always a
// multiple of sizeof(uint64), satisfying raid6's word-alignment
// requirement for any size.
func NewAlignedBuffer(size int) (*AlignedBuffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("alloc: size must be positive, got %d", size)
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("alloc: mmap %d bytes: %w", size, err)
	}
	return &AlignedBuffer{bytes: b}, nil
}

// Bytes returns the underlying buffer.
func (a *AlignedBuffer) Bytes() []byte {
	return a.bytes
}

// Free unmaps the buffer. The AlignedBuffer must not be used again
// afterward.
func (a *AlignedBuffer) Free() error {
	if a.bytes == nil {
		return nil
	}
	err := unix.Munmap(a.bytes)
	a.bytes = nil
	return err
}

// NewDiskSet allocates numDisk aligned buffers of size bytes each, the
// shape raid6.CheckInput/Recover expect for their block argument.
func NewDiskSet(numDisk, size int) ([][]byte, []*AlignedBuffer, error) {
	block := make([][]byte, numDisk)
	bufs := make([]*AlignedBuffer, numDisk)
	for i := 0; i < numDisk; i++ {
		b, err := NewAlignedBuffer(size)
		if err != nil {
			for j := 0; j < i; j++ {
				bufs[j].Free()
			}
			return nil, nil, err
		}
		bufs[i] = b
		block[i] = b.Bytes()
	}
	return block, bufs, nil
}

// FreeDiskSet releases every buffer in bufs, continuing past errors so
// a failure to unmap one disk doesn't leak the rest.
func FreeDiskSet(bufs []*AlignedBuffer) error {
	var firstErr error
	for _, b := range bufs {
		if err := b.Free(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
