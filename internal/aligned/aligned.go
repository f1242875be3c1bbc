// Package aligned provides heap buffers whose first byte sits on a requested
// power-of-two boundary, with explicit release.
package aligned

import (
	"errors"
	"fmt"
	"math/bits"
	"unsafe"
)

// maxAlloc bounds size+align below the runtime's slice length limit.
const maxAlloc = 1<<min(bits.UintSize-1, 47) - 1

var (
	// ErrInvalidAlignment is returned for an alignment that is not a positive power of two.
	ErrInvalidAlignment = errors.New("alignment must be a positive power of two")
	// ErrInvalidSize is returned for a negative size.
	ErrInvalidSize      = errors.New("size must not be negative")
	// ErrTooLarge is returned when size plus alignment padding cannot be allocated.
	ErrTooLarge         = errors.New("size too large")
)

// Buffer is an aligned byte buffer. It must be released with Close.
type Buffer struct {
	raw   []byte // backing allocation, over-sized by align bytes
	buf   []byte // aligned window into raw
	addr  uintptr
	align int
}

// New allocates a zeroed buffer of size bytes aligned to align.
func New(size, align int) (*Buffer, error) {
	if align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("aligned.New: %w: %d", ErrInvalidAlignment, align)
	}
	if size < 0 {
		return nil, fmt.Errorf("aligned.New: %w: %d", ErrInvalidSize, size)
	}
	if size > maxAlloc-align {
		return nil, fmt.Errorf("aligned.New: %w: %d", ErrTooLarge, size)
	}

	// The Go heap does not move objects, so the offset computed here stays valid.
	raw := make([]byte, size+align)
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := offset(base, align)

	return &Buffer{
		raw:   raw,
		buf:   raw[off : off+size : off+size],
		addr:  base + uintptr(off),
		align: align,
	}, nil
}

// offset returns how many bytes to skip from addr to reach the next multiple of align.
func offset(addr uintptr, align int) int {
	a := uintptr(align)
	return int((a - addr%a) % a)
}

// With acquires a buffer, passes it to fn and releases it on every return path.
func With(size, align int, fn func(b []byte) error) error {
	b, err := New(size, align)
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(b.Bytes())
}

// Bytes returns the aligned window. It is nil once the buffer is closed.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.buf
}

// Addr returns the address of the first aligned byte, or 0 after Close.
func (b *Buffer) Addr() uintptr {
	if b == nil || b.raw == nil {
		return 0
	}
	return b.addr
}

// Align returns the requested alignment in bytes.
func (b *Buffer) Align() int { return b.align }

// Len returns the usable size, 0 after Close.
func (b *Buffer) Len() int { return len(b.Bytes()) }

// Closed reports whether Close has been called.
func (b *Buffer) Closed() bool { return b == nil || b.raw == nil }

// Close drops the backing allocation so the collector can reclaim it.
// Calling Close more than once is a no-op.
func (b *Buffer) Close() error {
	if b == nil {
		return nil
	}
	b.raw, b.buf, b.addr = nil, nil, 0
	return nil
}
