// Package buffer implements little-endian encoding of 8-byte words on writers and
// readers that expose their internal buffers, as well as a fixed-size in-memory
// buffer satisfying both interfaces.
package buffer

import (
	"fmt"
	"io"
)

// Writer is a writer backed by an internal buffer that can be appended to in place.
// It is satisfied by *bufio.Writer and by *Buffer.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is a reader backed by an internal buffer that can be inspected in place.
// It is satisfied by *bufio.Reader and by *Buffer.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// Buffer is a fixed-capacity byte buffer. Writes append after the last written byte
// and fail once the capacity is exhausted, reads consume from the front.
type Buffer struct {
	data   []byte
	end    int // write offset
	offset int // read offset
}

// NewBuffer returns a Buffer reading the content of data.
// Writes on the returned Buffer overwrite data from its start.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewBufferSize returns an empty Buffer with the given capacity.
func NewBufferSize(size int) *Buffer {
	return NewBuffer(make([]byte, size))
}

// Write appends p to the buffer. It writes nothing and returns [io.ErrShortWrite]
// if p does not fit in the remaining capacity.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > b.Available() {
		return 0, fmt.Errorf("cannot Write: %d bytes > %d available: %w", len(p), b.Available(), io.ErrShortWrite)
	}
	n = copy(b.data[b.end:], p)
	b.end += n
	return
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return
}

// AvailableBuffer returns a zero-length slice over the unwritten capacity, valid until the next Write.
func (b *Buffer) AvailableBuffer() []byte {
	return b.data[b.end:b.end]
}

// Available returns the remaining write capacity in bytes.
func (b *Buffer) Available() int {
	return len(b.data) - b.end
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Read consumes up to len(p) bytes into p and returns [io.EOF] if fewer were available.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if n = copy(p, b.data[b.offset:]); n < len(p) {
		err = io.EOF
	}
	b.offset += n
	return
}

// Size returns the number of bytes left to read.
func (b *Buffer) Size() int {
	return len(b.data) - b.offset
}

// Peek returns the next n unread bytes without consuming them, or the remaining
// bytes and [io.EOF] if fewer than n are left.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if n > b.Size() {
		return b.data[b.offset:], io.EOF
	}
	return b.data[b.offset : b.offset+n], nil
}

// Discard consumes the next n bytes, or the remaining bytes and [io.EOF] if fewer than n are left.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if discarded = n; n > b.Size() {
		discarded, err = b.Size(), io.EOF
	}
	b.offset += discarded
	return
}
