// Package cursor implements sequential read access to a fully loaded byte stream.
package cursor

import "fmt"

// Cursor reads bytes from an immutable buffer. The read offset only ever moves
// forward and never passes the end of the buffer.
type Cursor struct {
	data   []byte
	offset int
}

// New returns a cursor positioned at the first byte of data.
// An empty buffer is valid and decodes to nothing.
func New(data []byte) *Cursor {
	return &Cursor{
		data: data,
	}
}

// HasMore returns whether unread bytes are left.
func (c *Cursor) HasMore() bool {
	return c.offset < len(c.data)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.offset
}

// Offset returns the index of the next byte to read.
func (c *Cursor) Offset() int {
	return c.offset
}

// Len returns the total size of the stream.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Next returns the byte at the current offset and advances by one.
// Callers have to check HasMore or Remaining first, reading past the end
// is a programming error and panics.
func (c *Cursor) Next() byte {
	if c.offset >= len(c.data) {
		panic(fmt.Sprintf("cursor: read past end of stream at offset %d (length %d)", c.offset, len(c.data)))
	}
	b := c.data[c.offset]
	c.offset++
	return b
}

// NextWord reads two bytes and returns them as a little endian word.
func (c *Cursor) NextWord() uint16 {
	low := uint16(c.Next())
	high := uint16(c.Next())
	return high<<8 | low
}

// Consumed returns the bytes read since the given start offset.
func (c *Cursor) Consumed(start int) []byte {
	return c.data[start:c.offset]
}
