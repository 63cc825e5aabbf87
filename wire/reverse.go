// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// ReverseBuffer is a byte buffer that grows toward the front.
//
// Encoding a message back to front lets every length prefix be written after
// the content it measures, so a whole message is produced in one pass without
// computing nested sizes first. The zero value is an empty buffer ready to use.
type ReverseBuffer struct {
	buf   []byte
	start int // live bytes are buf[start:]
}

// Len reports the number of bytes written so far.
func (rb *ReverseBuffer) Len() int { return len(rb.buf) - rb.start }

// Bytes returns the written bytes. The slice aliases the buffer and is only
// valid until the next write.
func (rb *ReverseBuffer) Bytes() []byte { return rb.buf[rb.start:] }

// Reset empties the buffer, retaining its storage.
func (rb *ReverseBuffer) Reset() { rb.start = len(rb.buf) }

// Prepend writes p in front of the current contents.
func (rb *ReverseBuffer) Prepend(p []byte) {
	rb.reserve(len(p))
	rb.start -= len(p)
	copy(rb.buf[rb.start:], p)
}

// PrependByte writes c in front of the current contents.
func (rb *ReverseBuffer) PrependByte(c byte) {
	rb.reserve(1)
	rb.start--
	rb.buf[rb.start] = c
}

// reserve ensures there is room for n more bytes in front of start.
func (rb *ReverseBuffer) reserve(n int) {
	if rb.start >= n {
		return
	}
	live := rb.Len()
	size := 2 * len(rb.buf)
	if size < live+n {
		size = live + n
	}
	if size < 64 {
		size = 64
	}
	buf := make([]byte, size)
	copy(buf[size-live:], rb.buf[rb.start:])
	rb.buf = buf
	rb.start = size - live
}
