package escpos

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Buffer is the append-only sink every command fragment is written into.
// It wraps a bufio.Writer so small fragments coalesce before they reach
// the transport; nothing is ever read back or rewound.
type Buffer struct {
	w *bufio.Writer
}

func newBuffer(w io.Writer) *Buffer {
	return &Buffer{w: bufio.NewWriter(w)}
}

// Write appends p unmodified.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return b.w.Write(p)
}

// WriteString appends s unmodified.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.w.WriteString(s)
}

// WriteUInt8 appends a single unsigned byte.
func (b *Buffer) WriteUInt8(v uint8) error {
	return b.w.WriteByte(v)
}

// WriteUInt16LE appends v as two bytes, least significant first.
func (b *Buffer) WriteUInt16LE(v uint16) error {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	_, err := b.w.Write(tmp[:])
	return err
}

// Flush pushes everything buffered so far to the underlying writer.
func (b *Buffer) Flush() error {
	return b.w.Flush()
}
