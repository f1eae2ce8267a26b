package escpos

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferWrite(t *testing.T) {
	var dst bytes.Buffer
	b := newBuffer(&dst)

	n, err := b.Write([]byte{0x01, 0x02})
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = b.Write(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	// Nothing reaches the destination before Flush.
	assert.Empty(t, dst.Bytes())
	assert.NoError(t, b.Flush())
	assert.Equal(t, []byte{0x01, 0x02}, dst.Bytes())
}

func TestBufferWriteString(t *testing.T) {
	var dst bytes.Buffer
	b := newBuffer(&dst)

	n, err := b.WriteString("abc")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, b.Flush())
	assert.Equal(t, "abc", dst.String())
}

func TestBufferWriteIntegers(t *testing.T) {
	var dst bytes.Buffer
	b := newBuffer(&dst)

	assert.NoError(t, b.WriteUInt8(0xAB))
	assert.NoError(t, b.WriteUInt16LE(0x1234))
	assert.NoError(t, b.Flush())
	assert.Equal(t, []byte{0xAB, 0x34, 0x12}, dst.Bytes())
}
