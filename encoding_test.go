package escpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeTextGB18030(t *testing.T) {
	out, err := encodeText("中文", "GB18030")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xD6, 0xD0, 0xCE, 0xC4}, out)
}

func TestEncodeTextCP850(t *testing.T) {
	out, err := encodeText("café", "CP850")
	assert.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0x82}, out)
}

func TestEncodeTextUTF8Passthrough(t *testing.T) {
	out, err := encodeText("中文", "UTF-8")
	assert.NoError(t, err)
	assert.Equal(t, []byte("中文"), out)
}

func TestEncodeTextASCIIUnchanged(t *testing.T) {
	for _, codec := range []string{"GB18030", "CP437", "SHIFTJIS", "ISO88591"} {
		out, err := encodeText("receipt 123", codec)
		assert.NoError(t, err)
		assert.Equal(t, []byte("receipt 123"), out, codec)
	}
}

func TestEncodeTextUnsupported(t *testing.T) {
	_, err := encodeText("x", "KLINGON")
	assert.Error(t, err)
}

func TestNormalizeCodec(t *testing.T) {
	assert.Equal(t, "SHIFTJIS", normalizeCodec("Shift_JIS"))
	assert.Equal(t, "SHIFTJIS", normalizeCodec("shift-jis"))
	assert.Equal(t, "GB18030", normalizeCodec("gb 18030"))
	assert.Equal(t, "UTF8", normalizeCodec("utf-8"))
}
