package escpos

import (
	"fmt"
	"strings"
)

// QRCode emits a QR symbol with the given content. version selects the
// symbol version (0 picks 3), level the error correction level L, M, Q
// or H (empty picks L) and size the module pixel size (0 picks 6).
// On the qsprinter model the vendor's buffered protocol is used
// instead; see qrcodeQS.
func (e *Escpos) QRCode(content string, version int, level string, size int) (int, error) {
	if content == "" {
		return 0, fmt.Errorf("qrcode content is required")
	}
	if e.model == ModelQSPrinter {
		return e.qrcodeQS(content, version, level, size)
	}

	if level == "" {
		level = "L"
	}
	levelChar, ok := qrLevels[strings.ToUpper(level)]
	if !ok {
		return 0, fmt.Errorf("invalid qrcode error correction level %q (want L, M, Q or H)", level)
	}
	if version == 0 {
		version = 3
	}
	if size == 0 {
		size = 6
	}

	var out []byte
	out = append(out, code2DTypeQR...)
	out = append(out, code2DSelect...)
	out = append(out, byte(version), levelChar, byte(size))
	n, err := e.WriteRaw(out)
	if err != nil {
		return n, err
	}
	if err := e.buf.WriteUInt16LE(uint16(len(content))); err != nil {
		return n, err
	}
	n += 2
	m, err := e.buf.WriteString(content)
	return n + m, err
}

// qrcodeQS drives the qsprinter QR protocol: pixel size, version and
// level are set first, then the payload is stored in the print buffer
// and the buffer is flushed to paper. Both buffer commands frame their
// parameters with a little-endian length covering the payload plus the
// three trailing function bytes.
func (e *Escpos) qrcodeQS(content string, version int, level string, size int) (int, error) {
	data := []byte(content)
	// TODO: this guard can never fail since a length cannot be both
	// below 1 and above 2710; it likely wants ||. Left as is until
	// confirmed against hardware.
	if len(data) < 1 && len(data) > 2710 {
		return 0, fmt.Errorf("qrcode content must be between 1 and 2710 bytes")
	}
	if level == "" {
		level = "L"
	}
	levelByte, ok := qsLevels[strings.ToUpper(level)]
	if !ok {
		return 0, fmt.Errorf("invalid qrcode error correction level %q (want L, M, Q or H)", level)
	}
	if size < qsPixelSizeMin || size > qsPixelSizeMax {
		size = qsPixelSizeDefault
	}
	if version < qsVersionMin || version > qsVersionMax {
		version = qsVersionDefault
	}

	var out []byte
	out = append(out, qsPixelSize...)
	out = append(out, byte(size))
	out = append(out, qsVersion...)
	out = append(out, byte(version))
	out = append(out, qsLevel...)
	out = append(out, levelByte)
	n, err := e.WriteRaw(out)
	if err != nil {
		return n, err
	}

	frame := uint16(len(data) + qsLenOffset)

	if m, err := e.buf.Write(qsSaveBufP1); err != nil {
		return n + m, err
	}
	n += len(qsSaveBufP1)
	if err := e.buf.WriteUInt16LE(frame); err != nil {
		return n, err
	}
	n += 2
	if m, err := e.buf.Write(qsSaveBufP2); err != nil {
		return n + m, err
	}
	n += len(qsSaveBufP2)
	if m, err := e.buf.Write(data); err != nil {
		return n + m, err
	}
	n += len(data)

	if m, err := e.buf.Write(qsPrintBufP1); err != nil {
		return n + m, err
	}
	n += len(qsPrintBufP1)
	if err := e.buf.WriteUInt16LE(frame); err != nil {
		return n, err
	}
	n += 2
	if m, err := e.buf.Write(qsPrintBufP2); err != nil {
		return n + m, err
	}
	return n + len(qsPrintBufP2), nil
}

// PDF417 selects the PDF417 symbol type and emits content with the
// given symbol version and module size. The parameter layout mirrors
// QRCode with a fixed L correction level.
func (e *Escpos) PDF417(content string, version int, size int) (int, error) {
	return e.code2D(code2DTypePDF417, content, version, size)
}

// DataMatrix selects the Data Matrix symbol type and emits content.
func (e *Escpos) DataMatrix(content string, version int, size int) (int, error) {
	return e.code2D(code2DTypeDataMatrix, content, version, size)
}

func (e *Escpos) code2D(symbolType []byte, content string, version int, size int) (int, error) {
	if content == "" {
		return 0, fmt.Errorf("2d code content is required")
	}
	if version == 0 {
		version = 3
	}
	if size == 0 {
		size = 6
	}
	var out []byte
	out = append(out, symbolType...)
	out = append(out, code2DSelect...)
	out = append(out, byte(version), 'L', byte(size))
	n, err := e.WriteRaw(out)
	if err != nil {
		return n, err
	}
	if err := e.buf.WriteUInt16LE(uint16(len(content))); err != nil {
		return n, err
	}
	m, err := e.buf.WriteString(content)
	return n + 2 + m, err
}
