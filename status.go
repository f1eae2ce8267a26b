package escpos

import (
	"fmt"
	"io"
)

// Real-time status request types for DLE EOT n.
const (
	StatusPrinter     = 1
	StatusOffline     = 2
	StatusError       = 3
	StatusPaperSensor = 4
)

// QueryStatus sends a real-time status request and reads back the
// single status byte. The destination must support reads; network
// printers do, a plain file does not. An empty slice with a nil error
// means the printer did not answer before the read returned.
func (e *Escpos) QueryStatus(statusType int) ([]byte, error) {
	if statusType < StatusPrinter || statusType > StatusPaperSensor {
		return nil, fmt.Errorf("invalid status type %d (want 1 to 4)", statusType)
	}
	r, ok := e.dst.(io.Reader)
	if !ok {
		return nil, fmt.Errorf("destination does not support status queries")
	}
	if _, err := e.WriteRaw([]byte{dle, 0x04, byte(statusType)}); err != nil {
		return nil, err
	}
	if err := e.Print(); err != nil {
		return nil, err
	}

	data := make([]byte, 1)
	n, err := r.Read(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read printer status: %w", err)
	}
	return data[:n], nil
}

// IsOnline reports whether the printer answers and its offline bit is
// clear.
func (e *Escpos) IsOnline() (bool, error) {
	status, err := e.QueryStatus(StatusPrinter)
	if err != nil {
		return false, err
	}
	if len(status) == 0 {
		return false, nil
	}
	return status[0]&0x08 == 0, nil
}

// PaperStatus reports the paper sensor state: 0 when paper is out, 1
// when the paper is near the end, 2 when paper is adequate.
func (e *Escpos) PaperStatus() (int, error) {
	status, err := e.QueryStatus(StatusPaperSensor)
	if err != nil {
		return 0, err
	}
	if len(status) == 0 {
		return 2, nil
	}
	if status[0]&0x60 == 0x60 {
		return 0, nil
	}
	if status[0]&0x0C == 0x0C {
		return 1, nil
	}
	return 2, nil
}
