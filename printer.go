package escpos

import (
	"fmt"
	"net"
	"time"
)

// Printer is the transport a session writes its command stream to.
// Read is used for status queries on transports that support them.
type Printer interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Close() error
}

type networkPrinter struct {
	conn           net.Conn
	timeout        time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	connectTimeout time.Duration
}

// PrinterOption configures a network printer.
type PrinterOption func(*networkPrinter) error

// WithTimeout sets a timeout duration for all Read and Write operations.
func WithTimeout(d time.Duration) PrinterOption {
	return func(np *networkPrinter) error {
		np.timeout = d
		return nil
	}
}

// WithConnectTimeout sets the timeout for the initial connection.
func WithConnectTimeout(d time.Duration) PrinterOption {
	return func(np *networkPrinter) error {
		np.connectTimeout = d
		return nil
	}
}

// WithReadTimeout sets the timeout for Read operations, overriding
// WithTimeout for reads.
func WithReadTimeout(d time.Duration) PrinterOption {
	return func(np *networkPrinter) error {
		np.readTimeout = d
		return nil
	}
}

// WithWriteTimeout sets the timeout for Write operations, overriding
// WithTimeout for writes.
func WithWriteTimeout(d time.Duration) PrinterOption {
	return func(np *networkPrinter) error {
		np.writeTimeout = d
		return nil
	}
}

// NewNetworkPrinter connects to a printer listening on a TCP address,
// usually port 9100.
func NewNetworkPrinter(address string, opts ...PrinterOption) (Printer, error) {
	np := &networkPrinter{}
	for _, opt := range opts {
		if err := opt(np); err != nil {
			return nil, err
		}
	}

	var conn net.Conn
	var err error
	if np.connectTimeout > 0 {
		d := net.Dialer{Timeout: np.connectTimeout}
		conn, err = d.Dial("tcp", address)
	} else {
		conn, err = net.Dial("tcp", address)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to printer at %s: %w", address, err)
	}

	np.conn = conn
	return np, nil
}

// deadline resolves the per-operation timeout, falling back to the
// shared one.
func (np *networkPrinter) deadline(specific time.Duration) time.Time {
	d := specific
	if d <= 0 {
		d = np.timeout
	}
	if d <= 0 {
		return time.Time{}
	}
	return time.Now().Add(d)
}

func (np *networkPrinter) Read(p []byte) (n int, err error) {
	if t := np.deadline(np.readTimeout); !t.IsZero() {
		if err = np.conn.SetReadDeadline(t); err != nil {
			return 0, err
		}
	}
	return np.conn.Read(p)
}

func (np *networkPrinter) Write(p []byte) (n int, err error) {
	if t := np.deadline(np.writeTimeout); !t.IsZero() {
		if err = np.conn.SetWriteDeadline(t); err != nil {
			return 0, err
		}
	}
	return np.conn.Write(p)
}

func (np *networkPrinter) Close() error {
	return np.conn.Close()
}
