package escpos

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTCPServer starts a local listener and serves each connection with
// handler.
func mockTCPServer(t *testing.T, handler func(net.Conn)) (string, func()) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go handler(conn)
		}
	}()

	return listener.Addr().String(), func() { listener.Close() }
}

func echoHandler(conn net.Conn) {
	defer conn.Close()
	buf := make([]byte, 1024)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		conn.Write(buf[:n])
	}
}

func TestNewNetworkPrinter(t *testing.T) {
	addr, cleanup := mockTCPServer(t, echoHandler)
	defer cleanup()

	printer, err := NewNetworkPrinter(addr)
	require.NoError(t, err)
	defer printer.Close()

	data := []byte("Hello, Printer!")
	n, err := printer.Write(data)
	assert.NoError(t, err)
	assert.Equal(t, len(data), n)

	readBuf := make([]byte, len(data))
	n, err = printer.Read(readBuf)
	assert.NoError(t, err)
	assert.Equal(t, data, readBuf[:n])
}

func TestNetworkPrinterInvalidAddress(t *testing.T) {
	_, err := NewNetworkPrinter("invalid:99999")
	assert.Error(t, err)
}

func TestNetworkPrinterReadTimeout(t *testing.T) {
	addr, cleanup := mockTCPServer(t, func(conn net.Conn) {
		defer conn.Close()
		// Never answer.
		time.Sleep(1 * time.Second)
	})
	defer cleanup()

	printer, err := NewNetworkPrinter(addr, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)
	defer printer.Close()

	buf := make([]byte, 16)
	_, err = printer.Read(buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestNetworkPrinterReadTimeoutPriority(t *testing.T) {
	addr, cleanup := mockTCPServer(t, func(conn net.Conn) {
		defer conn.Close()
		time.Sleep(1 * time.Second)
	})
	defer cleanup()

	// The read-specific timeout wins over the shared one.
	printer, err := NewNetworkPrinter(addr,
		WithTimeout(500*time.Millisecond),
		WithReadTimeout(50*time.Millisecond))
	require.NoError(t, err)
	defer printer.Close()

	start := time.Now()
	buf := make([]byte, 16)
	_, err = printer.Read(buf)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 250*time.Millisecond)
}

func TestNetworkPrinterTimeoutRecurs(t *testing.T) {
	addr, cleanup := mockTCPServer(t, echoHandler)
	defer cleanup()

	printer, err := NewNetworkPrinter(addr, WithTimeout(1*time.Second))
	require.NoError(t, err)
	defer printer.Close()

	// The deadline is re-armed on every operation, so a sequence of
	// exchanges keeps working.
	for i := 0; i < 5; i++ {
		data := []byte{byte('0' + i)}
		_, err := printer.Write(data)
		require.NoError(t, err)

		readBuf := make([]byte, 1)
		n, err := printer.Read(readBuf)
		require.NoError(t, err)
		assert.Equal(t, data, readBuf[:n])
	}
}

func TestSessionOverNetwork(t *testing.T) {
	received := make(chan []byte, 1)
	addr, cleanup := mockTCPServer(t, func(conn net.Conn) {
		defer conn.Close()
		buf := make([]byte, 1024)
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		received <- buf[:n]
	})
	defer cleanup()

	printer, err := NewNetworkPrinter(addr, WithConnectTimeout(time.Second))
	require.NoError(t, err)
	defer printer.Close()

	p := New(printer)
	_, err = p.Text("hello")
	require.NoError(t, err)
	require.NoError(t, p.Print())

	select {
	case data := <-received:
		assert.Equal(t, []byte("hello\n"), data)
	case <-time.After(time.Second):
		t.Fatal("printer never received the stream")
	}
}
