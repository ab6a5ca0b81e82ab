package base

import (
	"bytes"
	"net"
	"testing"
)

// pipe returns both ends of an in-memory connection
func pipe(t *testing.T) (net.Conn, net.Conn) {
	t.Helper()
	a, b := net.Pipe()
	t.Cleanup(func() {
		a.Close()
		b.Close()
	})
	return a, b
}

func TestFrameRoundTrip(t *testing.T) {
	client, server := pipe(t)

	payload := []byte("payload with some length")

	go func() {
		_ = writeFrame(client, 42, payload)
	}()

	requestID, data, err := readFrame(server, nil)
	if err != nil {
		t.Fatalf("readFrame failed: %v", err)
	}
	if requestID != 42 {
		t.Errorf("Expected requestID 42, got %d", requestID)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Payload mismatch: expected %q, got %q", payload, data)
	}
}

func TestFrameEmptyPayload(t *testing.T) {
	client, server := pipe(t)

	go func() {
		_ = writeFrame(client, 7, nil)
	}()

	requestID, data, err := readFrame(server, nil)
	if err != nil {
		t.Fatalf("readFrame failed: %v", err)
	}
	if requestID != 7 {
		t.Errorf("Expected requestID 7, got %d", requestID)
	}
	if len(data) != 0 {
		t.Errorf("Expected empty payload, got %d bytes", len(data))
	}
}

func TestFrameGrowsSmallBuffer(t *testing.T) {
	client, server := pipe(t)

	// payload larger than the provided buffer
	payload := make([]byte, 256)
	for i := range payload {
		payload[i] = byte(i)
	}

	go func() {
		_ = writeFrame(client, 1, payload)
	}()

	_, data, err := readFrame(server, make([]byte, 16))
	if err != nil {
		t.Fatalf("readFrame failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Payload mismatch after buffer growth")
	}
}

func TestFramePipelining(t *testing.T) {
	client, server := pipe(t)

	// several frames back to back on one connection
	go func() {
		for i := uint64(1); i <= 5; i++ {
			_ = writeFrame(client, i, []byte{byte(i)})
		}
	}()

	for i := uint64(1); i <= 5; i++ {
		requestID, data, err := readFrame(server, nil)
		if err != nil {
			t.Fatalf("readFrame %d failed: %v", i, err)
		}
		if requestID != i {
			t.Errorf("Expected requestID %d, got %d", i, requestID)
		}
		if len(data) != 1 || data[0] != byte(i) {
			t.Errorf("Unexpected payload for frame %d: %v", i, data)
		}
	}
}
