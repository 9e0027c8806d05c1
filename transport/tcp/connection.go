package tcp

import (
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"
)

// Connection - one peer socket. Frames are queued by Send and written by a single writer goroutine.
type Connection struct {
	id           string
	conn         net.Conn
	logger       *slog.Logger
	writeTimeout time.Duration

	mu     sync.Mutex
	closed bool
	outbox chan []byte
}

func newConnection(logger *slog.Logger, id string, conn net.Conn, queueSize int, writeTimeout time.Duration) *Connection {
	return &Connection{
		id:           id,
		conn:         conn,
		logger:       logger.With("peer", id, "remote", conn.RemoteAddr().String()),
		writeTimeout: writeTimeout,

		outbox: make(chan []byte, queueSize),
	}
}

func (that *Connection) ID() string {
	return that.id
}

// Send - queues a frame without blocking. Returns false when the queue is full or the connection is closed.
func (that *Connection) Send(frame []byte) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return false
	}

	select {
	case that.outbox <- frame:
		return true
	default:
		return false
	}
}

// Close - stops accepting frames. Already queued frames are still written before the socket is closed.
func (that *Connection) Close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return nil
	}

	that.closed = true
	close(that.outbox)

	return nil
}

func (that *Connection) writeLoop() {
	log := that.logger.With("method", "writeLoop")

	defer func() {
		if err := that.conn.Close(); err != nil {
			log.Debug("failed to close connection", "error", err)
		}
	}()

	for frame := range that.outbox {
		if err := that.write(frame); err != nil {
			log.Error("failed to send frame", "error", err)
			_ = that.Close()
			return
		}
	}
}

func (that *Connection) write(frame []byte) error {
	if err := that.conn.SetWriteDeadline(time.Now().Add(that.writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if _, err := that.conn.Write(frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}
