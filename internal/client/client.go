package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/rocketscienceinc/boardnet/internal/protocol"
)

var ErrRejected = errors.New("host rejected the connection")

const (
	dialTimeout  = 10 * time.Second
	writeTimeout = 5 * time.Second
)

// Client - peer side of the synchronization channel.
type Client struct {
	logger *slog.Logger
	conn   net.Conn
}

func Dial(ctx context.Context, logger *slog.Logger, addr string) (*Client, error) {
	dialer := net.Dialer{Timeout: dialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to host %s: %w", addr, err)
	}

	return New(logger, conn), nil
}

func New(logger *slog.Logger, conn net.Conn) *Client {
	return &Client{
		logger: logger.With("component", "client"),
		conn:   conn,
	}
}

// Send - writes one frame to the host.
func (that *Client) Send(frame []byte) error {
	if err := that.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if _, err := that.conn.Write(frame); err != nil {
		return fmt.Errorf("failed to send frame: %w", err)
	}

	return nil
}

func (that *Client) Close() error {
	return that.conn.Close()
}

// ReadLoop - decodes GAME_DATA frames into updates until the connection ends.
// Returns ErrRejected when the host is full.
func (that *Client) ReadLoop(ctx context.Context, updates chan<- protocol.GameData) error {
	log := that.logger.With("method", "ReadLoop")

	scanner := bufio.NewScanner(that.conn)
	for scanner.Scan() {
		frame := scanner.Text()

		switch protocol.Tag(frame) {
		case protocol.TagReject:
			return ErrRejected
		case protocol.TagGameData:
		default:
			log.Debug("unknown frame", "frame", frame)
			continue
		}

		data, err := protocol.DecodeGameData(frame)
		if err != nil {
			log.Debug("malformed frame", "error", err)
			continue
		}

		select {
		case updates <- data:
		case <-ctx.Done():
			return nil
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("failed to read frame: %w", err)
	}

	return nil
}
