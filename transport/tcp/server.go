package tcp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/rocketscienceinc/boardnet/internal/pkg"
	"github.com/rocketscienceinc/boardnet/internal/protocol"
	"github.com/rocketscienceinc/boardnet/internal/usecase"
)

type session interface {
	Submit(ctx context.Context, event usecase.Event) error
}

type Options struct {
	MaxFrameSize  int
	SendQueueSize int
	WriteTimeout  time.Duration
}

type Server struct {
	logger  *slog.Logger
	session session
	options Options
}

func New(logger *slog.Logger, session session, options Options) *Server {
	return &Server{
		logger:  logger.With("component", "tcp"),
		session: session,
		options: options,
	}
}

// Start - listens on the port and serves peers until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return that.Serve(ctx, listener)
}

// Serve - accepts peers on the listener. The listener is closed when ctx is done.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	log := that.logger.With("method", "Serve")

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}

		if err := listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Error("failed to close listener", "error", err)
		}
	}()

	log.Info("accepting peers", "addr", listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("failed to accept connection: %w", err)
		}

		go that.handleConnection(ctx, conn)
	}
}

// handleConnection - reads frames from the peer until it goes away.
func (that *Server) handleConnection(ctx context.Context, conn net.Conn) {
	connection := newConnection(that.logger, pkg.GenerateNewSessionID(), conn, that.options.SendQueueSize, that.options.WriteTimeout)
	log := connection.logger.With("method", "handleConnection")

	go connection.writeLoop()

	log.Info("peer connected")

	if err := that.session.Submit(ctx, usecase.PeerJoined{Peer: connection}); err != nil {
		log.Error("failed to join session", "error", err)
		_ = connection.Close()
		return
	}

	defer func() {
		if err := that.session.Submit(ctx, usecase.PeerLeft{PeerID: connection.ID()}); err != nil {
			log.Debug("failed to leave session", "error", err)
		}
		_ = connection.Close()
		log.Info("peer disconnected")
	}()

	if err := that.handleMessages(ctx, connection, conn); err != nil {
		log.Error("error reading frames", "error", err)
	}
}

// handleMessages - every line is an input frame. The first token is never interpreted.
func (that *Server) handleMessages(ctx context.Context, connection *Connection, conn net.Conn) error {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, that.options.MaxFrameSize), that.options.MaxFrameSize)

	for scanner.Scan() {
		commands := protocol.ParseInput(scanner.Text())
		if len(commands) == 0 {
			continue
		}

		if err := that.session.Submit(ctx, usecase.Input{PeerID: connection.ID(), Commands: commands}); err != nil {
			return fmt.Errorf("failed to submit input: %w", err)
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("failed to read frame: %w", err)
	}

	return nil
}
