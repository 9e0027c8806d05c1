package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/rocketscienceinc/boardnet/internal/apperror"
	"github.com/rocketscienceinc/boardnet/internal/entity"
	"github.com/rocketscienceinc/boardnet/internal/pkg"
	"github.com/rocketscienceinc/boardnet/internal/protocol"
)

var ErrSessionClosed = errors.New("game session is closed")

const (
	maxSeats       = 2
	eventQueueSize = 64
	storageTimeout = time.Second
)

// Rules - what the session needs from a game implementation.
type Rules interface {
	Kind() string
	NewGame(id string) *entity.Game
	MakeTurn(game *entity.Game, mark entity.Cell, row, col int) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, snapshot *entity.Snapshot) error
	DeleteByID(ctx context.Context, id string) error
}

type matchRepo interface {
	Save(ctx context.Context, match *entity.Match) error
}

// Peer is a remote connection as seen by the session.
type Peer interface {
	ID() string
	// Send queues a frame. False means the frame was dropped.
	Send(frame []byte) bool
	Close() error
}

// Event is anything that changes the session. Events are applied one at a time by Run.
type Event interface {
	isEvent()
}

type PeerJoined struct {
	Peer Peer
}

type PeerLeft struct {
	PeerID string
}

type Input struct {
	PeerID   string
	Commands []protocol.Command
}

func (PeerJoined) isEvent() {}
func (PeerLeft) isEvent() {}
func (Input) isEvent() {}

type seat struct {
	peer   Peer
	symbol entity.Cell

	row, col  int
	hasCursor bool
	pressed   bool
}

// GameManager - owns the game and the seats. Only the Run goroutine touches them.
type GameManager struct {
	logger    *slog.Logger
	rules     Rules
	gameRepo  gameRepo
	matchRepo matchRepo
	tick      time.Duration

	events chan Event
	done   chan struct{}

	game     *entity.Game
	seats    []*seat
	recorded bool

	snapshot atomic.Pointer[entity.Snapshot]
}

func NewGameManager(logger *slog.Logger, rules Rules, gameRepo gameRepo, matchRepo matchRepo, tick time.Duration) *GameManager {
	manager := &GameManager{
		logger:    logger.With("component", "session"),
		rules:     rules,
		gameRepo:  gameRepo,
		matchRepo: matchRepo,
		tick:      tick,

		events: make(chan Event, eventQueueSize),
		done:   make(chan struct{}),

		game: rules.NewGame(pkg.GenerateGameID()),
	}
	manager.publish()

	return manager
}

// Run - applies events and broadcasts the state on every tick until ctx is done.
func (that *GameManager) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	defer close(that.done)

	ticker := time.NewTicker(that.tick)
	defer ticker.Stop()

	that.persist(ctx)
	log.Info("game session started", "game_id", that.game.ID, "kind", that.rules.Kind(), "tick", that.tick)

	for {
		select {
		case <-ctx.Done():
			that.closeSeats()
			log.Info("game session stopped")
			return nil
		case event := <-that.events:
			that.handle(ctx, event)
		case <-ticker.C:
			that.broadcast()
		}
	}
}

// Submit - hands an event to the session.
func (that *GameManager) Submit(ctx context.Context, event Event) error {
	select {
	case <-that.done:
		return ErrSessionClosed
	default:
	}

	select {
	case that.events <- event:
		return nil
	case <-that.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return fmt.Errorf("failed to submit event: %w", ctx.Err())
	}
}

// Snapshot - latest published state, safe to call from any goroutine.
func (that *GameManager) Snapshot() *entity.Snapshot {
	return that.snapshot.Load()
}

func (that *GameManager) handle(ctx context.Context, event Event) {
	switch e := event.(type) {
	case PeerJoined:
		that.join(ctx, e.Peer)
	case PeerLeft:
		that.leave(ctx, e.PeerID)
	case Input:
		that.input(ctx, e.PeerID, e.Commands)
	}
}

func (that *GameManager) join(ctx context.Context, peer Peer) {
	log := that.logger.With("method", "join", "peer", peer.ID())

	if len(that.seats) == maxSeats {
		log.Info("rejecting peer", "error", apperror.ErrSessionFull)

		peer.Send(protocol.EncodeReject(protocol.RejectFull))
		if err := peer.Close(); err != nil {
			log.Error("failed to close rejected peer", "error", err)
		}
		return
	}

	symbol := entity.X
	if len(that.seats) == 1 {
		symbol = that.seats[0].symbol.Opponent()
	}

	that.seats = append(that.seats, &seat{peer: peer, symbol: symbol})
	log.Info("peer seated", "ordinal", len(that.seats), "symbol", symbol.String())

	that.resume()
	that.persist(ctx)
}

func (that *GameManager) leave(ctx context.Context, peerID string) {
	idx := slices.IndexFunc(that.seats, func(s *seat) bool { return s.peer.ID() == peerID })
	if idx < 0 {
		return
	}

	that.seats = slices.Delete(that.seats, idx, idx+1)
	that.logger.Info("peer left", "method", "leave", "peer", peerID, "seats", len(that.seats))

	if that.game.IsOngoing() {
		that.game.Status = entity.StatusWaiting
	}

	that.persist(ctx)
}

func (that *GameManager) input(ctx context.Context, peerID string, commands []protocol.Command) {
	s := that.seatByID(peerID)
	if s == nil {
		return
	}

	for _, command := range commands {
		switch command.Kind {
		case protocol.CommandCursor:
			s.row, s.col, s.hasCursor = command.Row, command.Col, true
		case protocol.CommandPress:
			s.pressed = true
		case protocol.CommandRelease:
			if s.pressed && s.hasCursor {
				that.move(ctx, s)
			}
			s.pressed = false
		case protocol.CommandSymbol:
			that.chooseSymbol(ctx, s, command.Symbol)
		case protocol.CommandNewGame:
			that.restart(ctx)
		}
	}
}

func (that *GameManager) move(ctx context.Context, s *seat) {
	log := that.logger.With("method", "move", "peer", s.peer.ID())

	if err := that.rules.MakeTurn(that.game, s.symbol, s.row, s.col); err != nil {
		log.Debug("move ignored", "row", s.row, "col", s.col, "error", err)
		return
	}

	if that.game.IsFinished() {
		log.Info("game finished", "game_id", that.game.ID, "result", that.game.Result())
		that.record(ctx)
	}

	that.persist(ctx)
}

func (that *GameManager) chooseSymbol(ctx context.Context, s *seat, symbol entity.Cell) {
	log := that.logger.With("method", "chooseSymbol", "peer", s.peer.ID())

	if symbol != entity.X && symbol != entity.O {
		log.Debug("symbol ignored", "error", apperror.ErrUnknownSymbol)
		return
	}

	// an interrupted game is back to waiting but keeps its board
	if that.game.IsOngoing() || (that.game.IsWaiting() && that.game.Moves > 0) {
		log.Debug("symbol ignored", "error", apperror.ErrGameInProgress)
		return
	}

	s.symbol = symbol
	for _, other := range that.seats {
		if other != s {
			other.symbol = symbol.Opponent()
		}
	}

	that.persist(ctx)
}

// restart - starts a fresh game once the current one is finished.
func (that *GameManager) restart(ctx context.Context) {
	log := that.logger.With("method", "restart")

	if !that.game.IsFinished() {
		log.Debug("new game ignored", "status", that.game.Status)
		return
	}

	previous := that.game.ID
	that.game = that.rules.NewGame(pkg.GenerateGameID())
	that.recorded = false
	for _, s := range that.seats {
		s.pressed = false
	}

	that.resume()

	deleteCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if err := that.gameRepo.DeleteByID(deleteCtx, previous); err != nil {
		log.Error("failed to delete previous game", "game_id", previous, "error", err)
	}

	log.Info("new game", "game_id", that.game.ID)
	that.persist(ctx)
}

// resume - a waiting game starts as soon as both seats are taken.
func (that *GameManager) resume() {
	if that.game.IsWaiting() && len(that.seats) == maxSeats {
		that.game.Status = entity.StatusOngoing
	}
}

// broadcast - each seat gets its own variant of the state.
func (that *GameManager) broadcast() {
	board := that.game.Board.String()

	for i, s := range that.seats {
		data := protocol.GameData{
			Board:    board,
			XTurn:    that.game.Turn == entity.X,
			Finished: that.game.IsFinished(),
			YouAreX:  s.symbol == entity.X,
			Ordinal:  i + 1,
		}

		if !s.peer.Send(data.Encode()) {
			that.logger.Debug("frame dropped", "method", "broadcast", "peer", s.peer.ID())
		}
	}
}

func (that *GameManager) record(ctx context.Context) {
	if that.recorded {
		return
	}
	that.recorded = true

	match := &entity.Match{
		GameID:     that.game.ID,
		Kind:       that.game.Kind,
		Winner:     that.game.Result(),
		Board:      that.game.Board.String(),
		Moves:      that.game.Moves,
		FinishedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if err := that.matchRepo.Save(ctx, match); err != nil {
		that.logger.Error("failed to save match", "method", "record", "game_id", match.GameID, "error", err)
	}
}

func (that *GameManager) persist(ctx context.Context) {
	snapshot := that.publish()

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if err := that.gameRepo.CreateOrUpdate(ctx, snapshot); err != nil {
		that.logger.Error("failed to save game", "method", "persist", "game_id", snapshot.ID, "error", err)
	}
}

func (that *GameManager) publish() *entity.Snapshot {
	players := make([]*entity.Player, 0, len(that.seats))
	for i, s := range that.seats {
		players = append(players, &entity.Player{
			ID:      s.peer.ID(),
			Ordinal: i + 1,
			Mark:    s.symbol.String(),
		})
	}

	snapshot := that.game.Snapshot(players)
	that.snapshot.Store(snapshot)

	return snapshot
}

func (that *GameManager) seatByID(peerID string) *seat {
	for _, s := range that.seats {
		if s.peer.ID() == peerID {
			return s
		}
	}

	return nil
}

func (that *GameManager) closeSeats() {
	for _, s := range that.seats {
		if err := s.peer.Close(); err != nil {
			that.logger.Error("failed to close peer", "peer", s.peer.ID(), "error", err)
		}
	}
	that.seats = nil
}
