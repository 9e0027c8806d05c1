package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/boardnet/internal/client"
)

type config struct {
	Addr     string `env:"PEER_ADDR" env-default:"localhost:55555"`
	LogLevel string `env:"PEER_LOG_LEVEL" env-default:"error"`
	Bot      bool   `env:"PEER_BOT" env-default:"false"`
}

// main - terminal peer: connects to a host, draws its updates and forwards typed moves.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var conf config
	if err := cleanenv.ReadEnv(&conf); err != nil {
		return fmt.Errorf("unable to read environment: %w", err)
	}

	level := slog.LevelError
	if err := level.UnmarshalText([]byte(conf.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	peer, err := client.Dial(ctx, logger, conf.Addr)
	if err != nil {
		return err
	}
	defer peer.Close()

	renderer := client.NewRenderer(os.Stdout)

	if conf.Bot {
		err = client.PlayBot(ctx, peer, client.NewBot(uint64(time.Now().UnixNano())), renderer)
	} else {
		fmt.Println(client.Help)
		err = client.Play(ctx, peer, os.Stdin, renderer, os.Stdout)
	}
	if errors.Is(err, client.ErrRejected) {
		return errors.New("the game already has two players")
	}

	return err
}
