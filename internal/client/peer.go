package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/boardnet/internal/protocol"
)

// Play - redraws on every changed update and forwards typed commands until the player quits,
// the host goes away or ctx is done.
func Play(ctx context.Context, peer *Client, input io.Reader, renderer *Renderer, messages io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan protocol.GameData)
	readErr := make(chan error, 1)
	go func() {
		readErr <- peer.ReadLoop(ctx, updates)
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	var last protocol.GameData
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case data := <-updates:
			if data != last {
				renderer.Draw(data)
				last = data
			}
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			frame, err := ParseCommand(line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				_, _ = fmt.Fprintln(messages, Help)
				continue
			}

			if err = peer.Send(frame); err != nil {
				return err
			}
		}
	}
}
