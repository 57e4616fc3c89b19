//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/session"
)

// watchResize forwards SIGWINCH as resize events until ctx ends.
func watchResize(ctx context.Context, game *session.Session) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	defer signal.Stop(ch)

	for {
		select {
		case <-ch:
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				game.Resize(w, h)
			}
		case <-ctx.Done():
			return
		}
	}
}
