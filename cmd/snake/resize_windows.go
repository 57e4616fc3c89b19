//go:build windows

package main

import (
	"context"

	"github.com/vovakirdan/term-snake/internal/session"
)

// watchResize is a no-op: Windows consoles do not send SIGWINCH.
func watchResize(_ context.Context, _ *session.Session) {}
