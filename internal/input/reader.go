package input

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	xinput "github.com/charmbracelet/x/input"
	"github.com/muesli/cancelreader"
)

// ErrClosed is returned once the reader has been closed or its source has
// reached end of input.
var ErrClosed = errors.New("input: reader closed")

type item struct {
	ev  Event
	err error
}

// Reader decodes events from a byte source on a background goroutine and
// hands them out through Poll and Read. The goroutine is the only code that
// touches the source; callers only ever see fully decoded events.
type Reader struct {
	src   *xinput.Reader
	items chan item
	done  chan struct{}

	pending *Event
	err     error

	closeOnce sync.Once
	closeErr  error
}

// NewReader starts reading from r. termType is the client's $TERM and selects
// the key sequence table; it may be empty. When r is a terminal file the read
// can be cancelled by Close; other readers are unblocked by their own EOF.
func NewReader(r io.Reader, termType string) (*Reader, error) {
	src, err := xinput.NewReader(r, termType, 0)
	if err != nil {
		return nil, fmt.Errorf("input: create reader: %w", err)
	}

	rd := &Reader{
		src:   src,
		items: make(chan item, 256),
		done:  make(chan struct{}),
	}
	go rd.readLoop()
	return rd, nil
}

func (r *Reader) readLoop() {
	for {
		events, err := r.src.ReadEvents()
		for _, raw := range events {
			ev, ok := translate(raw)
			if !ok {
				continue
			}
			if !r.send(item{ev: ev}) {
				return
			}
		}
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) || errors.Is(err, io.EOF) {
				err = ErrClosed
			} else {
				err = fmt.Errorf("input: read: %w", err)
			}
			r.send(item{err: err})
			return
		}
	}
}

func (r *Reader) send(it item) bool {
	select {
	case r.items <- it:
		return true
	case <-r.done:
		return false
	}
}

// Post injects an event as if it had been read from the source. It is safe
// to call from any goroutine. Returns false once the reader is closed.
func (r *Reader) Post(ev Event) bool {
	select {
	case <-r.done:
		return false
	default:
	}
	return r.send(item{ev: ev})
}

// Poll waits up to timeout for an event to become available. A zero timeout
// checks without blocking. A true result guarantees the next Read does not
// block.
func (r *Reader) Poll(timeout time.Duration) (bool, error) {
	if r.pending != nil {
		return true, nil
	}
	if r.err != nil {
		return false, r.err
	}

	if timeout <= 0 {
		select {
		case it := <-r.items:
			return r.hold(it)
		default:
			return false, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case it := <-r.items:
		return r.hold(it)
	case <-timer.C:
		return false, nil
	case <-r.done:
		r.err = ErrClosed
		return false, ErrClosed
	}
}

func (r *Reader) hold(it item) (bool, error) {
	if it.err != nil {
		r.err = it.err
		return false, it.err
	}
	r.pending = &it.ev
	return true, nil
}

// Read returns the next event, blocking until one is available.
func (r *Reader) Read() (Event, error) {
	if r.pending != nil {
		ev := *r.pending
		r.pending = nil
		return ev, nil
	}
	if r.err != nil {
		return Event{}, r.err
	}

	select {
	case it := <-r.items:
		if it.err != nil {
			r.err = it.err
			return Event{}, it.err
		}
		return it.ev, nil
	case <-r.done:
		r.err = ErrClosed
		return Event{}, ErrClosed
	}
}

// Close stops the background reader. It is safe to call more than once.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		close(r.done)
		r.src.Cancel()
		r.closeErr = r.src.Close()
	})
	return r.closeErr
}
