// Package eventstream pumps raw device-event lines through the decoder.
package eventstream

import (
	"bufio"
	"context"
	"io"
	"log"
	"sync"

	"github.com/mrzor/gesture-tracer/internal/evdev"
	"github.com/mrzor/gesture-tracer/internal/lineparser"
)

// EventHandler consumes decoded input events, typically the touch tracker.
type EventHandler interface {
	HandleEvent(event *evdev.Event) error
}

// Stream reads lines from a source and dispatches decoded events to a handler.
type Stream struct {
	source   io.Reader
	handler  EventHandler
	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
}

// New creates a new Stream over the given line source and event handler.
func New(source io.Reader, handler EventHandler) *Stream {
	return &Stream{
		source:  source,
		handler: handler,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins reading lines in a goroutine. It returns immediately and
// processes lines in the background until the source ends, the context is
// cancelled, or Stop is called.
func (s *Stream) Start(ctx context.Context) error {
	go s.processLines(ctx)
	return nil
}

// Stop signals the line processing goroutine to stop. Safe to call more
// than once.
func (s *Stream) Stop() error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	return nil
}

// Done is closed once the processing goroutine has exited, which happens
// when the source reaches end-of-stream.
func (s *Stream) Done() <-chan struct{} {
	return s.doneCh
}

// processLines is the main loop that reads, decodes and dispatches lines.
func (s *Stream) processLines(ctx context.Context) {
	defer close(s.doneCh)

	scanner := bufio.NewScanner(s.source)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		default:
		}

		event, ok := lineparser.Parse(scanner.Bytes())
		if !ok {
			// High-frequency getevent chatter, not an error.
			continue
		}

		if err := s.handler.HandleEvent(&event); err != nil {
			log.Printf("handling event: %v", err)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("reading event stream: %v", err)
	}
}
