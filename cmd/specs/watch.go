package main

import (
	"context"
	"io"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/WessleyAI/autospecs/engine/specs"
	"github.com/WessleyAI/autospecs/pkg/natsutil"
)

// runWatch prints search events until ctx is done.
func runWatch(ctx context.Context, out io.Writer, nc *nats.Conn, opts *options) error {
	var mu sync.Mutex
	sub, err := natsutil.Subscribe(nc, specs.SubjectSearchCompleted, func(_ context.Context, ev specs.SearchEvent) {
		mu.Lock()
		defer mu.Unlock()
		if opts.json {
			_ = writeJSON(out, ev)
			return
		}
		printEvent(out, ev)
	})
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()
	if err := nc.Flush(); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
