// Task 3.3: bus consumer that persists invocation events.
package audit

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/matiasleandrokruk/attio-mcp/internal/infra/eventbus"
)

// Writer consumes TopicInvocation events and records them. NewWriter
// subscribes immediately, so events published after construction are
// captured even if Run has not been scheduled yet.
type Writer struct {
	events <-chan eventbus.Event
	rec    *Recorder
	log    zerolog.Logger
}

// NewWriter subscribes to the bus and returns a Writer ready to Run.
func NewWriter(bus *eventbus.Bus, rec *Recorder, log zerolog.Logger) *Writer {
	return &Writer{
		events: bus.Subscribe(TopicInvocation),
		rec:    rec,
		log:    log,
	}
}

// Run drains the subscription until ctx is cancelled. Meant to run as a
// goroutine next to the MCP server. Failed writes are logged and dropped;
// the trail is best-effort.
func (w *Writer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-w.events:
			inv, ok := evt.Payload.(Invocation)
			if !ok {
				w.log.Warn().Str("topic", evt.Topic).Msg("unexpected audit payload type")
				continue
			}
			writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := w.rec.Record(writeCtx, inv); err != nil {
				w.log.Warn().Err(err).Str("tool", inv.Tool).Msg("audit record failed")
			}
			cancel()
		}
	}
}
