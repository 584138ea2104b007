package controllers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"tutorstate/backend/models"
	"tutorstate/backend/stores"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

const (
	EventProgress = "progress"
	EventTheme    = "theme"

	defaultHeartbeat = 15 * time.Second
)

type EventsController struct {
	Progress  *stores.ProgressStore
	Theme     *stores.ThemeStore
	Log       zerolog.Logger
	Heartbeat time.Duration
}

func NewEventsController(progress *stores.ProgressStore, theme *stores.ThemeStore, log zerolog.Logger) *EventsController {
	return &EventsController{
		Progress:  progress,
		Theme:     theme,
		Log:       log,
		Heartbeat: defaultHeartbeat,
	}
}

// Stream godoc
// @Summary Subscribe to state changes
// @Description Server-sent events; the current progress and theme are sent first
// @Tags events
// @Produce text/event-stream
// @Router /events [get]
func (ec *EventsController) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		feed := newEventFeed(EventProgress, EventTheme)
		defer ec.Progress.Subscribe(func(state models.ProgressState) {
			feed.publish(EventProgress, state)
		})()
		defer ec.Theme.Subscribe(func(theme models.Theme) {
			feed.publish(EventTheme, fiber.Map{"theme": theme})
		})()

		ec.Log.Debug().Msg("event stream opened")
		defer ec.Log.Debug().Msg("event stream closed")

		heartbeat := ec.Heartbeat
		if heartbeat <= 0 {
			heartbeat = defaultHeartbeat
		}
		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		for {
			select {
			case <-feed.ready:
				for _, ev := range feed.drain() {
					if err := writeEvent(w, ev.name, ev.data); err != nil {
						ec.Log.Warn().Err(err).Str("event", ev.name).Msg("failed to encode event")
						return
					}
				}
			case <-ticker.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
			}
			// Flush fails once the client is gone.
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}

type event struct {
	name string
	data interface{}
}

// eventFeed keeps only the latest payload per event name so store listeners
// never block on a slow client.
type eventFeed struct {
	mu      sync.Mutex
	names   []string
	pending map[string]interface{}
	ready   chan struct{}
}

func newEventFeed(names ...string) *eventFeed {
	return &eventFeed{
		names:   names,
		pending: make(map[string]interface{}),
		ready:   make(chan struct{}, 1),
	}
}

func (f *eventFeed) publish(name string, data interface{}) {
	f.mu.Lock()
	f.pending[name] = data
	f.mu.Unlock()

	select {
	case f.ready <- struct{}{}:
	default:
	}
}

// drain returns pending events in the feed's name order.
func (f *eventFeed) drain() []event {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]event, 0, len(f.pending))
	for _, name := range f.names {
		if data, ok := f.pending[name]; ok {
			out = append(out, event{name: name, data: data})
			delete(f.pending, name)
		}
	}
	return out
}

func writeEvent(w io.Writer, name string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, raw)
	return err
}
