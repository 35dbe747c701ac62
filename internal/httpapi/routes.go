package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"jobextract-engine/internal/events"
	"jobextract-engine/internal/pipeline"
	"jobextract-engine/internal/store"
)

type Deps struct {
	Pipeline *pipeline.Pipeline
	DB       *store.DB
	Hub      *events.Hub
	Log      *zap.Logger
}

func Routes(d Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ok": true, "time": time.Now().UTC().Format(time.RFC3339)})
	})

	eh := ExtractHandler{Pipeline: d.Pipeline, Log: d.Log}
	mux.HandleFunc("/extract", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: eh.Extract,
	}))

	hh := HistoryHandler{DB: d.DB}
	mux.HandleFunc("/extractions", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.List,
	}))

	if d.Hub != nil {
		mux.HandleFunc("/events", sseHandler(d.Hub))
	}

	return Chain(mux,
		RequestID,
		AccessLog(d.Log),
		Recover(d.Log),
		Cors,
	)
}

// sseHandler streams extraction lifecycle events to a UI.
func sseHandler(hub *events.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		ch := hub.Subscribe()
		defer hub.Unsubscribe(ch)

		fmt.Fprintf(w, "event: ping\ndata: %s\n\n", `{"type":"ping"}`)
		flusher.Flush()

		for {
			select {
			case <-r.Context().Done():
				return
			case msg := <-ch:
				fmt.Fprintf(w, "event: message\ndata: %s\n\n", msg)
				flusher.Flush()
			}
		}
	}
}
