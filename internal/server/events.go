package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"todoboard/internal/output"
	"todoboard/internal/service"
)

// eventBoard is the SSE event name carrying a board document.
const eventBoard = "board"

// events handles GET /api/events. The current board is sent at once, then
// one event per change. A client that falls behind gets the newest board
// rather than every intermediate one.
func (s *Server) events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	updates, stop := service.Watch(s.board)
	defer stop()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	last := s.board.Snapshot()
	if err := writeEvent(w, last); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case snap := <-updates:
			if snap.Version <= last.Version {
				continue
			}
			last = snap
			if err := writeEvent(w, snap); err != nil {
				s.logger.Debug("event stream closed", "id", RequestIDFrom(r.Context()), "error", err)
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w io.Writer, snap service.Snapshot) error {
	data, err := json.Marshal(output.NewBoard(snap))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\nid: %d\ndata: %s\n\n", eventBoard, snap.Version, data)
	return err
}
