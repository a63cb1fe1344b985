package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seojinp/projectboard/internal/domain/comment"
)

type commentPayload struct {
	Content string `json:"content" validate:"required"`
}

func (h *Handlers) listComments(w http.ResponseWriter, r *http.Request) {
	list, err := h.comments.List(r.Context(), chi.URLParam(r, "ownerID"), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if list == nil {
		list = []comment.Comment{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) addComment(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing viewer", http.StatusUnauthorized)
		return
	}

	var payload commentPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}

	created, err := h.comments.Add(r.Context(), viewer,
		chi.URLParam(r, "ownerID"), chi.URLParam(r, "projectID"), payload.Content)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) deleteComment(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing viewer", http.StatusUnauthorized)
		return
	}

	err := h.comments.Delete(r.Context(), viewer,
		chi.URLParam(r, "ownerID"), chi.URLParam(r, "projectID"), chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) acknowledgeComment(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing viewer", http.StatusUnauthorized)
		return
	}

	acked, err := h.comments.Acknowledge(r.Context(), viewer,
		chi.URLParam(r, "ownerID"), chi.URLParam(r, "projectID"), chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, acked)
}

// commentFeed streams the live comment feed over SSE. Each event is the
// full ordered snapshot, which supersedes anything the client holds. The
// stream is torn down when the client disconnects so a dead connection
// never keeps a subscription alive.
func (h *Handlers) commentFeed(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing viewer", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ownerID := chi.URLParam(r, "ownerID")
	projectID := chi.URLParam(r, "projectID")

	snapshots := make(chan []comment.Comment, 1)
	stream := comment.NewStream(h.comments, viewer, ownerID, projectID, h.logger, func(snap []comment.Comment) {
		// Latest-wins hand-off to the writer loop below.
		select {
		case <-snapshots:
		default:
		}
		select {
		case snapshots <- snap:
		default:
		}
	})

	if err := stream.Subscribe(r.Context()); err != nil {
		writeError(w, h.logger, err)
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case snap := <-snapshots:
			data, err := json.Marshal(snap)
			if err != nil {
				h.logger.Error("encoding comment snapshot", "error", err)
				return
			}
			fmt.Fprintf(w, "event: comments\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
