package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/marquee-live/marquee/internal/adapters/locallist"
)

// ListsDependencies defines the interface for local-list operations.
type ListsDependencies interface {
	AddToList(ctx context.Context, list, id string) bool
	RemoveFromList(ctx context.Context, list, id string)
	ListMembers(ctx context.Context, list string) []string
}

// ListsHandler handles local-list requests.
type ListsHandler struct {
	deps ListsDependencies
}

// NewListsHandler creates a new lists handler.
func NewListsHandler(deps ListsDependencies) *ListsHandler {
	return &ListsHandler{deps: deps}
}

// listResponse is the read shape for GET /lists/{list}.
type listResponse struct {
	List string   `json:"list"`
	IDs  []string `json:"ids"`
}

// mutationResponse acknowledges PUT and DELETE on a list entry.
type mutationResponse struct {
	Status string `json:"status"`
	Added  bool   `json:"added,omitempty"`
}

// HandleLists routes the /lists/ subtree:
//
//	GET    /lists/{list}       members in insertion order
//	PUT    /lists/{list}/{id}  add id to list
//	DELETE /lists/{list}/{id}  remove id from list
func (h *ListsHandler) HandleLists(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/lists/")
	parts := strings.SplitN(path, "/", 2)

	list := parts[0]
	if !knownList(list) {
		writeError(w, http.StatusNotFound, ErrUnknownList)
		return
	}

	switch r.Method {
	case http.MethodGet:
		if len(parts) != 1 {
			writeError(w, http.StatusBadRequest, ErrBadRequest)
			return
		}
		ids := h.deps.ListMembers(r.Context(), list)
		if ids == nil {
			ids = []string{}
		}
		writeJSON(w, http.StatusOK, listResponse{List: list, IDs: ids})

	case http.MethodPut:
		id, ok := entryID(parts)
		if !ok {
			writeError(w, http.StatusBadRequest, ErrBadRequest)
			return
		}
		added := h.deps.AddToList(r.Context(), list, id)
		writeJSON(w, http.StatusOK, mutationResponse{Status: "ok", Added: added})

	case http.MethodDelete:
		id, ok := entryID(parts)
		if !ok {
			writeError(w, http.StatusBadRequest, ErrBadRequest)
			return
		}
		h.deps.RemoveFromList(r.Context(), list, id)
		writeJSON(w, http.StatusOK, mutationResponse{Status: "ok"})

	default:
		http.NotFound(w, r)
	}
}

// entryID extracts the {id} segment of a two-part list path.
func entryID(parts []string) (string, bool) {
	if len(parts) != 2 {
		return "", false
	}
	id := parts[1]
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// knownList reports whether name is one of the supported list keys.
func knownList(name string) bool {
	switch name {
	case locallist.LikedEvents, locallist.FollowedHosts, locallist.FollowedArtists, locallist.Tickets:
		return true
	}
	return false
}
