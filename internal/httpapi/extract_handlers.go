package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"jobextract-engine/internal/domain"
	"jobextract-engine/internal/pipeline"
	"jobextract-engine/internal/store"
)

type ExtractRequest struct {
	URL string `json:"url"`
	// HTML, when present, is challenge-page markup the user fetched
	// manually; the engine skips its own fetch.
	HTML        string `json:"html,omitempty"`
	RequestedBy string `json:"requested_by,omitempty"`
}

type ExtractHandler struct {
	Pipeline *pipeline.Pipeline
	Log      *zap.Logger
}

func (h ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "request body is not valid JSON")
		return
	}
	if !validURL(req.URL) {
		WriteError(w, r, http.StatusBadRequest, "bad_url", "url must be absolute http(s)")
		return
	}

	rec, err := h.Pipeline.Extract(r.Context(), domain.SourceRequest{
		URL:         req.URL,
		HTML:        req.HTML,
		RequestedBy: req.RequestedBy,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyURL) {
			WriteError(w, r, http.StatusBadRequest, "bad_url", err.Error())
			return
		}
		// context cancellation or other caller-side abort
		WriteError(w, r, http.StatusInternalServerError, "pipeline_error", err.Error())
		return
	}

	writeJSON(w, rec)
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

type HistoryHandler struct {
	DB *store.DB
}

func (h HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		writeJSON(w, []store.ExtractionRow{})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := h.DB.ListRecent(r.Context(), limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if rows == nil {
		rows = []store.ExtractionRow{}
	}
	writeJSON(w, rows)
}
