// Package api - HTTP handlers for service recommendations
// Handlers wrap the engine and the storage slots; scoring lives in core/engine.
package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"aws-recommender/adapters/export"
	"aws-recommender/adapters/storage"
	"aws-recommender/core/catalog"
	"aws-recommender/core/determinism"
	"aws-recommender/core/engine"
	"aws-recommender/core/output"
	"aws-recommender/core/types"
	apperrors "aws-recommender/internal/errors"
	"aws-recommender/internal/logging"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 64 << 10

// Handler serves the recommendation endpoints
type Handler struct {
	engine        *engine.Engine
	slots         *storage.Slots
	restoreWindow time.Duration
	now           func() time.Time
}

// NewHandler creates a handler. slots may be nil, in which case nothing is persisted.
func NewHandler(eng *engine.Engine, slots *storage.Slots, restoreWindow time.Duration) *Handler {
	if eng == nil {
		eng = engine.Default()
	}
	if restoreWindow <= 0 {
		restoreWindow = storage.DefaultRestoreWindow
	}
	return &Handler{
		engine:        eng,
		slots:         slots,
		restoreWindow: restoreWindow,
		now:           time.Now,
	}
}

// Recommend handles POST /api/v1/recommendations
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var prefs types.PreferenceVector
	if !decodeBody(w, r, &prefs) {
		return
	}
	if err := validateStruct(prefs); err != nil {
		writeAppError(w, r, err)
		return
	}

	top, err := queryInt(r, "top")
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	recs := h.engine.Rank(prefs)
	now := h.now()
	recordRecommendation(recs[0].Service)

	saved := false
	if h.slots != nil {
		if _, err := h.slots.SaveLast(ctx, prefs, recs, now); err != nil {
			recordStoreError("save_last")
			logging.Warn("failed to save recommendation",
				zap.Error(err),
				zap.String("request_id", RequestID(ctx)))
		} else {
			saved = true
		}
	}

	var unknown []types.Criterion
	for _, c := range types.Criteria() {
		if !types.IsKnownValue(c, prefs.Value(c)) {
			unknown = append(unknown, c)
		}
	}

	writeJSON(w, &RecommendResponse{
		RequestID:       RequestID(ctx),
		InputHash:       string(determinism.FingerprintOf(prefs)),
		Inputs:          prefs,
		Recommendations: output.Top(recs, top),
		Timestamp:       now.UTC(),
		Saved:           saved,
		Unknown:         unknown,
	}, http.StatusOK)
}

// Explain handles POST /api/v1/recommendations/explain?service=NAME
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	service := strings.TrimSpace(r.URL.Query().Get("service"))
	if service == "" {
		writeAppError(w, r, apperrors.Input("service query parameter is required"))
		return
	}

	var prefs types.PreferenceVector
	if !decodeBody(w, r, &prefs) {
		return
	}
	if err := validateStruct(prefs); err != nil {
		writeAppError(w, r, err)
		return
	}

	breakdown, err := h.engine.Explain(prefs, service)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, breakdown, http.StatusOK)
}

// Last handles GET /api/v1/recommendations/last.
// With ?fresh=true records older than the restore window are reported as stale.
func (h *Handler) Last(w http.ResponseWriter, r *http.Request) {
	record, ok := h.loadLast(w, r)
	if !ok {
		return
	}

	if fresh, _ := strconv.ParseBool(r.URL.Query().Get("fresh")); fresh {
		if !storage.IsFresh(record, h.now(), h.restoreWindow) {
			writeError(w, r, CodeStale, "saved recommendation is older than "+h.restoreWindow.String(), http.StatusNotFound)
			return
		}
	}

	writeJSON(w, record, http.StatusOK)
}

// Export handles GET /api/v1/recommendations/last/export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	record, ok := h.loadLast(w, r)
	if !ok {
		return
	}

	data, err := export.Marshal(record)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", `"`+determinism.ComputeHash(data).Hex()[:16]+`"`)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(h.now())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) loadLast(w http.ResponseWriter, r *http.Request) (*types.StoredRecommendation, bool) {
	if h.slots == nil {
		writeAppError(w, r, apperrors.NotFound("saved recommendation", storage.KeyLastRecommendation))
		return nil, false
	}

	record, err := h.slots.LoadLast(r.Context())
	if err != nil {
		recordStoreError("load_last")
		writeAppError(w, r, err)
		return nil, false
	}
	if record == nil {
		writeAppError(w, r, apperrors.NotFound("saved recommendation", storage.KeyLastRecommendation))
		return nil, false
	}
	return record, true
}

// Catalog handles GET /api/v1/catalog, optionally filtered by ?category=
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()

	services := cat.All()
	if name := r.URL.Query().Get("category"); name != "" {
		category := catalog.Category(name)
		if !category.IsValid() {
			writeAppError(w, r, apperrors.Newf(apperrors.TypeInput, "unknown category %q", name))
			return
		}
		services = cat.ByCategory(category)
	}

	writeJSON(w, &CatalogResponse{Services: services, Count: len(services)}, http.StatusOK)
}

// Service handles GET /api/v1/catalog/{name}
func (h *Handler) Service(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	profile, ok := h.engine.Catalog().Get(name)
	if !ok {
		writeAppError(w, r, apperrors.NotFound("service", name))
		return
	}
	writeJSON(w, profile, http.StatusOK)
}

// Criteria handles GET /api/v1/criteria
func (h *Handler) Criteria(w http.ResponseWriter, r *http.Request) {
	type criterionInfo struct {
		Name    types.Criterion `json:"name"`
		Label   string          `json:"label"`
		Weight  string          `json:"weight"`
		Options []types.Option  `json:"options"`
	}

	out := make([]criterionInfo, 0, len(types.Criteria()))
	for _, c := range types.Criteria() {
		out = append(out, criterionInfo{
			Name:    c,
			Label:   c.Label(),
			Weight:  types.Weight(c).String(),
			Options: c.Options(),
		})
	}
	writeJSON(w, out, http.StatusOK)
}

// GetTheme handles GET /api/v1/preferences/theme
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	if h.slots == nil {
		writeJSON(w, &ThemeResponse{}, http.StatusOK)
		return
	}
	dark, err := h.slots.DarkMode(r.Context())
	if err != nil {
		recordStoreError("load_theme")
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, &ThemeResponse{DarkMode: dark}, http.StatusOK)
}

// PutTheme handles PUT /api/v1/preferences/theme
func (h *Handler) PutTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validateStruct(req); err != nil {
		writeAppError(w, r, err)
		return
	}
	if h.slots == nil {
		writeAppError(w, r, apperrors.NotSupported("theme preference without storage"))
		return
	}
	if err := h.slots.SetDarkMode(r.Context(), *req.DarkMode); err != nil {
		recordStoreError("save_theme")
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, &ThemeResponse{DarkMode: *req.DarkMode}, http.StatusOK)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, r, CodeInvalidJSON, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperrors.Newf(apperrors.TypeInput, "%s must be a non-negative integer", name)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Warn("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, code, message string, status int) {
	writeJSON(w, &ErrorResponse{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			RequestID: RequestID(r.Context()),
		},
	}, status)
}

// writeAppError maps error types to HTTP statuses
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperrors.TypeOf(err) {
	case apperrors.TypeInput, apperrors.TypeParsing:
		writeError(w, r, CodeValidation, err.Error(), http.StatusBadRequest)
	case apperrors.TypeNotFound:
		writeError(w, r, CodeNotFound, err.Error(), http.StatusNotFound)
	case apperrors.TypeNotSupported:
		writeError(w, r, CodeNotSupported, err.Error(), http.StatusNotImplemented)
	case apperrors.TypeStorage:
		writeError(w, r, CodeStorage, err.Error(), http.StatusInternalServerError)
	default:
		logging.Error("internal error", zap.Error(err), zap.String("request_id", RequestID(r.Context())))
		writeError(w, r, CodeInternal, "internal error", http.StatusInternalServerError)
	}
}
