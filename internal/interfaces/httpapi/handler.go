package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/eprasetya/vlrscout/internal/collector"
	"github.com/eprasetya/vlrscout/internal/domain/event"
	"github.com/eprasetya/vlrscout/internal/export"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
	"github.com/eprasetya/vlrscout/internal/usecase"
)

type Handler struct {
	runService     *usecase.RunService
	archiveService *usecase.ArchiveService
	exporter       *export.Exporter
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	runService *usecase.RunService,
	archiveService *usecase.ArchiveService,
	exporter *export.Exporter,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		runService:     runService,
		archiveService: archiveService,
		exporter:       exporter,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type startRunRequest struct {
	EventID     int64 `json:"event_id" validate:"required,gt=0"`
	Matches     bool  `json:"matches"`
	EventStats  bool  `json:"event_stats"`
	MapsAgents  bool  `json:"maps_agents"`
	Details     bool  `json:"details"`
	Economy     bool  `json:"economy"`
	Performance bool  `json:"performance"`
	DetailLimit int   `json:"detail_limit" validate:"gte=0"`
}

func (r startRunRequest) collectorConfig() collector.Config {
	cfg := collector.Config{
		Matches:     r.Matches,
		EventStats:  r.EventStats,
		MapsAgents:  r.MapsAgents,
		Details:     r.Details,
		Economy:     r.Economy,
		Performance: r.Performance,
		DetailLimit: r.DetailLimit,
	}
	// No stage selected means a full collection.
	if !cfg.Matches && !cfg.EventStats && !cfg.MapsAgents &&
		!cfg.Details && !cfg.Economy && !cfg.Performance {
		cfg.Matches = true
		cfg.EventStats = true
		cfg.MapsAgents = true
		cfg.Details = true
		cfg.Economy = true
		cfg.Performance = true
	}
	return cfg
}

func (h *Handler) StartRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartRun")
	defer span.End()

	var req startRunRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	started, err := h.runService.StartRun(ctx, req.EventID, req.collectorConfig())
	if err != nil {
		h.logger.WarnContext(ctx, "start run failed", "event_id", req.EventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, runToDTO(started))
}

func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRun")
	defer span.End()

	got, err := h.runService.GetRun(ctx, r.PathValue("runID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, runToDTO(got))
}

func (h *Handler) CancelRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelRun")
	defer span.End()

	got, err := h.runService.CancelRun(ctx, r.PathValue("runID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, runToDTO(got))
}

func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRuns")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	runs, err := h.runService.ListRuns(ctx, limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]runDTO, 0, len(runs))
	for _, rr := range runs {
		out = append(out, runToDTO(rr))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.archiveService.ListEvents(ctx, event.Filter{
		Region: r.URL.Query().Get("region"),
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]eventDTO, 0, len(events))
	for _, ev := range events {
		out = append(out, eventToDTO(ev))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvent")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	arch, err := h.archiveService.GetEventArchive(ctx, eventID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventArchiveToDTO(arch))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	arch, err := h.archiveService.GetMatchArchive(ctx, eventID, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchArchiveToDTO(arch))
}

// ExportEvent streams the event's archive as a zip download.
func (h *Handler) ExportEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportEvent")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	bundle, err := h.archiveService.ExportBundle(ctx, eventID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(eventID)+`"`)
	if err := h.exporter.WriteZip(ctx, bundle, w); err != nil {
		// Headers are already gone; all that is left is logging.
		h.logger.ErrorContext(ctx, "export write failed", "event_id", eventID, "error", err)
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}
