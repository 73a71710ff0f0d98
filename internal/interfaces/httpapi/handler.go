package httpapi

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricket-scorecard/internal/infrastructure/auditlog"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

const maxUploadBytes = 16 << 20 // largest cricsheet documents are a few MB

type Handler struct {
	ingestionService *usecase.IngestionService
	statsService     *usecase.StatsService
	audit            auditlog.Publisher
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	ingestionService *usecase.IngestionService,
	statsService *usecase.StatsService,
	audit auditlog.Publisher,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if audit == nil {
		audit = auditlog.NopPublisher{}
	}

	return &Handler{
		ingestionService: ingestionService,
		statsService:     statsService,
		audit:            audit,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) UploadMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadMatch")
	defer span.End()

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		h.logger.WarnContext(ctx, "read upload body failed", "error", err)
		writeError(ctx, w, fmt.Errorf("%w: read request body", usecase.ErrInvalidInput))
		return
	}

	created, err := h.ingestionService.Ingest(ctx, raw)
	if err != nil {
		h.logger.WarnContext(ctx, "match upload failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.audit.Publish(ctx, auditlog.Entry{
		Action: "match.upload",
		Detail: map[string]any{"created": created, "bytes": len(raw)},
		At:     time.Now().UTC(),
	})

	status := http.StatusOK
	if !created {
		status = http.StatusConflict
	}
	writeSuccess(ctx, w, status, uploadResultDTO{Created: created})
}

func (h *Handler) queryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// int64QueryParam parses a numeric parameter; absence or garbage both
// map to invalid input so the response is a clean 400.
func (h *Handler) int64QueryParam(r *http.Request, name string) (int64, error) {
	raw := h.queryParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, name)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}

	return value, nil
}

type pageQuery struct {
	Page int `validate:"gte=0"`
	Size int `validate:"gte=1,lte=100"`
}

func (h *Handler) pageQueryParams(r *http.Request) (pageQuery, error) {
	query := pageQuery{Page: 0, Size: 10}

	if raw := h.queryParam(r, "page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return pageQuery{}, fmt.Errorf("%w: page must be an integer", usecase.ErrInvalidInput)
		}
		query.Page = value
	}
	if raw := h.queryParam(r, "size"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return pageQuery{}, fmt.Errorf("%w: size must be an integer", usecase.ErrInvalidInput)
		}
		query.Size = value
	}

	if err := h.validator.StructCtx(r.Context(), query); err != nil {
		return pageQuery{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return query, nil
}
