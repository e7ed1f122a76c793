package accesscodehandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	accesscodeservice "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/application"
	authhandlers "github.com/Black-And-White-Club/clip-arena/app/modules/auth/infrastructure/handlers"
	"github.com/Black-And-White-Club/clip-arena/pkg/httpx"
	"go.opentelemetry.io/otel/trace"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AccessCodeHandlers implements the Handlers interface.
type AccessCodeHandlers struct {
	service accesscodeservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewAccessCodeHandlers creates a new AccessCodeHandlers.
func NewAccessCodeHandlers(service accesscodeservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &AccessCodeHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

type generateRequest struct {
	Quantity   int `json:"quantity"`
	ExpiryDays int `json:"expiry_days"`
}

type codeRequest struct {
	Code string `json:"code"`
}

func (h *AccessCodeHandlers) HandleGenerateCodes(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req generateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}

	codes, err := h.service.GenerateCodes(r.Context(), actor, req.Quantity, req.ExpiryDays)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusCreated, codes)
}

func (h *AccessCodeHandlers) HandleListCodes(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	codes, err := h.service.ListCodes(r.Context(), actor)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, codes)
}

func (h *AccessCodeHandlers) HandleExportCodes(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	data, err := h.service.ExportCodesXLSX(r.Context(), actor)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}

	filename := fmt.Sprintf("access-codes-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *AccessCodeHandlers) HandleValidateCode(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}
	if req.Code == "" {
		httpx.BadRequest(w, "code is required")
		return
	}

	result, err := h.service.ValidateCode(r.Context(), req.Code)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, result)
}

func (h *AccessCodeHandlers) HandleRedeemCode(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req codeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, err.Error())
		return
	}
	if req.Code == "" {
		httpx.BadRequest(w, "code is required")
		return
	}

	result, err := h.service.RedeemCode(r.Context(), req.Code, actor)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, result)
}

func (h *AccessCodeHandlers) HandleGetReferrals(w http.ResponseWriter, r *http.Request) {
	actor, ok := authhandlers.ActorOrUnauthorized(w, r)
	if !ok {
		return
	}

	stats, err := h.service.GetReferralStats(r.Context(), actor.UserID)
	if err != nil {
		httpx.Error(r.Context(), w, h.logger, err)
		return
	}
	httpx.OK(w, http.StatusOK, stats)
}
