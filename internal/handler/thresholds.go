package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/repository"
)

func (h *Handler) GetThresholds(w http.ResponseWriter, r *http.Request) {
	thresholds, source := h.session.Thresholds()

	h.successResponse(w, r, "获取阈值成功", struct {
		RateRef float64                    `json:"rateRef"`
		IdleRef float64                    `json:"idleRef"`
		Source  repository.ThresholdSource `json:"source"`
	}{
		RateRef: thresholds.RateRef,
		IdleRef: thresholds.IdleRef,
		Source:  source,
	})
}

func (h *Handler) UpdateThresholds(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RateRef *float64 `json:"rateRef" validate:"required"`
		IdleRef *float64 `json:"idleRef" validate:"required,gte=0,lte=100"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	thresholds := domain.Thresholds{RateRef: *req.RateRef, IdleRef: *req.IdleRef}
	h.session.SetThresholds(thresholds)

	h.successResponse(w, r, "更新阈值成功", thresholds)
}
