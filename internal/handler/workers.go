package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/analyzer"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

func (h *Handler) GetWorkerReport(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")
	comparison := r.Context().Value(ComparisonCtxKey).([]domain.ComparisonRecord)

	// 找不到工号不是错误，只是没有结果
	report, found := analyzer.Report(workerID, comparison)
	if !found {
		h.successResponse(w, r, "未找到该工号的对比记录", nil)
		return
	}

	h.successResponse(w, r, "获取个人报告成功", report)
}
