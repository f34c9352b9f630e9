package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/export"
)

func (h *Handler) exportFilename(ext string) string {
	return fmt.Sprintf("%s_%s.%s", h.config.Export.FilenamePrefix, time.Now().Format("20060102"), ext)
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	comparison := r.Context().Value(ComparisonCtxKey).([]domain.ComparisonRecord)
	if len(comparison) == 0 {
		h.errorResponse(w, r, export.ErrNoData.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exportFilename("csv")))

	if err := export.WriteComparisonCSV(w, comparison); err != nil {
		// 响应头已经写出去了，只能记日志
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	comparison := r.Context().Value(ComparisonCtxKey).([]domain.ComparisonRecord)

	workbook, err := export.BuildWorkbook(comparison)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exportFilename("xlsx")))

	if err := workbook.Write(w); err != nil {
		h.logInternalServerError(r, err)
	}
}
