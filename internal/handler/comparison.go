package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/analyzer"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

// 查询参数 zone 的取值 1~4 对应四个分区，留空表示不过滤
func parseZoneParam(r *http.Request) (domain.Zone, bool) {
	switch r.URL.Query().Get("zone") {
	case "":
		return domain.ZoneUnclassified, true
	case "1":
		return domain.Zone1, true
	case "2":
		return domain.Zone2, true
	case "3":
		return domain.Zone3, true
	case "4":
		return domain.Zone4, true
	default:
		return domain.ZoneUnclassified, false
	}
}

func (h *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	comparison := r.Context().Value(ComparisonCtxKey).([]domain.ComparisonRecord)

	zone, ok := parseZoneParam(r)
	if !ok {
		h.errorResponse(w, r, "无效的分区参数，只支持 1~4")
		return
	}

	h.successResponse(w, r, "获取对比表成功", analyzer.FilterComparisonByZone(comparison, zone))
}

func (h *Handler) GetComparativeMetrics(w http.ResponseWriter, r *http.Request) {
	zone, ok := parseZoneParam(r)
	if !ok {
		h.errorResponse(w, r, "无效的分区参数，只支持 1~4")
		return
	}

	last, _ := h.session.Snapshot(domain.PeriodLast)
	current, _ := h.session.Snapshot(domain.PeriodCurrent)

	// 每期按各自的分区归属过滤
	metrics, ok := analyzer.Metrics(
		analyzer.FilterByZone(last.Records, zone),
		analyzer.FilterByZone(current.Records, zone),
	)
	if !ok {
		h.successResponse(w, r, "本周没有可统计的数据", nil)
		return
	}

	h.successResponse(w, r, "获取对比指标成功", metrics)
}

func (h *Handler) GetTransitions(w http.ResponseWriter, r *http.Request) {
	last, _ := h.session.Snapshot(domain.PeriodLast)
	current, _ := h.session.Snapshot(domain.PeriodCurrent)

	matrix, ok := analyzer.Transitions(last.Records, current.Records)
	if !ok {
		h.successResponse(w, r, "没有足够的数据计算分区转移", nil)
		return
	}

	h.successResponse(w, r, "获取分区转移矩阵成功", matrix)
}

func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	comparison := r.Context().Value(ComparisonCtxKey).([]domain.ComparisonRecord)

	summary, ok := analyzer.Aggregate(comparison)
	if !ok {
		h.successResponse(w, r, "两期数据没有重叠的工号，无法计算趋势", nil)
		return
	}

	h.successResponse(w, r, "获取趋势分析成功", struct {
		Summary         *domain.TrendSummary    `json:"summary"`
		Movers          *domain.Movers          `json:"movers"`
		Recommendations []domain.Recommendation `json:"recommendations"`
	}{
		Summary:         summary,
		Movers:          analyzer.Movers(comparison),
		Recommendations: analyzer.Recommendations(comparison),
	})
}
