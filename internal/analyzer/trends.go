package analyzer

import (
	"fmt"
	"sort"

	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/utils"
)

// 固定的推荐策略阈值，不开放给用户配置
const (
	deteriorationRateDrop = -10.0
	deteriorationIdleRise = 5.0
	zoneRateAttention     = -5.0
	zoneIdleAttention     = 3.0
)

const moversCount = 5

// Aggregate 计算两期对比表的趋势汇总，空表返回 false 以避免除零
func Aggregate(comparison []domain.ComparisonRecord) (*domain.TrendSummary, bool) {
	if len(comparison) == 0 {
		return nil, false
	}

	rateChanges := make([]float64, len(comparison))
	idleChanges := make([]float64, len(comparison))
	improved := 0
	stable := 0
	for i, row := range comparison {
		rateChanges[i] = row.RateChange
		idleChanges[i] = row.IdleChange
		if row.RateChange > 0 && row.IdleChange < 0 {
			improved++
		}
		if !row.ZoneChanged {
			stable++
		}
	}

	return &domain.TrendSummary{
		MeanRateChange:       utils.Mean(rateChanges),
		MeanIdleChange:       utils.Mean(idleChanges),
		ImprovedOverallCount: improved,
		ZoneStabilityPct:     float64(stable) / float64(len(comparison)) * 100,
	}, true
}

// Movers 取 rate 和 idle 变化最大/最小的前 N 名，并列时保持输入顺序
func Movers(comparison []domain.ComparisonRecord) *domain.Movers {
	return &domain.Movers{
		TopRate:    takeMovers(comparison, rateMover, func(a, b domain.ComparisonRecord) bool { return a.RateChange > b.RateChange }),
		BottomRate: takeMovers(comparison, rateMover, func(a, b domain.ComparisonRecord) bool { return a.RateChange < b.RateChange }),
		TopIdle:    takeMovers(comparison, idleMover, func(a, b domain.ComparisonRecord) bool { return a.IdleChange > b.IdleChange }),
		BottomIdle: takeMovers(comparison, idleMover, func(a, b domain.ComparisonRecord) bool { return a.IdleChange < b.IdleChange }),
	}
}

func rateMover(row domain.ComparisonRecord) domain.Mover {
	return domain.Mover{ID: row.ID, Last: row.LastRate, Current: row.CurrentRate, Change: row.RateChange}
}

func idleMover(row domain.ComparisonRecord) domain.Mover {
	return domain.Mover{ID: row.ID, Last: row.LastIdle, Current: row.CurrentIdle, Change: row.IdleChange}
}

func takeMovers(comparison []domain.ComparisonRecord, convert func(domain.ComparisonRecord) domain.Mover, less func(a, b domain.ComparisonRecord) bool) []domain.Mover {
	sorted := append([]domain.ComparisonRecord{}, comparison...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	n := moversCount
	if len(sorted) < n {
		n = len(sorted)
	}

	movers := make([]domain.Mover, n)
	for i := 0; i < n; i++ {
		movers[i] = convert(sorted[i])
	}
	return movers
}

// Recommendations 根据固定策略生成推荐列表：
// 整体的恶化/改善计数，加上按本周分区分组的均值预警
func Recommendations(comparison []domain.ComparisonRecord) []domain.Recommendation {
	recommendations := []domain.Recommendation{}
	if len(comparison) == 0 {
		return recommendations
	}

	deteriorated := 0
	improved := 0
	for _, row := range comparison {
		if row.RateChange < deteriorationRateDrop && row.IdleChange > deteriorationIdleRise {
			deteriorated++
		}
		if row.RateChange > 0 && row.IdleChange < 0 {
			improved++
		}
	}

	if deteriorated > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Kind:    domain.RecommendationDeterioration,
			Count:   deteriorated,
			Message: fmt.Sprintf("%d 名员工出现明显恶化（Rate 下降超过 10 且 UIT 上升超过 5）", deteriorated),
		})
	}
	if improved > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Kind:    domain.RecommendationImprovement,
			Count:   improved,
			Message: fmt.Sprintf("%d 名员工整体改善", improved),
		})
	}

	// 按本周分区分组，固定顺序遍历保证输出确定
	byZone := make(map[domain.Zone][]domain.ComparisonRecord)
	for _, row := range comparison {
		byZone[row.CurrentZone] = append(byZone[row.CurrentZone], row)
	}

	for _, zone := range domain.ZoneOrder {
		rows := byZone[zone]
		if len(rows) == 0 {
			continue
		}

		rateChanges := make([]float64, len(rows))
		idleChanges := make([]float64, len(rows))
		for i, row := range rows {
			rateChanges[i] = row.RateChange
			idleChanges[i] = row.IdleChange
		}

		meanRate := utils.Mean(rateChanges)
		meanIdle := utils.Mean(idleChanges)

		if meanRate < zoneRateAttention {
			recommendations = append(recommendations, domain.Recommendation{
				Kind:       domain.RecommendationZoneRate,
				Zone:       zone,
				MeanChange: meanRate,
				Message:    fmt.Sprintf("%s: Rate 需要关注（平均变化 %.1f）", zone, meanRate),
			})
		}
		if meanIdle > zoneIdleAttention {
			recommendations = append(recommendations, domain.Recommendation{
				Kind:       domain.RecommendationZoneIdle,
				Zone:       zone,
				MeanChange: meanIdle,
				Message:    fmt.Sprintf("%s: UIT 需要关注（平均变化 %.1f%%）", zone, meanIdle),
			})
		}
	}

	return recommendations
}
