package utils

import (
	"math"
	"sort"
)

// 空切片返回 0，调用方需要自行保证切片非空或者接受 0 值
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func Median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}

	sorted := append([]float64{}, vals...) // 复制数组，避免修改原数组
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// 只用于展示层，核心计算一律保留完整精度
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
