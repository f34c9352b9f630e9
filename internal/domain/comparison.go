package domain

type ComparisonRecord struct {
	ID          string  `json:"id"`
	LastRate    float64 `json:"lastRate"`
	CurrentRate float64 `json:"currentRate"`
	RateChange  float64 `json:"rateChange"`
	LastIdle    float64 `json:"lastIdle"`
	CurrentIdle float64 `json:"currentIdle"`
	IdleChange  float64 `json:"idleChange"`
	LastZone    Zone    `json:"lastZone"`
	CurrentZone Zone    `json:"currentZone"`
	ZoneChanged bool    `json:"zoneChanged"`
}

type ComparativeMetrics struct {
	WorkerCount      int     `json:"workerCount"`
	WorkerCountDelta int     `json:"workerCountDelta"`
	AverageRate      float64 `json:"averageRate"`
	AverageRateDelta float64 `json:"averageRateDelta"`
	AverageIdle      float64 `json:"averageIdle"`
	AverageIdleDelta float64 `json:"averageIdleDelta"`
	MedianRate       float64 `json:"medianRate"`
	MedianRateDelta  float64 `json:"medianRateDelta"`
}
