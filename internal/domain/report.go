package domain

type WorkerReport struct {
	ID               string   `json:"id"`
	CurrentZone      Zone     `json:"currentZone"`
	PreviousZone     Zone     `json:"previousZone"`
	RateChange       float64  `json:"rateChange"`
	IdleChange       float64  `json:"idleChange"`
	ImprovementAreas []string `json:"improvementAreas"`
}

type SnapshotSummary struct {
	Total            int          `json:"total"`
	AverageRate      float64      `json:"averageRate"`
	MedianRate       float64      `json:"medianRate"`
	AverageIdle      float64      `json:"averageIdle"`
	MedianIdle       float64      `json:"medianIdle"`
	ZoneDistribution map[Zone]int `json:"zoneDistribution"`
}
