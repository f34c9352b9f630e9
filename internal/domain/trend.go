package domain

type TrendSummary struct {
	MeanRateChange       float64 `json:"meanRateChange"`
	MeanIdleChange       float64 `json:"meanIdleChange"`
	ImprovedOverallCount int     `json:"improvedOverallCount"`
	ZoneStabilityPct     float64 `json:"zoneStabilityPct"`
}

type Mover struct {
	ID      string  `json:"id"`
	Last    float64 `json:"last"`
	Current float64 `json:"current"`
	Change  float64 `json:"change"`
}

type Movers struct {
	TopRate    []Mover `json:"topRate"`
	BottomRate []Mover `json:"bottomRate"`
	TopIdle    []Mover `json:"topIdle"`
	BottomIdle []Mover `json:"bottomIdle"`
}

type RecommendationKind string

const (
	RecommendationDeterioration RecommendationKind = "deterioration"
	RecommendationImprovement   RecommendationKind = "improvement"
	RecommendationZoneRate      RecommendationKind = "zoneRate"
	RecommendationZoneIdle      RecommendationKind = "zoneIdle"
)

type Recommendation struct {
	Kind       RecommendationKind `json:"kind"`
	Zone       Zone               `json:"zone,omitempty"`
	Count      int                `json:"count,omitempty"`
	MeanChange float64            `json:"meanChange,omitempty"`
	Message    string             `json:"message"`
}
