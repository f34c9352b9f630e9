package handler

type ContextKey string

var (
	PeriodCtxKey     ContextKey = "period"
	ComparisonCtxKey ContextKey = "comparison"
)
