package domain

import (
	"time"

	"github.com/google/uuid"
)

type Period string

const (
	PeriodLast    Period = "last"
	PeriodCurrent Period = "current"
)

type WorkerRecord struct {
	ID          string  `json:"id"`
	Rate        float64 `json:"rate"`
	IdleTimePct float64 `json:"idleTimePct"`
	Zone        Zone    `json:"zone,omitempty"`
}

type Snapshot struct {
	UploadID          uuid.UUID      `json:"uploadID"`
	Period            Period         `json:"period"`
	Records           []WorkerRecord `json:"records"`
	DroppedNullRows   int            `json:"droppedNullRows"`
	DroppedDuplicates int            `json:"droppedDuplicates"`
	UploadedAt        time.Time      `json:"uploadedAt"`
}

type Thresholds struct {
	RateRef float64 `json:"rateRef"`
	IdleRef float64 `json:"idleRef"`
}
