package repository

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/analyzer"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/config"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/utils"
)

type ThresholdSource string

const (
	ThresholdSourceDefault  ThresholdSource = "default"
	ThresholdSourceExplicit ThresholdSource = "explicit"
)

// Session 持有一次会话的全部状态：两期校验后的原始记录、当前阈值
// 以及派生出来的对比表。任何输入变化都会从原始记录重新算一遍，
// 不持久化任何东西。
type Session struct {
	cfg *config.Config

	mu         sync.RWMutex
	raw        map[domain.Period][]domain.WorkerRecord
	snapshots  map[domain.Period]*domain.Snapshot
	thresholds domain.Thresholds
	explicit   bool
	comparison []domain.ComparisonRecord
}

func NewSession(cfg *config.Config) *Session {
	return &Session{
		cfg:       cfg,
		raw:       make(map[domain.Period][]domain.WorkerRecord),
		snapshots: make(map[domain.Period]*domain.Snapshot),
	}
}

// PutSnapshot 存入一期校验后的数据并触发重算，返回带上传元信息的快照
func (s *Session) PutSnapshot(period domain.Period, records []domain.WorkerRecord, droppedNull, droppedDuplicates int) *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw[period] = records
	s.snapshots[period] = &domain.Snapshot{
		UploadID:          uuid.New(),
		Period:            period,
		DroppedNullRows:   droppedNull,
		DroppedDuplicates: droppedDuplicates,
		UploadedAt:        time.Now(),
	}

	// 本周数据重新上传后，默认阈值要基于新数据的中位数重算
	if period == domain.PeriodCurrent && !s.explicit {
		s.thresholds = medianThresholds(records)
	}

	s.recompute()

	slog.Info("快照已更新", "period", period, "uploadID", s.snapshots[period].UploadID, "rows", len(records))
	return s.cloneSnapshot(period)
}

// SetThresholds 设置显式阈值并触发重算，直到下次本周数据上传前一直生效
func (s *Session) SetThresholds(t domain.Thresholds) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.thresholds = t
	s.explicit = true
	s.recompute()

	slog.Info("阈值已更新", "rateRef", t.RateRef, "idleRef", t.IdleRef)
}

func (s *Session) Thresholds() (domain.Thresholds, ThresholdSource) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	source := ThresholdSourceDefault
	if s.explicit {
		source = ThresholdSourceExplicit
	}
	return s.thresholds, source
}

// Snapshot 返回某一期分区后的快照，未上传时返回 false
func (s *Session) Snapshot(period domain.Period) (*domain.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.snapshots[period]; !exists {
		return nil, false
	}
	return s.cloneSnapshot(period), true
}

// Comparison 返回两期对比表，任一期缺失时返回 false
func (s *Session) Comparison() ([]domain.ComparisonRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.comparison == nil {
		return nil, false
	}
	return append([]domain.ComparisonRecord{}, s.comparison...), true
}

// recompute 用当前阈值对两期原始记录重新分区并重建对比表。
// 调用方必须已持有写锁。
func (s *Session) recompute() {
	for period, records := range s.raw {
		s.snapshots[period].Records = analyzer.ClassifySnapshot(records, s.thresholds)
	}

	last, hasLast := s.snapshots[domain.PeriodLast]
	current, hasCurrent := s.snapshots[domain.PeriodCurrent]
	if !hasLast || !hasCurrent {
		s.comparison = nil
		return
	}

	comparison, err := analyzer.Merge(last.Records, current.Records)
	if err != nil {
		// 分区刚刚完成，这里理论上不可能出错
		slog.Error("重建对比表失败", "error", err)
		s.comparison = nil
		return
	}
	s.comparison = comparison
}

func (s *Session) cloneSnapshot(period domain.Period) *domain.Snapshot {
	snapshot := *s.snapshots[period]
	snapshot.Records = append([]domain.WorkerRecord{}, snapshot.Records...)
	return &snapshot
}

func medianThresholds(records []domain.WorkerRecord) domain.Thresholds {
	rates := make([]float64, len(records))
	idles := make([]float64, len(records))
	for i, record := range records {
		rates[i] = record.Rate
		idles[i] = record.IdleTimePct
	}
	return domain.Thresholds{
		RateRef: utils.Median(rates),
		IdleRef: utils.Median(idles),
	}
}
