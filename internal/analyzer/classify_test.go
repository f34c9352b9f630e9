package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

func TestClassify_BoundaryTies(t *testing.T) {
	thresholds := domain.Thresholds{RateRef: 55, IdleRef: 8}

	tests := []struct {
		name string
		rate float64
		idle float64
		want domain.Zone
	}{
		{"两项都等于参考值落在 Zone 4", 55, 8, domain.Zone4},
		{"rate 高于参考值且 idle 等于参考值落在 Zone 2", 56, 8, domain.Zone2},
		{"rate 等于参考值且 idle 高于参考值落在 Zone 3", 55, 9, domain.Zone3},
		{"两项都高于参考值落在 Zone 1", 56, 9, domain.Zone1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rate, tt.idle, thresholds))
		})
	}
}

// 四个分区两两互斥且完全覆盖定义域
func TestClassify_Partition(t *testing.T) {
	thresholds := domain.Thresholds{RateRef: 50, IdleRef: 50}

	for rate := 0.0; rate <= 100; rate += 12.5 {
		for idle := 0.0; idle <= 100; idle += 12.5 {
			zone := Classify(rate, idle, thresholds)
			assert.NotEqual(t, domain.ZoneUnclassified, zone)

			matched := 0
			if rate > thresholds.RateRef && idle > thresholds.IdleRef {
				matched++
				assert.Equal(t, domain.Zone1, zone)
			}
			if rate > thresholds.RateRef && idle <= thresholds.IdleRef {
				matched++
				assert.Equal(t, domain.Zone2, zone)
			}
			if rate <= thresholds.RateRef && idle > thresholds.IdleRef {
				matched++
				assert.Equal(t, domain.Zone3, zone)
			}
			if rate <= thresholds.RateRef && idle <= thresholds.IdleRef {
				matched++
				assert.Equal(t, domain.Zone4, zone)
			}
			assert.Equal(t, 1, matched)
		}
	}
}

func TestClassifySnapshot_Idempotent(t *testing.T) {
	thresholds := domain.Thresholds{RateRef: 50, IdleRef: 10}
	records := []domain.WorkerRecord{
		{ID: "A001", Rate: 60, IdleTimePct: 5},
		{ID: "A002", Rate: 40, IdleTimePct: 20},
	}

	once := ClassifySnapshot(records, thresholds)
	twice := ClassifySnapshot(once, thresholds)
	assert.Equal(t, once, twice)

	// 输入不能被修改
	assert.Equal(t, domain.ZoneUnclassified, records[0].Zone)
}
