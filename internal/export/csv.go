package export

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

var ErrNoData = errors.New("没有可导出的数据")

var csvHeader = []string{
	"ID",
	"Last_Rate", "Current_Rate", "Rate_Change",
	"Last_UIT", "Current_UIT", "UIT_Change",
	"Last_Zone", "Current_Zone", "Zone_Changed",
}

// WriteComparisonCSV 把对比表按行原样导出，数值保留完整精度
func WriteComparisonCSV(w io.Writer, comparison []domain.ComparisonRecord) error {
	if len(comparison) == 0 {
		return ErrNoData
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range comparison {
		record := []string{
			row.ID,
			formatFloat(row.LastRate), formatFloat(row.CurrentRate), formatFloat(row.RateChange),
			formatFloat(row.LastIdle), formatFloat(row.CurrentIdle), formatFloat(row.IdleChange),
			string(row.LastZone), string(row.CurrentZone), strconv.FormatBool(row.ZoneChanged),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
