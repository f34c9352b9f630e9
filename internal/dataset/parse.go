package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

// 上传文件使用的源列名，进入核心计算前统一映射为规范字段
const (
	ColumnWorkerID = "User_Id"
	ColumnRate     = "Stow_Rate"
	ColumnIdle     = "Turnaway_Percentage"
)

var requiredColumns = []string{ColumnWorkerID, ColumnRate, ColumnIdle}

// 解析出来的原始行，rate/idle 为 nil 表示该单元格为空值
type rawRow struct {
	line int
	id   string
	rate *float64
	idle *float64
}

func Parse(r io.Reader, period domain.Period) ([]rawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &domain.SchemaError{Period: period, MissingColumns: requiredColumns}
		}
		return nil, fmt.Errorf("无法读取表头: %w", err)
	}

	// 定位必需列，多余的列直接忽略
	index := make(map[string]int)
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	missing := []string{}
	for _, col := range requiredColumns {
		if _, exists := index[col]; !exists {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{Period: period, MissingColumns: missing}
	}

	rows := []rawRow{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("无法读取第 %d 行: %w", line+1, err)
		}
		line++

		row := rawRow{line: line, id: strings.TrimSpace(field(record, index[ColumnWorkerID]))}

		row.rate, err = parseCell(field(record, index[ColumnRate]), line, ColumnRate)
		if err != nil {
			return nil, err
		}
		row.idle, err = parseCell(field(record, index[ColumnIdle]), line, ColumnIdle)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}

// 空单元格和常见的空值标记都视为空值，解析不了的数字则是硬错误
func parseCell(cell string, line int, column string) (*float64, error) {
	trimmed := strings.TrimSpace(cell)
	switch strings.ToLower(trimmed) {
	case "", "na", "n/a", "nan", "null", "none":
		return nil, nil
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("第 %d 行 %s 列的数值无法解析: %q", line, column, trimmed)
	}
	return &v, nil
}
