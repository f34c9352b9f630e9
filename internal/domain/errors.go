package domain

import (
	"fmt"
	"strings"
)

// 缺少必需列时整个时期的数据都会被拒绝
type SchemaError struct {
	Period         Period
	MissingColumns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s 数据缺少必需的列: %s", periodLabel(e.Period), strings.Join(e.MissingColumns, ", "))
}

// 去掉空值行之后仍然存在越界数值时整表作废
type RangeError struct {
	Period Period
	Row    int
	Column string
	Value  float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s 数据存在非法数值（第 %d 行，%s = %v）", periodLabel(e.Period), e.Row, e.Column, e.Value)
}

// 合并的前置条件被破坏（记录未分区或缺少工号）
type MergeError struct {
	Reason string
}

func (e *MergeError) Error() string {
	return "无法合并两期数据: " + e.Reason
}

func periodLabel(p Period) string {
	switch p {
	case PeriodLast:
		return "上周"
	case PeriodCurrent:
		return "本周"
	default:
		return string(p)
	}
}
