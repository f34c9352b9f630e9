package domain

// 行是上周观察到的分区，列是本周观察到的分区。
// 单元格按工号配对计数，边际合计则覆盖各自时期的全部记录，
// 因此两期工号集合不一致时合计可以大于单元格之和。
type TransitionMatrix struct {
	LastZones    []Zone               `json:"lastZones"`
	CurrentZones []Zone               `json:"currentZones"`
	Cells        map[Zone]map[Zone]int `json:"cells"`
	RowTotals    map[Zone]int         `json:"rowTotals"`
	ColumnTotals map[Zone]int         `json:"columnTotals"`
	GrandTotal   int                  `json:"grandTotal"`
}
