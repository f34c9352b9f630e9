package domain

type Zone string

const (
	ZoneUnclassified Zone = ""
	Zone1            Zone = "Zone 1: High Rate & High UIT"
	Zone2            Zone = "Zone 2: High Rate & Low UIT"
	Zone3            Zone = "Zone 3: Low Rate & High UIT"
	Zone4            Zone = "Zone 4: Low Rate & Low UIT"
)

// 固定的遍历顺序，保证转移矩阵和推荐结果的输出是确定性的
var ZoneOrder = []Zone{Zone1, Zone2, Zone3, Zone4}
