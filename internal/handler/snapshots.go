package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/dataset"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

func (h *Handler) UploadSnapshot(w http.ResponseWriter, r *http.Request) {
	period := r.Context().Value(PeriodCtxKey).(domain.Period)

	r.Body = http.MaxBytesReader(w, r.Body, h.config.Upload.MaxFileBytes)
	if err := r.ParseMultipartForm(h.config.Upload.MaxFileBytes); err != nil {
		h.errorResponse(w, r, "无法解析上传的文件，请检查文件大小和格式")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.errorResponse(w, r, "请求中缺少名为 file 的文件字段")
		return
	}
	defer file.Close()

	// 校验失败只中止本次上传，不影响已有的会话状态
	result, err := dataset.Load(file, period)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	snapshot := h.session.PutSnapshot(period, result.Records, result.DroppedNullRows, result.DroppedDuplicates)

	h.successResponse(w, r, "上传成功", struct {
		UploadID          uuid.UUID     `json:"uploadID"`
		Period            domain.Period `json:"period"`
		Rows              int           `json:"rows"`
		DroppedNullRows   int           `json:"droppedNullRows"`
		DroppedDuplicates int           `json:"droppedDuplicates"`
		UploadedAt        time.Time     `json:"uploadedAt"`
	}{
		UploadID:          snapshot.UploadID,
		Period:            snapshot.Period,
		Rows:              len(snapshot.Records),
		DroppedNullRows:   snapshot.DroppedNullRows,
		DroppedDuplicates: snapshot.DroppedDuplicates,
		UploadedAt:        snapshot.UploadedAt,
	})
}

func (h *Handler) GetSnapshotSummary(w http.ResponseWriter, r *http.Request) {
	period := r.Context().Value(PeriodCtxKey).(domain.Period)

	snapshot, exists := h.session.Snapshot(period)
	if !exists {
		h.errorResponse(w, r, "该时期的数据尚未上传")
		return
	}

	summary, ok := dataset.Summarize(snapshot.Records)
	if !ok {
		h.successResponse(w, r, "该时期没有有效数据", nil)
		return
	}

	h.successResponse(w, r, "获取快照统计成功", summary)
}
