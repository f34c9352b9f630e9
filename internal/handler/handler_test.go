package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/config"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/repository"
)

func newTestHandler(t *testing.T) *Handler {
	cfg := &config.Config{}
	cfg.Upload.MaxFileBytes = 10 << 20
	cfg.Export.FilenamePrefix = "performance_comparison"

	h, err := NewHandler(cfg, repository.NewSession(cfg))
	require.NoError(t, err)
	h.RegisterRoutes()
	return h
}

func doRequest(t *testing.T, h *Handler, method, path string, body *bytes.Buffer, contentType string) (*httptest.ResponseRecorder, Response) {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	resp := Response{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func uploadCSV(t *testing.T, h *Handler, period, csvBody string) Response {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile("file", period+".csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	_, resp := doRequest(t, h, http.MethodPost, "/snapshots/"+period, buf, writer.FormDataContentType())
	return resp
}

func putThresholds(t *testing.T, h *Handler, body string) Response {
	_, resp := doRequest(t, h, http.MethodPut, "/thresholds", bytes.NewBufferString(body), "application/json")
	return resp
}

const (
	lastWeekCSV    = "User_Id,Stow_Rate,Turnaway_Percentage\nA,50,10\n"
	currentWeekCSV = "User_Id,Stow_Rate,Turnaway_Percentage\nA,60,5\n"
)

func TestEndToEndComparison(t *testing.T) {
	h := newTestHandler(t)

	resp := uploadCSV(t, h, "last", lastWeekCSV)
	require.True(t, resp.Success, resp.Message)

	resp = uploadCSV(t, h, "current", currentWeekCSV)
	require.True(t, resp.Success, resp.Message)

	resp = putThresholds(t, h, `{"rateRef": 55, "idleRef": 8}`)
	require.True(t, resp.Success, resp.Message)

	_, resp = doRequest(t, h, http.MethodGet, "/comparison", nil, "")
	require.True(t, resp.Success, resp.Message)

	rows, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)

	row := rows[0].(map[string]any)
	assert.Equal(t, "A", row["id"])
	assert.Equal(t, 10.0, row["rateChange"])
	assert.Equal(t, -5.0, row["idleChange"])
	assert.Equal(t, "Zone 2: High Rate & Low UIT", row["currentZone"])
	assert.Equal(t, "Zone 3: Low Rate & High UIT", row["lastZone"])
	assert.Equal(t, true, row["zoneChanged"])
}

func TestUploadRejectsBadData(t *testing.T) {
	h := newTestHandler(t)

	// 缺少必需列
	resp := uploadCSV(t, h, "last", "User_Id,Turnaway_Percentage\nA,10\n")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Stow_Rate")

	// 越界数值整表作废
	resp = uploadCSV(t, h, "current", "User_Id,Stow_Rate,Turnaway_Percentage\nA,50,150\n")
	assert.False(t, resp.Success)

	// 无效的时期
	resp = uploadCSV(t, h, "tomorrow", lastWeekCSV)
	assert.False(t, resp.Success)
}

func TestUploadReportsDroppedRows(t *testing.T) {
	h := newTestHandler(t)

	csv := "User_Id,Stow_Rate,Turnaway_Percentage\nA,50,10\nB,,3\nA,70,1\n"
	resp := uploadCSV(t, h, "last", csv)
	require.True(t, resp.Success, resp.Message)

	data := resp.Data.(map[string]any)
	assert.Equal(t, 1.0, data["rows"])
	assert.Equal(t, 1.0, data["droppedNullRows"])
	assert.Equal(t, 1.0, data["droppedDuplicates"])
	assert.NotEmpty(t, data["uploadID"])
}

func TestComparisonRequiresBothSnapshots(t *testing.T) {
	h := newTestHandler(t)

	_, resp := doRequest(t, h, http.MethodGet, "/comparison", nil, "")
	assert.False(t, resp.Success)

	uploadCSV(t, h, "last", lastWeekCSV)
	_, resp = doRequest(t, h, http.MethodGet, "/comparison/trends", nil, "")
	assert.False(t, resp.Success)
}

func TestDefaultThresholdsAreMedians(t *testing.T) {
	h := newTestHandler(t)

	csv := "User_Id,Stow_Rate,Turnaway_Percentage\nA,40,10\nB,50,20\nC,60,30\n"
	uploadCSV(t, h, "current", csv)

	_, resp := doRequest(t, h, http.MethodGet, "/thresholds", nil, "")
	require.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, 50.0, data["rateRef"])
	assert.Equal(t, 20.0, data["idleRef"])
	assert.Equal(t, "default", data["source"])
}

func TestUpdateThresholdsValidation(t *testing.T) {
	h := newTestHandler(t)

	resp := putThresholds(t, h, `{"rateRef": 55, "idleRef": 101}`)
	assert.False(t, resp.Success)

	resp = putThresholds(t, h, `{"rateRef": 55}`)
	assert.False(t, resp.Success)

	resp = putThresholds(t, h, `{"rateRef": 55, "idleRef": 8}`)
	assert.True(t, resp.Success)
}

func TestWorkerReport(t *testing.T) {
	h := newTestHandler(t)
	uploadCSV(t, h, "last", "User_Id,Stow_Rate,Turnaway_Percentage\nA,50,10\nB,80,2\n")
	uploadCSV(t, h, "current", "User_Id,Stow_Rate,Turnaway_Percentage\nA,45,12\nB,85,1\n")
	putThresholds(t, h, `{"rateRef": 55, "idleRef": 8}`)

	_, resp := doRequest(t, h, http.MethodGet, "/workers/A/report", nil, "")
	require.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "A", data["id"])
	assert.ElementsMatch(t, []any{"rate", "idle_time"}, data["improvementAreas"])

	// 找不到工号不是错误，data 为空
	_, resp = doRequest(t, h, http.MethodGet, "/workers/NOBODY/report", nil, "")
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestTrendsAndTransitions(t *testing.T) {
	h := newTestHandler(t)
	uploadCSV(t, h, "last", "User_Id,Stow_Rate,Turnaway_Percentage\nA,50,10\nB,80,2\n")
	uploadCSV(t, h, "current", "User_Id,Stow_Rate,Turnaway_Percentage\nA,60,5\nB,85,1\n")
	putThresholds(t, h, `{"rateRef": 55, "idleRef": 8}`)

	_, resp := doRequest(t, h, http.MethodGet, "/comparison/trends", nil, "")
	require.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	summary := data["summary"].(map[string]any)
	assert.Equal(t, 2.0, summary["improvedOverallCount"])

	_, resp = doRequest(t, h, http.MethodGet, "/comparison/transitions", nil, "")
	require.True(t, resp.Success)
	matrix := resp.Data.(map[string]any)
	assert.Equal(t, 2.0, matrix["grandTotal"])
}

func TestExportEndpoints(t *testing.T) {
	h := newTestHandler(t)
	uploadCSV(t, h, "last", lastWeekCSV)
	uploadCSV(t, h, "current", currentWeekCSV)
	putThresholds(t, h, `{"rateRef": 55, "idleRef": 8}`)

	rec, _ := doRequest(t, h, http.MethodGet, "/export/csv", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "performance_comparison_")
	assert.Contains(t, rec.Body.String(), "ID,Last_Rate,Current_Rate")

	rec, _ = doRequest(t, h, http.MethodGet, "/export/excel", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, rec.Body.Len())
}

func TestComparisonZoneFilter(t *testing.T) {
	h := newTestHandler(t)
	uploadCSV(t, h, "last", "User_Id,Stow_Rate,Turnaway_Percentage\nA,50,10\nB,80,2\n")
	uploadCSV(t, h, "current", "User_Id,Stow_Rate,Turnaway_Percentage\nA,50,10\nB,85,1\n")
	putThresholds(t, h, `{"rateRef": 55, "idleRef": 8}`)

	// A 本周在 Zone 3，B 本周在 Zone 2
	_, resp := doRequest(t, h, http.MethodGet, "/comparison?zone=2", nil, "")
	require.True(t, resp.Success)
	rows := resp.Data.([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "B", rows[0].(map[string]any)["id"])

	_, resp = doRequest(t, h, http.MethodGet, "/comparison?zone=9", nil, "")
	assert.False(t, resp.Success)
}

func TestSnapshotSummary(t *testing.T) {
	h := newTestHandler(t)

	_, resp := doRequest(t, h, http.MethodGet, "/snapshots/current/summary", nil, "")
	assert.False(t, resp.Success)

	uploadCSV(t, h, "current", "User_Id,Stow_Rate,Turnaway_Percentage\nA,40,10\nB,50,20\nC,60,30\n")

	_, resp = doRequest(t, h, http.MethodGet, "/snapshots/current/summary", nil, "")
	require.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, 3.0, data["total"])
	assert.Equal(t, 50.0, data["averageRate"])
}

func TestComparativeMetrics(t *testing.T) {
	h := newTestHandler(t)
	uploadCSV(t, h, "last", "User_Id,Stow_Rate,Turnaway_Percentage\nA,40,10\n")
	uploadCSV(t, h, "current", "User_Id,Stow_Rate,Turnaway_Percentage\nA,50,8\nB,70,12\n")
	putThresholds(t, h, `{"rateRef": 55, "idleRef": 8}`)

	_, resp := doRequest(t, h, http.MethodGet, "/comparison/metrics", nil, "")
	require.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, 2.0, data["workerCount"])
	assert.Equal(t, 1.0, data["workerCountDelta"])
	assert.Equal(t, 60.0, data["averageRate"])
}
