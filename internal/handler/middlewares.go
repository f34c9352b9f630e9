package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// snapshotPeriod 校验路径中的时期参数，只接受 last 和 current
func (h *Handler) snapshotPeriod(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period := domain.Period(chi.URLParam(r, "period"))
		if period != domain.PeriodLast && period != domain.PeriodCurrent {
			h.errorResponse(w, r, "无效的时期，只支持 last 和 current")
			return
		}

		ctx := context.WithValue(r.Context(), PeriodCtxKey, period)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireComparison 确保两期快照都已上传，并把对比表附在 context 中
func (h *Handler) requireComparison(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		comparison, exists := h.session.Comparison()
		if !exists {
			h.errorResponse(w, r, "请先上传上周和本周两期数据")
			return
		}

		ctx := context.WithValue(r.Context(), ComparisonCtxKey, comparison)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
