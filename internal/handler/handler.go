package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/config"
	"github.com/sysu-ecnc-dev/perf-compare/backend/internal/repository"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	session    *repository.Session
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, session *repository.Session) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		session:    session,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 快照上传与单期统计
	h.Mux.Route("/snapshots/{period}", func(r chi.Router) {
		r.Use(h.snapshotPeriod)
		r.Post("/", h.UploadSnapshot)
		r.Get("/summary", h.GetSnapshotSummary)
	})

	// 分区参考阈值
	h.Mux.Route("/thresholds", func(r chi.Router) {
		r.Get("/", h.GetThresholds)
		r.Put("/", h.UpdateThresholds)
	})

	// 以下 API 都要求两期快照均已上传
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.requireComparison)
		r.Route("/comparison", func(r chi.Router) {
			r.Get("/", h.GetComparison)
			r.Get("/metrics", h.GetComparativeMetrics)
			r.Get("/transitions", h.GetTransitions)
			r.Get("/trends", h.GetTrends)
		})
		r.Get("/workers/{id}/report", h.GetWorkerReport)
		r.Route("/export", func(r chi.Router) {
			r.Get("/csv", h.ExportCSV)
			r.Get("/excel", h.ExportExcel)
		})
	})
}
