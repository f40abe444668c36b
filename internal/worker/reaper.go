package worker

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/geo_risk_system/internal/config"
	"github.com/shenikar/geo_risk_system/internal/service"
	"github.com/sirupsen/logrus"
)

// ViewReaper - фоновый обработчик, освобождающий карты заброшенных экранов
type ViewReaper struct {
	views  service.ViewService
	logger *logrus.Logger
	cfg    *config.Config
}

// NewViewReaper создает новый ViewReaper
func NewViewReaper(views service.ViewService, logger *logrus.Logger, cfg *config.Config) *ViewReaper {
	return &ViewReaper{
		views:  views,
		logger: logger,
		cfg:    cfg,
	}
}

// Start запускает горутину, которая раз в ViewReapInterval снимает простаивающие экраны.
// Возвращаемый канал закрывается после остановки горутины
func (w *ViewReaper) Start(ctx context.Context) <-chan struct{} {
	w.logger.WithFields(logrus.Fields{
		"interval":     w.cfg.ViewReapInterval,
		"idle_timeout": w.cfg.ViewIdleTimeout,
	}).Info("Starting view reaper...")

	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(w.cfg.ViewReapInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping view reaper.")
				return
			case <-ticker.C:
				w.sweep(ctx)
			}
		}
	}()
	return done
}

func (w *ViewReaper) sweep(ctx context.Context) {
	count, err := w.views.UnmountIdle(ctx, w.cfg.ViewIdleTimeout)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		w.logger.WithError(err).Error("Failed to unmount idle views")
	}
	if count > 0 {
		w.logger.WithField("count", count).Info("Idle views unmounted")
	}
}
