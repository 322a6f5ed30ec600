package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/config"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"
)

const (
	callbackPopTimeout = 5 * time.Second
	callbackMaxRetries = 3
	callbackRetryDelay = 2 * time.Second
)

// CallbackDequeuer is the blocking side of the callback queue.
type CallbackDequeuer interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.OrderCallback, error)
	Enqueue(ctx context.Context, payload domain.OrderCallback) error
}

// CallbackSender drains the order callback queue and POSTs each status
// change to the orders service. A payload that keeps failing goes back to
// the queue tail instead of being lost.
type CallbackSender struct {
	logger *slog.Logger
	queue  CallbackDequeuer
	cfg    config.CallbackConfig
	client *http.Client
}

func NewCallbackSender(logger *slog.Logger, queue CallbackDequeuer, cfg config.CallbackConfig) *CallbackSender {
	return &CallbackSender{
		logger: logger,
		queue:  queue,
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *CallbackSender) Run(ctx context.Context) {
	if w.cfg.Disabled || w.cfg.URL == "" {
		w.logger.Info("order callback sender disabled")
		return
	}

	w.logger.Info("order callback sender started", slog.String("url", w.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("order callback sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := w.queue.BRPop(ctx, callbackPopTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.Error("callback dequeue failed", slog.Any("error", err))
			time.Sleep(time.Second)
			continue
		}

		if err := w.sendWithRetry(ctx, payload); err != nil {
			w.logger.Error("callback delivery failed, requeueing",
				slog.String("order_id", payload.OrderID.String()),
				slog.String("status", string(payload.Status)),
				slog.Any("error", err),
			)
			if qerr := w.queue.Enqueue(ctx, payload); qerr != nil {
				w.logger.Error("callback requeue failed", slog.Any("error", qerr))
			}
			time.Sleep(callbackRetryDelay)
		}
	}
}

func (w *CallbackSender) sendWithRetry(ctx context.Context, payload domain.OrderCallback) error {
	var lastErr error
	for attempt := 1; attempt <= callbackMaxRetries; attempt++ {
		if err := w.send(ctx, payload); err != nil {
			lastErr = err
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(callbackRetryDelay * time.Duration(attempt)):
			}
			continue
		}

		w.logger.Debug("order callback delivered",
			slog.String("order_id", payload.OrderID.String()),
			slog.String("status", string(payload.Status)),
			slog.Int("attempt", attempt),
		)
		return nil
	}
	return lastErr
}

func (w *CallbackSender) send(ctx context.Context, payload domain.OrderCallback) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal callback: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post callback: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("callback endpoint returned %d", resp.StatusCode)
	}
	return nil
}
