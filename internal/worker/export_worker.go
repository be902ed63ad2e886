package worker

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain"
	"shareit/internal/export"

	"github.com/rs/zerolog"
)

// ExportTask — задание на выгрузку бронирований за период.
type ExportTask struct {
	From        time.Time
	To          time.Time
	RequestedBy int64
}

var ErrQueueFull = errors.New("export queue is full")

// ExportWorker пишет xlsx-отчеты в фоне, чтобы не держать HTTP-запрос.
type ExportWorker struct {
	bookings    domain.BookingRepository
	exportPath  string
	retryPolicy RetryPolicy
	queue       chan ExportTask
	logger      *zerolog.Logger
}

// NewExportWorker builds a worker with sane defaults.
func NewExportWorker(bookings domain.BookingRepository, exportPath string, queueSize int, retry RetryPolicy, logger *zerolog.Logger) *ExportWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	if retry.MaxRetries == 0 {
		retry.MaxRetries = 3
	}
	if retry.InitialDelay == 0 {
		retry.InitialDelay = 2 * time.Second
	}
	if retry.MaxDelay == 0 {
		retry.MaxDelay = time.Minute
	}
	if retry.BackoffFactor == 0 {
		retry.BackoffFactor = 2
	}

	return &ExportWorker{
		bookings:    bookings,
		exportPath:  exportPath,
		retryPolicy: retry,
		queue:       make(chan ExportTask, queueSize),
		logger:      logger,
	}
}

// Enqueue ставит задание в очередь, не блокируясь.
func (w *ExportWorker) Enqueue(task ExportTask) error {
	select {
	case w.queue <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run обрабатывает очередь до отмены контекста.
func (w *ExportWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-w.queue:
			w.process(ctx, task)
		}
	}
}

func (w *ExportWorker) process(ctx context.Context, task ExportTask) {
	for attempt := 1; ; attempt++ {
		path, err := w.runExport(ctx, task)
		if err == nil {
			w.logger.Info().
				Str("file_path", path).
				Int64("requested_by", task.RequestedBy).
				Msg("bookings report written")
			return
		}

		if attempt > w.retryPolicy.MaxRetries {
			w.logger.Error().Err(err).
				Int("attempts", attempt).
				Int64("requested_by", task.RequestedBy).
				Msg("export failed, giving up")
			return
		}

		delay := w.retryPolicy.NextDelay(attempt)
		w.logger.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("export failed, retrying")

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func (w *ExportWorker) runExport(ctx context.Context, task ExportTask) (string, error) {
	bookings, err := w.bookings.GetBookingsByDateRange(ctx, task.From, task.To)
	if err != nil {
		return "", err
	}
	return export.WriteBookingsReport(w.exportPath, bookings, task.From, task.To)
}
