package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-sql/civil"
	"github.com/jonboulle/clockwork"

	"github.com/osse101/FrostPlanner_Go/internal/concurrency"
	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/logger"
	"github.com/osse101/FrostPlanner_Go/internal/metrics"
	"github.com/osse101/FrostPlanner_Go/internal/repository"
	"github.com/osse101/FrostPlanner_Go/internal/task"
	"github.com/osse101/FrostPlanner_Go/internal/window"
	"github.com/osse101/FrostPlanner_Go/internal/worker"
)

// FrostEstimator estimates the last spring frost of a year at a location
type FrostEstimator interface {
	EstimateLastFrost(ctx context.Context, lat, lon float64, year int) (civil.Date, error)
}

// Service coordinates frost resolution, window computation and task materialization
type Service interface {
	// GenerateSchedule materializes and stores the tasks of every plant in req.
	// Plant failures are skipped and reported through a *domain.PartialBatchError
	// returned together with the result.
	GenerateSchedule(ctx context.Context, req domain.ScheduleRequest) (*domain.ScheduleResult, error)
	// PreviewWindows computes the planner rows without creating tasks
	PreviewWindows(ctx context.Context, frost civil.Date, plants []domain.Plant) []domain.PlantWindow
	// ResolveFrost picks the frost reference of a run
	ResolveFrost(ctx context.Context, in domain.FrostInput) (*domain.FrostResolution, error)
	Shutdown(ctx context.Context) error
}

// Config tunes the coordinator
type Config struct {
	// FrostRetryYears is how many earlier years are tried when the requested
	// year has no frost. Nil means DefaultFrostRetryYears; zero disables retry.
	FrostRetryYears *int
	WeatherTimeout  time.Duration
	StoreTimeout    time.Duration
	Location        *time.Location
	UpsertWorkers   int
}

type service struct {
	estimator    FrostEstimator
	tasks        repository.TaskStore
	clock        clockwork.Clock
	cfg          Config
	retryYears   int
	calculator   *window.Calculator
	materializer *task.Materializer
	validate     *validator.Validate
	pool         *worker.Pool
	runs         *concurrency.KeyedLocker
	cancel       context.CancelFunc
}

// NewService creates a schedule coordinator and starts its upsert workers.
// Call Shutdown to stop them.
func NewService(estimator FrostEstimator, tasks repository.TaskStore, clock clockwork.Clock, cfg Config) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	retryYears := DefaultFrostRetryYears
	if cfg.FrostRetryYears != nil && *cfg.FrostRetryYears >= 0 {
		retryYears = *cfg.FrostRetryYears
	}
	if cfg.UpsertWorkers <= 0 {
		cfg.UpsertWorkers = DefaultUpsertWorkers
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool := worker.NewPool(cfg.UpsertWorkers, DefaultUpsertQueueSize)
	pool.Start(ctx)

	return &service{
		estimator:    estimator,
		tasks:        tasks,
		clock:        clock,
		cfg:          cfg,
		retryYears:   retryYears,
		calculator:   window.NewCalculator(),
		materializer: task.NewMaterializer(),
		validate:     validator.New(),
		pool:         pool,
		runs:         concurrency.NewKeyedLocker(),
		cancel:       cancel,
	}
}

// GenerateSchedule runs one scheduling pass for req.OwnerID
func (s *service) GenerateSchedule(ctx context.Context, req domain.ScheduleRequest) (*domain.ScheduleResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGenerateScheduleCalled, "owner_id", req.OwnerID, "plants", len(req.Plants))

	if strings.TrimSpace(req.OwnerID) == "" {
		metrics.ScheduleRuns.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, domain.ErrMissingOwner
	}
	if err := s.validate.Struct(req.Prefs); err != nil {
		metrics.ScheduleRuns.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w: cadence=%d weeks=%d", domain.ErrInvalidPreference, req.Prefs.CadenceDays, req.Prefs.DurationWeeks)
	}

	// Runs for one owner are serialized so their upserts do not interleave
	unlock := s.runs.Lock(req.OwnerID)
	defer unlock()

	frost, err := s.ResolveFrost(ctx, req.Frost)
	if err != nil {
		metrics.ScheduleRuns.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	today := civil.DateOf(s.clock.Now().In(s.cfg.Location))
	result := &domain.ScheduleResult{
		FrostDate:   frost.Date,
		FrostSource: frost.Source,
		PerPlant:    make(map[string][]domain.TaskRecord),
	}

	// Plants are materialized in request order; upserts fan out to the pool
	var order []string
	planned := make(map[string][]domain.TaskRecord)
	skipped := make(map[string]error)

	batch := worker.NewBatch(ctx, s.pool)
	for _, plant := range req.Plants {
		key := plant.Key()
		if _, seen := planned[key]; !seen {
			if _, seen := skipped[key]; !seen {
				order = append(order, key)
			}
		}
		if plant.Profile.IsEmpty() {
			skipped[key] = fmt.Errorf("%w: %s", domain.ErrEmptyProfile, key)
			continue
		}

		w := s.calculator.ComputeWindows(frost.Date, plant.Profile)
		records := s.materializer.MaterializeTasks(task.Input{
			PlantSlug: key,
			PlantName: plant.DisplayName(),
			Window:    w,
			Prefs:     req.Prefs,
			Today:     today,
			OwnerID:   req.OwnerID,
		})
		planned[key] = appendUnique(planned[key], records)

		batch.Go(key, func(ctx context.Context) error {
			for _, rec := range records {
				if err := s.upsert(ctx, rec); err != nil {
					return err
				}
			}
			return nil
		})
	}
	errs := batch.Wait()

	var failures []domain.PlantFailure
	for _, key := range order {
		err := errs[key]
		if err == nil && len(planned[key]) == 0 {
			err = skipped[key]
		}
		if err != nil {
			log.Warn(LogMsgPlantSkipped, "plant", key, "owner_id", req.OwnerID, "error", err)
			failures = append(failures, domain.NewPlantFailure(key, err))
			continue
		}
		records := planned[key]
		result.PerPlant[key] = records
		result.Created += len(records)
		for _, rec := range records {
			metrics.TasksMaterialized.WithLabelValues(string(rec.Type)).Inc()
		}
	}

	log.Info(LogMsgScheduleGenerated,
		"owner_id", req.OwnerID,
		"frost", frost.Date.String(),
		"frost_source", frost.Source,
		"created", result.Created,
		"failed", len(failures))

	if len(failures) > 0 {
		result.Failures = failures
		metrics.PlantFailures.Add(float64(len(failures)))
		metrics.ScheduleRuns.WithLabelValues(metrics.OutcomePartial).Inc()
		return result, &domain.PartialBatchError{Failures: failures}
	}
	metrics.ScheduleRuns.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return result, nil
}

func (s *service) upsert(ctx context.Context, rec domain.TaskRecord) error {
	if s.cfg.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.StoreTimeout)
		defer cancel()
	}
	if err := s.tasks.UpsertTask(ctx, rec); err != nil {
		metrics.StoreUpsertErrors.Inc()
		logger.FromContext(ctx).Error(LogMsgUpsertFailed, "task_id", rec.ID, "owner_id", rec.OwnerID, "error", err)
		return upstreamError(fmt.Sprintf("upsert task %s", rec.ID), err)
	}
	return nil
}

// PreviewWindows computes each plant's window against frost
func (s *service) PreviewWindows(ctx context.Context, frost civil.Date, plants []domain.Plant) []domain.PlantWindow {
	rows := make([]domain.PlantWindow, 0, len(plants))
	for _, plant := range plants {
		rows = append(rows, domain.PlantWindow{
			PlantSlug: plant.Key(),
			PlantName: plant.DisplayName(),
			Window:    s.calculator.ComputeWindows(frost, plant.Profile),
		})
	}
	return rows
}

// ResolveFrost uses a supplied date as-is. Otherwise it estimates the frost
// for the requested year and up to the configured number of earlier years, then falls
// back to in.Default. Upstream failures are returned, never defaulted.
func (s *service) ResolveFrost(ctx context.Context, in domain.FrostInput) (*domain.FrostResolution, error) {
	log := logger.FromContext(ctx)

	if in.Date != nil {
		return s.resolved(ctx, *in.Date, domain.FrostSourceSupplied, 0), nil
	}

	if in.Location != nil {
		year := in.Year
		if year == 0 {
			year = s.clock.Now().In(s.cfg.Location).Year()
		}

		for i := 0; i <= s.retryYears; i++ {
			y := year - i
			date, err := s.estimate(ctx, *in.Location, y)
			if err == nil {
				source := domain.FrostSourceEstimated
				if i > 0 {
					source = domain.FrostSourceFallback
				}
				return s.resolved(ctx, date, source, y), nil
			}
			if !errors.Is(err, domain.ErrFrostNotFound) {
				return nil, err
			}
			if i < s.retryYears {
				log.Info(LogMsgFrostFallbackYear, "year", y)
			}
		}
	}

	if in.Default != nil {
		log.Info(LogMsgFrostDefaultUsed, "frost", in.Default.String())
		return s.resolved(ctx, *in.Default, domain.FrostSourceDefault, 0), nil
	}
	if in.Location == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFrostNotFound, ErrMsgFrostInputMissing)
	}
	return nil, fmt.Errorf("%w: searched %d year(s)", domain.ErrFrostNotFound, s.retryYears+1)
}

func (s *service) estimate(ctx context.Context, loc domain.Location, year int) (civil.Date, error) {
	if s.cfg.WeatherTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.WeatherTimeout)
		defer cancel()
	}
	date, err := s.estimator.EstimateLastFrost(ctx, loc.Latitude, loc.Longitude, year)
	if err != nil {
		if errors.Is(err, domain.ErrFrostNotFound) ||
			errors.Is(err, domain.ErrUpstreamTimeout) ||
			errors.Is(err, domain.ErrUpstreamUnavailable) ||
			errors.Is(err, domain.ErrInvalidInput) {
			return civil.Date{}, err
		}
		return civil.Date{}, upstreamError(fmt.Sprintf("estimate frost %d", year), err)
	}
	return date, nil
}

func (s *service) resolved(ctx context.Context, date civil.Date, source domain.FrostSource, year int) *domain.FrostResolution {
	metrics.FrostResolutions.WithLabelValues(string(source)).Inc()
	logger.FromContext(ctx).Info(LogMsgFrostResolved, "frost", date.String(), "source", source)
	return &domain.FrostResolution{Date: date, Source: source, Year: year}
}

// Shutdown stops the upsert workers, finishing queued jobs first
func (s *service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pool.Stop()
		s.cancel()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// upstreamError classifies a store or weather failure
func upstreamError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", domain.ErrUpstreamTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrUpstreamUnavailable, op, err)
}

func appendUnique(dst, src []domain.TaskRecord) []domain.TaskRecord {
	seen := make(map[string]struct{}, len(dst))
	for _, rec := range dst {
		seen[rec.ID] = struct{}{}
	}
	for _, rec := range src {
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		dst = append(dst, rec)
	}
	return dst
}
