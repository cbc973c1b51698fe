package roster

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	scheduleRepo "rosterly/database/repository/schedule"
	settingsRepo "rosterly/database/repository/settings"
	workerRepo "rosterly/database/repository/worker"
	"rosterly/models"
	"rosterly/utils"
)

// DefaultRosterService is the canonical RosterService implementation backed
// by the Mongo repositories, with a Redis read-through cache on the current
// schedule.
type DefaultRosterService struct {
	Workers   workerRepo.WorkerRepository
	Schedules scheduleRepo.ScheduleRepository
	Settings  settingsRepo.SettingsRepository
	Cache     *redis.Client
	Logger    *zap.Logger
}

// NewDefaultRosterService wires a roster service from its dependencies.
// Cache may be nil; caching is then skipped entirely.
func NewDefaultRosterService(
	workers workerRepo.WorkerRepository,
	schedules scheduleRepo.ScheduleRepository,
	settings settingsRepo.SettingsRepository,
	cache *redis.Client,
	logger *zap.Logger,
) *DefaultRosterService {
	if logger == nil {
		logger = zap.L()
	}
	return &DefaultRosterService{
		Workers:   workers,
		Schedules: schedules,
		Settings:  settings,
		Cache:     cache,
		Logger:    logger,
	}
}

// GenerateSchedule builds a schedule from every stored worker and persists it
// as current.
func (s *DefaultRosterService) GenerateSchedule(opts GenerateOptions) (*models.ScheduleDocument, error) {
	workers, err := s.Workers.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load workers: %w", err)
	}
	return s.GenerateScheduleFromWorkers(workers, opts)
}

// GenerateScheduleForWorkerIDs builds a schedule from the named subset of
// stored workers.
func (s *DefaultRosterService) GenerateScheduleForWorkerIDs(ids []string, opts GenerateOptions) (*models.ScheduleDocument, error) {
	workers := make([]models.Worker, 0, len(ids))
	for _, id := range ids {
		w, err := s.Workers.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load worker %s: %w", id, err)
		}
		if w == nil {
			return nil, fmt.Errorf("worker %s not found", id)
		}
		workers = append(workers, *w)
	}
	return s.GenerateScheduleFromWorkers(workers, opts)
}

// GenerateScheduleFromWorkers runs the two-phase assignment over the given
// workers. The document is persisted only after both phases complete, so a
// fatal work-study failure leaves the previously current schedule untouched.
func (s *DefaultRosterService) GenerateScheduleFromWorkers(workers []models.Worker, opts GenerateOptions) (*models.ScheduleDocument, error) {
	opts = opts.normalized()

	hours := s.resolveOperatingHours()
	grid := buildSlotGrid(hours)

	workers = normalizeAvailability(workers)
	workStudy, regular := partitionWorkers(workers, grid)
	s.Logger.Info("generating schedule",
		zap.Int("workStudyWorkers", len(workStudy)),
		zap.Int("regularWorkers", len(regular)),
		zap.Int("droppedWorkers", len(workers)-len(workStudy)-len(regular)),
	)

	run := newAssignmentRun(grid, opts)
	if err := run.assignWorkStudy(workStudy); err != nil {
		s.Logger.Warn("schedule generation aborted", zap.Error(err))
		return nil, err
	}
	target := run.fairFill(regular, len(workStudy))
	s.Logger.Info("fair fill complete", zap.Float64("targetHoursPerWorker", target))

	doc := buildScheduleDocument(run.grid, opts)
	if err := s.Schedules.UpsertCurrent(&doc); err != nil {
		return nil, fmt.Errorf("failed to persist schedule: %w", err)
	}
	utils.InvalidateCurrentSchedule(s.Cache)
	return &doc, nil
}

// CurrentSchedule returns the current schedule, serving from cache when warm.
// Returns nil with no error when no schedule exists.
func (s *DefaultRosterService) CurrentSchedule() (*models.ScheduleDocument, error) {
	if doc := utils.CachedCurrentSchedule(s.Cache); doc != nil {
		return doc, nil
	}
	doc, err := s.Schedules.GetCurrent()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current schedule: %w", err)
	}
	if doc != nil {
		utils.CacheCurrentSchedule(s.Cache, doc)
	}
	return doc, nil
}

// SetOnlyCurrent promotes the given schedule to be the sole current one.
func (s *DefaultRosterService) SetOnlyCurrent(id string) error {
	if err := s.Schedules.SetOnlyCurrent(id); err != nil {
		return err
	}
	utils.InvalidateCurrentSchedule(s.Cache)
	return nil
}

// ListSchedules returns all stored schedules, newest first.
func (s *DefaultRosterService) ListSchedules() ([]models.ScheduleDocument, error) {
	return s.Schedules.List()
}

// DeleteSchedule removes a stored schedule.
func (s *DefaultRosterService) DeleteSchedule(id string) error {
	if err := s.Schedules.Delete(id); err != nil {
		return err
	}
	utils.InvalidateCurrentSchedule(s.Cache)
	return nil
}
