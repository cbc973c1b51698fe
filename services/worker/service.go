package worker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	workerRepo "rosterly/database/repository/worker"
	"rosterly/models"
	"rosterly/services/roster"
)

// ErrDuplicateEmail is returned when a create or update would leave two
// workers with the same email.
var ErrDuplicateEmail = errors.New("a worker with this email already exists")

// DefaultWorkerService is the canonical WorkerService implementation.
type DefaultWorkerService struct {
	Repo   workerRepo.WorkerRepository
	Logger *zap.Logger
}

// NewDefaultWorkerService wires a worker service from its dependencies.
func NewDefaultWorkerService(repo workerRepo.WorkerRepository, logger *zap.Logger) *DefaultWorkerService {
	if logger == nil {
		logger = zap.L()
	}
	return &DefaultWorkerService{Repo: repo, Logger: logger}
}

// CreateWorker validates and stores a new worker. The availability text is
// parsed eagerly so the stored record always carries typed intervals.
func (s *DefaultWorkerService) CreateWorker(w *models.Worker) (*models.Worker, error) {
	w.Email = strings.TrimSpace(strings.ToLower(w.Email))
	if w.Email != "" {
		existing, err := s.Repo.GetByEmail(w.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing worker: %w", err)
		}
		if existing != nil {
			return nil, ErrDuplicateEmail
		}
	}
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	w.Parsed = roster.ParseAvailabilityString(w.Availability)
	if err := s.Repo.Create(w); err != nil {
		return nil, err
	}
	s.Logger.Info("worker created", zap.String("workerId", w.ID), zap.String("email", w.Email))
	return w, nil
}

// UpdateWorker stores changed fields and re-parses the availability text.
func (s *DefaultWorkerService) UpdateWorker(w *models.Worker) (*models.Worker, error) {
	current, err := s.Repo.GetByID(w.ID)
	if err != nil {
		return nil, err
	}
	w.Email = strings.TrimSpace(strings.ToLower(w.Email))
	if w.Email != "" && w.Email != current.Email {
		existing, err := s.Repo.GetByEmail(w.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing worker: %w", err)
		}
		if existing != nil && existing.ID != w.ID {
			return nil, ErrDuplicateEmail
		}
	}
	w.Parsed = roster.ParseAvailabilityString(w.Availability)
	if err := s.Repo.Update(w); err != nil {
		return nil, err
	}
	return w, nil
}

// DeleteWorker removes a worker from the pool.
func (s *DefaultWorkerService) DeleteWorker(id string) error {
	return s.Repo.Delete(id)
}

// GetWorker fetches one worker by id.
func (s *DefaultWorkerService) GetWorker(id string) (*models.Worker, error) {
	return s.Repo.GetByID(id)
}

// ListWorkers returns the full pool.
func (s *DefaultWorkerService) ListWorkers() ([]models.Worker, error) {
	return s.Repo.GetAll()
}

// SetSuspended flips the suspension flag. Suspended workers stay on record
// but are skipped by schedule generation.
func (s *DefaultWorkerService) SetSuspended(id string, suspended bool) (*models.Worker, error) {
	w, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	w.Suspended = suspended
	if err := s.Repo.Update(w); err != nil {
		return nil, err
	}
	s.Logger.Info("worker suspension changed",
		zap.String("workerId", id), zap.Bool("suspended", suspended))
	return w, nil
}
