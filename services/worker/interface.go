package worker

import "rosterly/models"

// WorkerService manages the worker pool that the scheduler draws from.
type WorkerService interface {
	CreateWorker(w *models.Worker) (*models.Worker, error)
	UpdateWorker(w *models.Worker) (*models.Worker, error)
	DeleteWorker(id string) error
	GetWorker(id string) (*models.Worker, error)
	ListWorkers() ([]models.Worker, error)
	SetSuspended(id string, suspended bool) (*models.Worker, error)
}
