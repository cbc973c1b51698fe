package workerRepo

import "rosterly/models"

// WorkerRepository defines data access methods for worker records.
type WorkerRepository interface {
	Create(worker *models.Worker) error
	Update(worker *models.Worker) error
	Delete(id string) error
	GetByID(id string) (*models.Worker, error)
	GetByEmail(email string) (*models.Worker, error)
	GetAll() ([]models.Worker, error)
}
