package scheduleRepo

import "rosterly/models"

// ScheduleRepository defines data access methods for schedule documents.
// The store holds at most one document with isCurrent=true; UpsertCurrent and
// SetOnlyCurrent are the only writers of that flag.
type ScheduleRepository interface {
	UpsertCurrent(doc *models.ScheduleDocument) error
	GetCurrent() (*models.ScheduleDocument, error)
	GetByID(id string) (*models.ScheduleDocument, error)
	SetOnlyCurrent(id string) error
	List() ([]models.ScheduleDocument, error)
	Delete(id string) error
}
