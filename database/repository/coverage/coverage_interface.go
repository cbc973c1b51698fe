package coverageRepo

import "rosterly/models"

// CoverageRepository defines data access for the shift-coverage board:
// postings, applications to postings, coverage requests, and the active
// coverage record.
type CoverageRepository interface {
	CreatePosting(p *models.ShiftPosting) error
	GetPosting(id string) (*models.ShiftPosting, error)
	ListPostings(status string) ([]models.ShiftPosting, error)
	UpdatePostingStatus(id, status string) error

	CreateApplication(a *models.ShiftApplication) error
	ListApplications(postingID string) ([]models.ShiftApplication, error)
	ApproveApplication(postingID, applicationID string) error

	CreateRequest(req *models.CoverageRequest) error
	ListRequests(status string) ([]models.CoverageRequest, error)
	ResolveRequest(id string) error

	RecordActiveCoverage(ac *models.ActiveCoverage) error
	ListActiveCoverage() ([]models.ActiveCoverage, error)
}
