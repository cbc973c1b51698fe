package board

import "rosterly/models"

// BoardService manages the workplace bulletin: announcements, shift postings
// with applications, and coverage requests.
type BoardService interface {
	CreateAnnouncement(a *models.Announcement) (*models.Announcement, error)
	UpdateAnnouncement(a *models.Announcement) (*models.Announcement, error)
	DeleteAnnouncement(id string) error
	ListAnnouncements() ([]models.Announcement, error)

	PostShift(p *models.ShiftPosting) (*models.ShiftPosting, error)
	ListPostings(status string) ([]models.ShiftPosting, error)
	ClosePosting(id string) error

	ApplyToPosting(a *models.ShiftApplication) (*models.ShiftApplication, error)
	ListApplications(postingID string) ([]models.ShiftApplication, error)
	ApproveApplication(postingID, applicationID string) (*models.ActiveCoverage, error)

	RequestCoverage(req *models.CoverageRequest) (*models.CoverageRequest, error)
	ListCoverageRequests(status string) ([]models.CoverageRequest, error)
	ResolveCoverageRequest(id string) error

	ListActiveCoverage() ([]models.ActiveCoverage, error)
}
