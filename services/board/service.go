package board

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	announcementRepo "rosterly/database/repository/announcement"
	coverageRepo "rosterly/database/repository/coverage"
	"rosterly/models"
)

// DefaultBoardService is the canonical BoardService implementation.
type DefaultBoardService struct {
	Announcements announcementRepo.AnnouncementRepository
	Coverage      coverageRepo.CoverageRepository
	Logger        *zap.Logger
}

// NewDefaultBoardService wires a board service from its dependencies.
func NewDefaultBoardService(
	announcements announcementRepo.AnnouncementRepository,
	coverage coverageRepo.CoverageRepository,
	logger *zap.Logger,
) *DefaultBoardService {
	if logger == nil {
		logger = zap.L()
	}
	return &DefaultBoardService{
		Announcements: announcements,
		Coverage:      coverage,
		Logger:        logger,
	}
}

// CreateAnnouncement stores a new bulletin entry.
func (s *DefaultBoardService) CreateAnnouncement(a *models.Announcement) (*models.Announcement, error) {
	a.ID = uuid.NewString()
	if err := s.Announcements.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAnnouncement modifies an existing bulletin entry.
func (s *DefaultBoardService) UpdateAnnouncement(a *models.Announcement) (*models.Announcement, error) {
	if err := s.Announcements.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAnnouncement removes a bulletin entry.
func (s *DefaultBoardService) DeleteAnnouncement(id string) error {
	return s.Announcements.Delete(id)
}

// ListAnnouncements returns all bulletin entries, newest first.
func (s *DefaultBoardService) ListAnnouncements() ([]models.Announcement, error) {
	return s.Announcements.List()
}

// PostShift opens a new shift posting.
func (s *DefaultBoardService) PostShift(p *models.ShiftPosting) (*models.ShiftPosting, error) {
	p.ID = uuid.NewString()
	p.Status = models.PostingOpen
	if err := s.Coverage.CreatePosting(p); err != nil {
		return nil, err
	}
	s.Logger.Info("shift posted", zap.String("postingId", p.ID), zap.String("day", p.Day))
	return p, nil
}

// ListPostings returns postings, optionally filtered by status.
func (s *DefaultBoardService) ListPostings(status string) ([]models.ShiftPosting, error) {
	return s.Coverage.ListPostings(status)
}

// ClosePosting withdraws an open posting without filling it.
func (s *DefaultBoardService) ClosePosting(id string) error {
	return s.Coverage.UpdatePostingStatus(id, models.PostingClosed)
}

// ApplyToPosting records a worker's offer to take an open posting.
func (s *DefaultBoardService) ApplyToPosting(a *models.ShiftApplication) (*models.ShiftApplication, error) {
	posting, err := s.Coverage.GetPosting(a.PostingID)
	if err != nil {
		return nil, err
	}
	if posting.Status != models.PostingOpen {
		return nil, fmt.Errorf("posting %s is not open", a.PostingID)
	}
	a.ID = uuid.NewString()
	a.Status = models.ApplicationPending
	if err := s.Coverage.CreateApplication(a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListApplications returns the applications for one posting.
func (s *DefaultBoardService) ListApplications(postingID string) ([]models.ShiftApplication, error) {
	return s.Coverage.ListApplications(postingID)
}

// ApproveApplication accepts one application: the application is approved,
// the posting is marked filled, and an active coverage record is written with
// a snapshot of the posting as it stood at approval.
func (s *DefaultBoardService) ApproveApplication(postingID, applicationID string) (*models.ActiveCoverage, error) {
	if err := s.Coverage.ApproveApplication(postingID, applicationID); err != nil {
		return nil, err
	}
	if err := s.Coverage.UpdatePostingStatus(postingID, models.PostingFilled); err != nil {
		return nil, err
	}
	posting, err := s.Coverage.GetPosting(postingID)
	if err != nil {
		return nil, err
	}
	ac := &models.ActiveCoverage{
		ID:            uuid.NewString(),
		PostingID:     postingID,
		ApplicationID: applicationID,
		CreatedAt:     time.Now(),
		Posting:       posting,
	}
	if err := s.Coverage.RecordActiveCoverage(ac); err != nil {
		return nil, err
	}
	s.Logger.Info("application approved",
		zap.String("postingId", postingID), zap.String("applicationId", applicationID))
	return ac, nil
}

// RequestCoverage opens a request for someone to cover the requestor's shift.
func (s *DefaultBoardService) RequestCoverage(req *models.CoverageRequest) (*models.CoverageRequest, error) {
	req.ID = uuid.NewString()
	req.Status = models.RequestOpen
	if err := s.Coverage.CreateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListCoverageRequests returns requests, optionally filtered by status.
func (s *DefaultBoardService) ListCoverageRequests(status string) ([]models.CoverageRequest, error) {
	return s.Coverage.ListRequests(status)
}

// ResolveCoverageRequest closes a coverage request.
func (s *DefaultBoardService) ResolveCoverageRequest(id string) error {
	return s.Coverage.ResolveRequest(id)
}

// ListActiveCoverage returns the approved coverage records.
func (s *DefaultBoardService) ListActiveCoverage() ([]models.ActiveCoverage, error) {
	return s.Coverage.ListActiveCoverage()
}
