package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rosterly/models"
)

type fakeWorkerRepo struct {
	byID    map[string]*models.Worker
	byEmail map[string]*models.Worker
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{
		byID:    map[string]*models.Worker{},
		byEmail: map[string]*models.Worker{},
	}
}

func (f *fakeWorkerRepo) Create(w *models.Worker) error {
	cp := *w
	f.byID[w.ID] = &cp
	if w.Email != "" {
		f.byEmail[w.Email] = &cp
	}
	return nil
}

func (f *fakeWorkerRepo) Update(w *models.Worker) error {
	cp := *w
	f.byID[w.ID] = &cp
	if w.Email != "" {
		f.byEmail[w.Email] = &cp
	}
	return nil
}

func (f *fakeWorkerRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeWorkerRepo) GetByID(id string) (*models.Worker, error) {
	if w, ok := f.byID[id]; ok {
		return w, nil
	}
	return nil, assert.AnError
}

func (f *fakeWorkerRepo) GetByEmail(email string) (*models.Worker, error) {
	return f.byEmail[email], nil
}

func (f *fakeWorkerRepo) GetAll() ([]models.Worker, error) {
	var all []models.Worker
	for _, w := range f.byID {
		all = append(all, *w)
	}
	return all, nil
}

func TestCreateWorker(t *testing.T) {
	svc := NewDefaultWorkerService(newFakeWorkerRepo(), zap.NewNop())

	created, err := svc.CreateWorker(&models.Worker{
		FirstName:    "Ada",
		Email:        "Ada@Example.Com",
		Availability: "Mon 09:00-13:00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ada@example.com", created.Email)
	require.Contains(t, created.Parsed, "Monday")
	assert.Equal(t, []models.Interval{{Start: 540, End: 780}}, created.Parsed["Monday"])

	_, err = svc.CreateWorker(&models.Worker{Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreateWorkersWithoutEmail(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := NewDefaultWorkerService(repo, zap.NewNop())

	// Email is optional; several email-less workers must coexist.
	first, err := svc.CreateWorker(&models.Worker{FirstName: "Ada"})
	require.NoError(t, err)
	second, err := svc.CreateWorker(&models.Worker{FirstName: "Bo"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.ID, first.Key())
	assert.Equal(t, second.ID, second.Key())
}

func TestUpdateWorkerReparsesAvailability(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := NewDefaultWorkerService(repo, zap.NewNop())

	created, err := svc.CreateWorker(&models.Worker{
		FirstName:    "Ada",
		Email:        "ada@example.com",
		Availability: "Mon 09:00-13:00",
	})
	require.NoError(t, err)

	created.Availability = "Tue 10:00-14:00"
	updated, err := svc.UpdateWorker(created)
	require.NoError(t, err)
	assert.NotContains(t, updated.Parsed, "Monday")
	assert.Contains(t, updated.Parsed, "Tuesday")
}

func TestSetSuspended(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := NewDefaultWorkerService(repo, zap.NewNop())

	created, err := svc.CreateWorker(&models.Worker{Email: "ada@example.com"})
	require.NoError(t, err)

	w, err := svc.SetSuspended(created.ID, true)
	require.NoError(t, err)
	assert.True(t, w.Suspended)

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Suspended)
}
