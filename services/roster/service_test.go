package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rosterly/models"
)

type fakeWorkerRepo struct {
	workers []models.Worker
}

func (f *fakeWorkerRepo) Create(w *models.Worker) error { f.workers = append(f.workers, *w); return nil }
func (f *fakeWorkerRepo) Update(w *models.Worker) error { return nil }
func (f *fakeWorkerRepo) Delete(id string) error        { return nil }
func (f *fakeWorkerRepo) GetByID(id string) (*models.Worker, error) {
	for i := range f.workers {
		if f.workers[i].ID == id {
			return &f.workers[i], nil
		}
	}
	return nil, nil
}
func (f *fakeWorkerRepo) GetByEmail(email string) (*models.Worker, error) { return nil, nil }
func (f *fakeWorkerRepo) GetAll() ([]models.Worker, error)                { return f.workers, nil }

type fakeScheduleRepo struct {
	store []models.ScheduleDocument
}

func (f *fakeScheduleRepo) UpsertCurrent(doc *models.ScheduleDocument) error {
	for i := range f.store {
		if f.store[i].IsCurrent {
			f.store[i] = *doc
			return nil
		}
	}
	f.store = append(f.store, *doc)
	return nil
}

func (f *fakeScheduleRepo) GetCurrent() (*models.ScheduleDocument, error) {
	for i := range f.store {
		if f.store[i].IsCurrent {
			return &f.store[i], nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) GetByID(id string) (*models.ScheduleDocument, error) {
	for i := range f.store {
		if f.store[i].ID == id {
			return &f.store[i], nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) SetOnlyCurrent(id string) error {
	for i := range f.store {
		f.store[i].IsCurrent = f.store[i].ID == id
	}
	return nil
}

func (f *fakeScheduleRepo) List() ([]models.ScheduleDocument, error) { return f.store, nil }

func (f *fakeScheduleRepo) Delete(id string) error {
	kept := f.store[:0]
	for _, doc := range f.store {
		if doc.ID != id {
			kept = append(kept, doc)
		}
	}
	f.store = kept
	return nil
}

type fakeSettingsRepo struct {
	hours models.OperatingHours
}

func (f *fakeSettingsRepo) GetOperatingHours() (models.OperatingHours, error) { return f.hours, nil }
func (f *fakeSettingsRepo) SetOperatingHours(hours models.OperatingHours) error {
	f.hours = hours
	return nil
}

func newTestService(workers []models.Worker) (*DefaultRosterService, *fakeScheduleRepo) {
	schedules := &fakeScheduleRepo{}
	svc := NewDefaultRosterService(
		&fakeWorkerRepo{workers: workers},
		schedules,
		&fakeSettingsRepo{},
		nil,
		zap.NewNop(),
	)
	return svc, schedules
}

func TestGenerateSchedule(t *testing.T) {
	t.Run("persists one current document with all seven days", func(t *testing.T) {
		svc, schedules := newTestService([]models.Worker{
			{ID: "w1", FirstName: "Ada", Email: "ada@x", WorkStudy: true, Availability: "Mon 09:00-17:00"},
			{ID: "w2", FirstName: "Ben", Email: "ben@x", Availability: "Tue 09:00-17:00"},
		})
		doc, err := svc.GenerateSchedule(GenerateOptions{})
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.True(t, doc.IsCurrent)
		assert.Len(t, doc.Schedule, 7)
		assert.Empty(t, doc.Schedule["Saturday"])
		assert.Len(t, schedules.store, 1)

		// A second generation replaces the current document.
		doc2, err := svc.GenerateSchedule(GenerateOptions{})
		require.NoError(t, err)
		assert.NotEqual(t, doc.ID, doc2.ID)
		assert.Len(t, schedules.store, 1)
	})

	t.Run("fatal placement failure persists nothing", func(t *testing.T) {
		svc, schedules := newTestService([]models.Worker{
			{ID: "w1", FirstName: "Ada", Email: "ada@x", WorkStudy: true, Availability: "Mon 09:00-12:00"},
		})
		doc, err := svc.GenerateSchedule(GenerateOptions{})
		require.Error(t, err)
		assert.Nil(t, doc)
		_, ok := AsWorkStudyError(err)
		assert.True(t, ok)
		assert.Empty(t, schedules.store)
	})

	t.Run("fatal failure leaves the previous schedule current", func(t *testing.T) {
		svc, schedules := newTestService([]models.Worker{
			{ID: "w1", FirstName: "Ada", Email: "ada@x", Availability: "Mon 09:00-17:00"},
		})
		first, err := svc.GenerateSchedule(GenerateOptions{})
		require.NoError(t, err)

		// A newly hired work-study worker with a bad availability breaks
		// the next run, but the earlier schedule must survive untouched.
		_, err = svc.GenerateScheduleFromWorkers([]models.Worker{
			{ID: "w2", FirstName: "Ben", Email: "ben@x", WorkStudy: true, Availability: "Tue 09:00-11:00"},
		}, GenerateOptions{})
		require.Error(t, err)

		current, err := svc.CurrentSchedule()
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, first.ID, current.ID)
		assert.Len(t, schedules.store, 1)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		workers := []models.Worker{
			{ID: "w1", FirstName: "Ada", Email: "ada@x", WorkStudy: true, Availability: "Mon 09:00-17:00, Wed 09:00-17:00"},
			{ID: "w2", FirstName: "Ben", Email: "ben@x", Availability: "Mon 09:00-17:00, Tue 09:00-17:00"},
			{ID: "w3", FirstName: "Cleo", Email: "cleo@x", Availability: "Tue 09:00-17:00, Thu 09:00-17:00"},
		}
		svcA, _ := newTestService(workers)
		svcB, _ := newTestService(workers)
		docA, err := svcA.GenerateSchedule(GenerateOptions{})
		require.NoError(t, err)
		docB, err := svcB.GenerateSchedule(GenerateOptions{})
		require.NoError(t, err)
		assert.Equal(t, docA.Schedule, docB.Schedule)
	})

	t.Run("worker id subset restricts the pool", func(t *testing.T) {
		svc, _ := newTestService([]models.Worker{
			{ID: "w1", FirstName: "Ada", Email: "ada@x", Availability: "Mon 09:00-17:00"},
			{ID: "w2", FirstName: "Ben", Email: "ben@x", Availability: "Mon 09:00-17:00"},
		})
		doc, err := svc.GenerateScheduleForWorkerIDs([]string{"w1"}, GenerateOptions{})
		require.NoError(t, err)
		for _, slots := range doc.Schedule {
			for _, slot := range slots {
				for _, a := range slot.Assigned {
					assert.Equal(t, "ada@x", a.Email)
				}
			}
		}

		_, err = svc.GenerateScheduleForWorkerIDs([]string{"missing"}, GenerateOptions{})
		assert.Error(t, err)
	})

	t.Run("parses raw availability text", func(t *testing.T) {
		svc, _ := newTestService([]models.Worker{
			{ID: "w1", FirstName: "Ada", Email: "ada@x", Availability: "Mon 10:00-14:00"},
		})
		doc, err := svc.GenerateSchedule(GenerateOptions{})
		require.NoError(t, err)
		total := 0
		for _, slot := range doc.Schedule["Monday"] {
			total += len(slot.Assigned)
		}
		assert.Equal(t, 4, total)
	})
}

func TestCurrentSchedule(t *testing.T) {
	t.Run("nil when nothing generated", func(t *testing.T) {
		svc, _ := newTestService(nil)
		doc, err := svc.CurrentSchedule()
		require.NoError(t, err)
		assert.Nil(t, doc)
	})
}

func TestSetOnlyCurrent(t *testing.T) {
	svc, schedules := newTestService([]models.Worker{
		{ID: "w1", FirstName: "Ada", Email: "ada@x", Availability: "Mon 09:00-17:00"},
	})
	first, err := svc.GenerateSchedule(GenerateOptions{})
	require.NoError(t, err)

	// Force a second stored document so there is something to promote.
	schedules.store[0].IsCurrent = false
	second, err := svc.GenerateSchedule(GenerateOptions{})
	require.NoError(t, err)
	require.Len(t, schedules.store, 2)

	require.NoError(t, svc.SetOnlyCurrent(first.ID))
	current, err := svc.CurrentSchedule()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, first.ID, current.ID)
	assert.NotEqual(t, second.ID, current.ID)
}
