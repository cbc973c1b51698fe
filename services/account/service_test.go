package account

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rosterly/models"
	"rosterly/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: map[string]*models.Account{}}
}

func (f *fakeAccountRepo) Create(acct *models.Account) error {
	cp := *acct
	f.byEmail[acct.Email] = &cp
	return nil
}

func (f *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	for _, acct := range f.byEmail {
		if acct.ID == id {
			return acct, nil
		}
	}
	return nil, fmt.Errorf("account with id %s not found", id)
}

func (f *fakeAccountRepo) GetByEmail(email string) (*models.Account, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) SetAdmin(email string, isAdmin bool) error {
	acct, ok := f.byEmail[email]
	if !ok {
		return fmt.Errorf("account with email %s not found", email)
	}
	acct.IsAdmin = isAdmin
	return nil
}

func (f *fakeAccountRepo) SetSuspended(email string, suspended bool) error {
	acct, ok := f.byEmail[email]
	if !ok {
		return fmt.Errorf("account with email %s not found", email)
	}
	acct.Suspended = suspended
	return nil
}

func (f *fakeAccountRepo) UpdateLoginTime(id string, at time.Time) error { return nil }

func newTestAccountService() (*DefaultAccountService, *fakeAccountRepo) {
	repo := newFakeAccountRepo()
	return NewDefaultAccountService(repo, nil, zap.NewNop()), repo
}

func register(t *testing.T, svc *DefaultAccountService, email, password string) *models.Account {
	t.Helper()
	acct, err := svc.Register(&models.Account{FirstName: "Ada", Email: email}, password)
	require.NoError(t, err)
	return acct
}

func TestRegister(t *testing.T) {
	svc, _ := newTestAccountService()

	acct := register(t, svc, "ada@example.com", "hunter2hunter2")
	assert.NotEmpty(t, acct.ID)
	assert.NotEmpty(t, acct.PasswordHash)
	assert.NotEqual(t, "hunter2hunter2", acct.PasswordHash)

	_, err := svc.Register(&models.Account{Email: "Ada@Example.com"}, "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid credentials issue a usable token", func(t *testing.T) {
		svc, _ := newTestAccountService()
		acct := register(t, svc, "ada@example.com", "hunter2hunter2")

		resp, err := svc.Authenticate("ada@example.com", "hunter2hunter2")
		require.NoError(t, err)
		require.NotNil(t, resp.Account)
		assert.Equal(t, acct.ID, resp.Account.ID)

		id, err := utils.ExtractIDFromToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, acct.ID, id)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		svc, _ := newTestAccountService()
		register(t, svc, "ada@example.com", "hunter2hunter2")

		_, err := svc.Authenticate("ada@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Authenticate("nobody@example.com", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("suspension blocks login", func(t *testing.T) {
		svc, _ := newTestAccountService()
		register(t, svc, "ada@example.com", "hunter2hunter2")
		require.NoError(t, svc.SetSuspended("ada@example.com", true))

		_, err := svc.Authenticate("ada@example.com", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrAccountSuspended)
	})
}

func TestSetAdmin(t *testing.T) {
	svc, repo := newTestAccountService()
	register(t, svc, "ada@example.com", "hunter2hunter2")

	require.NoError(t, svc.SetAdmin("ada@example.com", true))
	acct, err := repo.GetByEmail("ada@example.com")
	require.NoError(t, err)
	assert.True(t, acct.IsAdmin)

	assert.Error(t, svc.SetAdmin("nobody@example.com", true))
}
