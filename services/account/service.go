package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	accountRepo "rosterly/database/repository/account"
	"rosterly/models"
	"rosterly/utils"
)

const tokenLifetime = 24 * time.Hour

var (
	// ErrDuplicateEmail is returned when a registration reuses an email.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrInvalidCredentials is returned on a failed login. The message never
	// distinguishes a missing account from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountSuspended is returned when a suspended account signs in.
	ErrAccountSuspended = errors.New("account is suspended")
)

// DefaultAccountService is the canonical AccountService implementation.
type DefaultAccountService struct {
	Repo      accountRepo.AccountRepository
	AuthCache *redis.Client
	Logger    *zap.Logger
}

// NewDefaultAccountService wires an account service from its dependencies.
// AuthCache may be nil; token caching is then skipped.
func NewDefaultAccountService(repo accountRepo.AccountRepository, authCache *redis.Client, logger *zap.Logger) *DefaultAccountService {
	if logger == nil {
		logger = zap.L()
	}
	return &DefaultAccountService{Repo: repo, AuthCache: authCache, Logger: logger}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *DefaultAccountService) Register(acct *models.Account, password string) (*models.Account, error) {
	acct.Email = strings.TrimSpace(strings.ToLower(acct.Email))
	existing, err := s.Repo.GetByEmail(acct.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	acct.ID = uuid.NewString()
	acct.PasswordHash = hash
	if err := s.Repo.Create(acct); err != nil {
		return nil, err
	}
	s.Logger.Info("account registered", zap.String("accountId", acct.ID), zap.String("email", acct.Email))
	return acct, nil
}

// Authenticate verifies credentials and issues a 24h token. The token hash
// and account flags are cached against the account id so the auth middleware
// can validate without a database round trip.
func (s *DefaultAccountService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	acct, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if acct == nil || !utils.CheckPassword(password, acct.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if acct.Suspended {
		return nil, ErrAccountSuspended
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	now := time.Now()
	acct.LoginTime = now
	if err := s.Repo.UpdateLoginTime(acct.ID, now); err != nil {
		s.Logger.Warn("failed to stamp login time", zap.String("accountId", acct.ID), zap.Error(err))
	}
	utils.StoreAuthEntry(s.AuthCache, acct.ID, utils.AuthEntry{
		TokenHash: utils.HashToken(token),
		IsAdmin:   acct.IsAdmin,
		Suspended: acct.Suspended,
	})

	return &AuthResponse{Token: token, Account: acct}, nil
}

// GetAccount fetches one account by id.
func (s *DefaultAccountService) GetAccount(id string) (*models.Account, error) {
	return s.Repo.GetByID(id)
}

// SetAdmin flips the admin flag on the account with the given email.
func (s *DefaultAccountService) SetAdmin(email string, isAdmin bool) error {
	if err := s.Repo.SetAdmin(strings.TrimSpace(strings.ToLower(email)), isAdmin); err != nil {
		return err
	}
	s.Logger.Info("admin flag changed", zap.String("email", email), zap.Bool("isAdmin", isAdmin))
	return nil
}

// SetSuspended flips the suspension flag on the account with the given email.
func (s *DefaultAccountService) SetSuspended(email string, suspended bool) error {
	if err := s.Repo.SetSuspended(strings.TrimSpace(strings.ToLower(email)), suspended); err != nil {
		return err
	}
	s.Logger.Info("account suspension changed", zap.String("email", email), zap.Bool("suspended", suspended))
	return nil
}
