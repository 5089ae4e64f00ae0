// Package services contains server-side business logic for the dashboard's
// development backend.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/mantis/internal/common"
	"github.com/dmitrijs2005/mantis/internal/cryptox"
	"github.com/dmitrijs2005/mantis/internal/server/auth"
	"github.com/dmitrijs2005/mantis/internal/server/config"
	"github.com/dmitrijs2005/mantis/internal/server/models"
	"github.com/dmitrijs2005/mantis/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 64
	MaxUsernameLen = 16
	MaxListLimit   = 100
)

// AuthenticatedUser is the public user record plus a freshly minted token.
type AuthenticatedUser struct {
	models.PublicUser
	Token string `json:"token"`
}

type UserService struct {
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	hashParams                  cryptox.Params
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		hashParams:                  cryptox.DefaultParams,
	}
}

// Register validates input and creates an inactive, non-superuser account.
// A taken email or username yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if err := validateRegistration(email, username, password); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users()

	if err := s.ensureFree(ctx, email, username); err != nil {
		return nil, err
	}

	u, err := repo.Create(ctx, s.newUser(email, username, password))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Authenticate accepts a username or an email as login. Unknown logins and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*AuthenticatedUser, error) {
	user, err := s.findByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword([]byte(password), user.HashedPassword)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.UID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthenticatedUser{PublicUser: user.Public(), Token: token}, nil
}

// CurrentUser resolves the owner of an access token. A token whose subject
// no longer exists is reported as common.ErrInvalidToken.
func (s *UserService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	uid, err := auth.GetSubjectFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users().GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users().GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]*models.User, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", common.ErrorValidation)
	}
	if limit < 1 || limit > MaxListLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", common.ErrorValidation, MaxListLimit)
	}
	return s.repomanager.Users().List(ctx, skip, limit)
}

// SeedFirstUser creates an active superuser unless the username is already
// taken. Registration rules are not applied to seeded accounts.
func (s *UserService) SeedFirstUser(ctx context.Context, email, username, password, name string) (bool, error) {
	if username == "" {
		return false, nil
	}

	_, err := s.repomanager.Users().GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return false, err
	}

	u := s.newUser(email, username, password)
	u.IsActive = true
	u.IsSuperuser = true
	if name != "" {
		u.Name = &name
	}

	if _, err := s.repomanager.Users().Create(ctx, u); err != nil {
		return false, fmt.Errorf("error seeding user: %w", err)
	}
	return true, nil
}

// --- helpers below ---

func (s *UserService) newUser(email, username, password string) *models.User {
	return &models.User{
		UID:               strings.ReplaceAll(uuid.NewString(), "-", ""),
		Email:             email,
		Username:          username,
		HashedPassword:    cryptox.HashPassword([]byte(password), s.hashParams),
		PreferredLanguage: models.DefaultPreferredLanguage,
		AccessType:        models.DefaultAccessType,
	}
}

func (s *UserService) ensureFree(ctx context.Context, email, username string) error {
	repo := s.repomanager.Users()

	for _, lookup := range []func() (*models.User, error){
		func() (*models.User, error) { return repo.GetByEmail(ctx, email) },
		func() (*models.User, error) { return repo.GetByUsername(ctx, username) },
	} {
		_, err := lookup()
		if err == nil {
			return common.ErrorAlreadyExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking user: %w", err)
		}
	}
	return nil
}

func (s *UserService) findByLogin(ctx context.Context, login string) (*models.User, error) {
	repo := s.repomanager.Users()

	user, err := repo.GetByUsername(ctx, login)
	if err == nil || !errors.Is(err, common.ErrorNotFound) || !strings.Contains(login, "@") {
		return user, err
	}
	return repo.GetByEmail(ctx, login)
}

func validateRegistration(email, username, password string) error {
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address", common.ErrorValidation)
	}
	if username == "" || len([]rune(username)) > MaxUsernameLen {
		return fmt.Errorf("%w: username must be 1 to %d characters", common.ErrorValidation, MaxUsernameLen)
	}
	if n := len([]rune(password)); n < MinPasswordLen || n > MaxPasswordLen {
		return fmt.Errorf("%w: password must be %d to %d characters", common.ErrorValidation, MinPasswordLen, MaxPasswordLen)
	}
	return nil
}
