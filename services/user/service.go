// Package user owns account registration, authentication and profiles.
package user

import (
	"context"
	"strings"
	"time"

	"impulso/apperrors"
	ongRepo "impulso/database/repository/ong"
	userRepo "impulso/database/repository/user"
	"impulso/models"
	"impulso/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of issued session tokens.
const tokenTTL = 24 * time.Hour

// RegisterRequest is the self-service signup payload.
type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Type     string          `json:"type"`
	Phone    string          `json:"phone,omitempty"`
	Location models.Location `json:"location,omitempty"`
}

// AuthResult carries the issued token together with the authenticated user.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Service is the account operation surface.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ChangePassword(ctx context.Context, userID, current, next string) error

	// ProvisionJovemAccount creates the login account behind an ONG-managed
	// jovem profile. The account starts flagged for a forced password change.
	ProvisionJovemAccount(ctx context.Context, name, email, tempPassword string) (*models.User, error)

	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Users  userRepo.UserRepository
	Ongs   ongRepo.OngRepository
	Logger *zap.Logger
}

func (s *DefaultService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("name, email and password are required")
	}
	if req.Type == "" {
		req.Type = models.RoleCliente
	}
	switch req.Type {
	case models.RoleCliente, models.RoleOng:
	case models.RoleJovem:
		// Jovem accounts are provisioned by their ONG, never self-registered.
		return nil, apperrors.Validation("jovem accounts are created by their ONG")
	default:
		return nil, apperrors.Validation("unknown account type %q", req.Type)
	}

	existing, err := s.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to check email %s", req.Email)
	}
	if existing != nil {
		return nil, apperrors.Conflict("email %s is already registered", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to hash password")
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Type:         req.Type,
		Phone:        req.Phone,
		Location:     req.Location,
	}
	id, err := s.Users.Create(ctx, user)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to persist user")
	}
	user.ID = id

	if req.Type == models.RoleOng {
		if _, err := s.Ongs.Create(ctx, models.Ong{
			UserID:   user.ID,
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Location: req.Location,
		}); err != nil {
			return nil, apperrors.Storage(err, "failed to create ONG profile")
		}
	}

	s.log().Info("user registered", zap.String("userId", user.ID), zap.String("type", user.Type))
	return s.Users.GetByID(ctx, user.ID)
}

func (s *DefaultService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load user %s", email)
	}
	if user == nil {
		return nil, apperrors.Authorization("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.Authorization("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Type, tokenTTL)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to issue token")
	}
	return &AuthResult{Token: token, User: *user}, nil
}

func (s *DefaultService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if next == "" {
		return apperrors.Validation("new password is required")
	}
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return apperrors.Authorization("current password does not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Storage(err, "failed to hash password")
	}
	user.PasswordHash = string(hash)
	user.FirstLogin = false
	if err := s.Users.Update(ctx, *user); err != nil {
		return apperrors.Storage(err, "failed to persist user %s", userID)
	}
	return nil
}

func (s *DefaultService) ProvisionJovemAccount(ctx context.Context, name, email, tempPassword string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || tempPassword == "" {
		return nil, apperrors.Validation("name, email and a temporary password are required")
	}
	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to check email %s", email)
	}
	if existing != nil {
		return nil, apperrors.Conflict("email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to hash password")
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Type:         models.RoleJovem,
		FirstLogin:   true,
	}
	id, err := s.Users.Create(ctx, user)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to persist user")
	}
	return s.Users.GetByID(ctx, id)
}

func (s *DefaultService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.loadUser(ctx, id)
}

func (s *DefaultService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to list users")
	}
	return users, nil
}

func (s *DefaultService) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Location != nil {
		user.Location = *upd.Location
	}
	if err := s.Users.Update(ctx, *user); err != nil {
		return nil, apperrors.Storage(err, "failed to persist user %s", id)
	}
	return s.Users.GetByID(ctx, id)
}

func (s *DefaultService) loadUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load user %s", id)
	}
	if user == nil {
		return nil, apperrors.NotFound("user %s not found", id)
	}
	return user, nil
}

func (s *DefaultService) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
