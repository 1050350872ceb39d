package user

import (
	"context"
	"time"

	userRepo "pulsecrm/database/repository/user"
	"pulsecrm/models"
	"pulsecrm/services/permission"
	"pulsecrm/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionDuration is how long a signed-in session stays valid.
const SessionDuration = 24 * time.Hour

// DefaultUserService implements UserService. The auth cache is optional;
// when present, session token hashes are mirrored into Redis so the auth
// middleware can avoid a DB hit per request.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}

func (s *DefaultUserService) Register(input RegistrationInput) (*AuthResult, error) {
	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &AuthError{Message: "an account with this email already exists"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Roles are normalized through the permission enum so arbitrary strings
	// collapse to the user tier.
	role := permission.ParseRole(input.Role).String()

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return s.issueSession(u)
}

func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}
	return s.issueSession(u)
}

// issueSession signs a JWT, stores its hash on the user record and mirrors
// it into the auth cache.
func (s *DefaultUserService) issueSession(u *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, SessionDuration)
	if err != nil {
		return nil, err
	}
	hash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(u.ID, hash); err != nil {
		return nil, err
	}
	u.TokenHash = hash

	if s.AuthCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		key := utils.AuthCachePrefix + u.ID
		if err := s.AuthCache.Set(ctx, key, hash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to prime auth cache", zap.String("userID", u.ID), zap.Error(err))
		}
	}
	return &AuthResult{Token: token, User: u}, nil
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &NotFoundError{ID: id}
	}
	return u, nil
}

func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

func (s *DefaultUserService) UpdateProfile(id, name, email string) (*models.User, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = email
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *DefaultUserService) SetRole(id, role string) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}
	u.Role = permission.ParseRole(role).String()
	return s.Repo.Update(u)
}

func (s *DefaultUserService) Delete(id string) error {
	if err := s.RevokeToken(id); err != nil {
		utils.GetLogger().Warn("failed to revoke session before delete", zap.String("userID", id), zap.Error(err))
	}
	return s.Repo.Delete(id)
}

func (s *DefaultUserService) RevokeToken(id string) error {
	if s.AuthCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+id).Err(); err != nil {
			utils.GetLogger().Warn("failed to drop auth cache entry", zap.String("userID", id), zap.Error(err))
		}
	}
	return s.Repo.UpdateTokenHash(id, "")
}
