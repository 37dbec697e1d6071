package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"courseplatform/pkg/logger"
	"courseplatform/services/auth-service/internal/domain"
	"courseplatform/services/auth-service/internal/infrastructure/security"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role string) error
}

// TokenStore хранит выданные refresh-токены. TakeRefresh удаляет токен при чтении.
type TokenStore interface {
	SaveRefresh(ctx context.Context, userID, refreshToken string) error
	TakeRefresh(ctx context.Context, refreshToken string) (string, error)
	DeleteRefresh(ctx context.Context, refreshToken string) error
}

var validate = validator.New()

type registerForm struct {
	Email    string `validate:"required,email,max=100"`
	Username string `validate:"required,min=3,max=50"`
	Password string `validate:"required,min=8,max=72"`
}

type AuthUseCase struct {
	users        UserStore
	tokens       TokenStore
	hasher       *security.PasswordHasher
	tokenManager *security.TokenManager
	admins       []string
	log          *logger.Logger
}

func NewAuthUseCase(
	us UserStore,
	ts TokenStore,
	h *security.PasswordHasher,
	tm *security.TokenManager,
	admins []string,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users:        us,
		tokens:       ts,
		hasher:       h,
		tokenManager: tm,
		admins:       admins,
		log:          log.With("component", "auth"),
	}
}

type Session struct {
	AccessToken  string
	RefreshToken string
	Role         string
}

func (uc *AuthUseCase) roleFor(email string) string {
	if slices.Contains(uc.admins, strings.ToLower(email)) {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

func (uc *AuthUseCase) Register(ctx context.Context, email, username, password string) (string, error) {
	form := registerForm{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Username: strings.TrimSpace(username),
		Password: password,
	}
	if err := validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return "", fmt.Errorf("%w: %s is invalid", domain.ErrInvalidInput, strings.ToLower(fieldErrs[0].Field()))
		}
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	hash, err := uc.hasher.Hash(form.Password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Email:    form.Email,
		Username: form.Username,
		Password: hash,
		Role:     uc.roleFor(form.Email),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return "", err
	}

	uc.log.Info("user registered", "user_id", user.ID, "role", user.Role)
	return user.ID.String(), nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := uc.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Список админов мог поменяться после регистрации.
	if role := uc.roleFor(user.Email); role != user.Role {
		if err := uc.users.SetRole(ctx, user.ID, role); err != nil {
			return nil, err
		}
		uc.log.Info("role changed", "user_id", user.ID, "role", role)
		user.Role = role
	}

	return uc.issue(ctx, user)
}

// Refresh выдаёт новую пару токенов. Старый refresh-токен сгорает.
func (uc *AuthUseCase) Refresh(ctx context.Context, oldRefreshToken string) (*Session, error) {
	userID, err := uc.tokenManager.ValidateRefreshToken(oldRefreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	cachedID, err := uc.tokens.TakeRefresh(ctx, oldRefreshToken)
	if err != nil {
		return nil, err
	}
	if cachedID != userID {
		return nil, domain.ErrTokenRevoked
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.issue(ctx, user)
}

func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.tokens.DeleteRefresh(ctx, refreshToken)
}

func (uc *AuthUseCase) ValidateAccess(token string) (security.Claims, error) {
	claims, err := uc.tokenManager.ValidateAccessToken(token)
	if err != nil {
		return security.Claims{}, domain.ErrInvalidToken
	}
	return claims, nil
}

func (uc *AuthUseCase) issue(ctx context.Context, user *domain.User) (*Session, error) {
	access, refresh, err := uc.tokenManager.Generate(user.ID.String(), user.Role)
	if err != nil {
		return nil, err
	}
	if err := uc.tokens.SaveRefresh(ctx, user.ID.String(), refresh); err != nil {
		return nil, err
	}
	return &Session{AccessToken: access, RefreshToken: refresh, Role: user.Role}, nil
}
