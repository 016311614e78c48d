package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"watchearn/internal/domain"
	"watchearn/internal/pg"
	"watchearn/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	userRepo    Repo
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates an account. The first account ever created gets the
// admin role; the count check and the insert share a transaction so two
// concurrent first registrations cannot both become admin.
func (s *Service) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}

		count, err := s.userRepo.Count(ctx)
		if err != nil {
			return err
		}
		user.Role = domain.RoleUser
		if count == 0 {
			user.Role = domain.RoleAdmin
		}

		_, err = s.userRepo.Create(ctx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			zap.L().Info("user already exists", zap.String("email", email))
		} else {
			zap.L().Error("can't create user: ", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email), zap.String("role", user.Role))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// GetUserByID is used by the middleware stack to resolve the account behind
// a token, mainly to refuse suspended users.
func (s *Service) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	return user, nil
}
