package usecase

import (
	"context"
	"fmt"
	"time"

	"classroom-booking/internal/data/entity"
	"classroom-booking/internal/data/repository"
	"classroom-booking/internal/dto/request"
	"classroom-booking/internal/dto/response"
	"classroom-booking/pkg/apperrors"
	"classroom-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.FacultyResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.FacultyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	now := time.Now()
	faculty := &entity.Faculty{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         entity.Role(req.Role),
	}

	// The repository surfaces a duplicate username as ErrAlreadyExists;
	// it is never swallowed into a generic failure.
	if err := s.repo.Faculty.Create(ctx, faculty); err != nil {
		return nil, err
	}

	s.log.Info("Faculty registered",
		zap.String("faculty_id", faculty.ID.String()),
		zap.String("username", faculty.Username),
		zap.String("role", string(faculty.Role)),
	)

	resp := response.FacultyToResponse(faculty)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	faculty, err := s.repo.Faculty.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if faculty == nil || !utils.CheckPassword(faculty.PasswordHash, req.Password) {
		s.log.Warn("Invalid login attempt", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthenticated)
	}

	session, err := s.createSession(ctx, faculty.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Faculty logged in",
		zap.String("faculty_id", faculty.ID.String()),
		zap.String("username", faculty.Username),
		zap.String("role", string(faculty.Role)),
	)

	return &response.AuthResponse{
		Faculty:   response.FacultyToResponse(faculty),
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return err
	}

	s.log.Info("Session revoked")
	return nil
}

func (s *authService) createSession(ctx context.Context, facultyID uuid.UUID) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		FacultyID: facultyID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
