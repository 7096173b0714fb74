package service

import (
	"context"
	"time"

	"github.com/DeDsEC-7/NoteNest-Api/internal/constant"
	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/logger"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/mailer"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/unitofwork"
	"github.com/DeDsEC-7/NoteNest-Api/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
	SetAutosave(ctx context.Context, userId uuid.UUID, req *dto.SetAutosaveRequest) (*dto.UserResponse, error)
	DeleteAccount(ctx context.Context, userId uuid.UUID) error
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	emailService     mailer.IEmailService
	publisherService IPublisherService
	jwtSecret        string
	jwtExpiry        time.Duration
	log              logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisherService IPublisherService,
	jwtSecret string,
	jwtExpiry time.Duration,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		emailService:     emailService,
		publisherService: publisherService,
		jwtSecret:        jwtSecret,
		jwtExpiry:        jwtExpiry,
		log:              log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: string(hash),
		Autosave:     false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperr.Unexpected(err)
	}

	s.publishActivity(ctx, constant.EventUserRegistered, user.Id)

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if user == nil {
		return nil, apperr.Unauthenticated("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthenticated("Invalid credentials")
	}

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	s.publishActivity(ctx, constant.EventUserLogin, user.Id)

	return &dto.LoginResponse{
		User:  toUserResponse(user),
		Token: signedToken,
	}, nil
}

func (s *authService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: *req.Email})
		if err != nil {
			return nil, apperr.Unexpected(err)
		}
		if taken != nil {
			return nil, apperr.Conflict("Email already registered")
		}
		user.Email = *req.Email
	}
	if req.Firstname != nil {
		user.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		user.Lastname = *req.Lastname
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperr.Unexpected(err)
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *authService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return apperr.Unexpected(err)
	}
	if user == nil {
		return apperr.NotFound("User")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return apperr.Unauthenticated("Old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Unexpected(err)
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return apperr.Unexpected(err)
	}

	s.publishActivity(ctx, constant.EventPasswordChanged, user.Id)

	// Security notice is auxiliary, never fail the request over SMTP.
	go func(email string) {
		if err := s.emailService.SendPasswordChangedNotice(email); err != nil {
			s.log.Warn("auth", "Failed to send password change notice", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}(user.Email)

	return nil
}

func (s *authService) SetAutosave(ctx context.Context, userId uuid.UUID, req *dto.SetAutosaveRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}

	user.Autosave = *req.Autosave
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperr.Unexpected(err)
	}

	res := toUserResponse(user)
	return &res, nil
}

// DeleteAccount removes the user and every note, todo, and task they own
// in a single transaction.
func (s *authService) DeleteAccount(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return apperr.Unexpected(err)
	}
	if user == nil {
		return apperr.NotFound("User")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperr.Unexpected(err)
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return apperr.Unexpected(err)
	}
	if err := uow.TodoRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return apperr.Unexpected(err)
	}
	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return apperr.Unexpected(err)
	}

	if err := uow.Commit(); err != nil {
		return apperr.Unexpected(err)
	}

	s.publishActivity(ctx, constant.EventAccountDeleted, userId)

	return nil
}

func (s *authService) publishActivity(ctx context.Context, eventType string, userId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       map[string]interface{}{"user_id": userId.String()},
		OccurredAt: time.Now(),
	}
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.log.Warn("auth", "Failed to publish activity event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        user.Id,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Email:     user.Email,
		Phone:     user.Phone,
		Autosave:  user.Autosave,
		CreatedAt: user.CreatedAt,
	}
}
