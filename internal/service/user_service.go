package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"halodkm-be-svc/internal/apperrors"
	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/pkg/logger"
)

// CreateUserRequest carries a user creation payload
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	FullName string  `json:"full_name" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	RT       *string `json:"rt,omitempty"`
}

// UserService defines the user management business operations
type UserService interface {
	GetByID(id uint) (*models.User, error)
	GetAll() ([]*models.User, error)
	Create(actor *models.User, req *CreateUserRequest) (*models.User, error)
	Delete(actor *models.User, id uint) error
}

// userService implements UserService
type userService struct {
	userRepo repository.UserRepository
	auditSvc AuditService
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, auditSvc AuditService, logger *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		auditSvc: auditSvc,
		logger:   logger,
	}
}

// GetByID retrieves a user by ID
func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user tidak ditemukan")
		}
		return nil, err
	}
	return user, nil
}

// GetAll retrieves all users
func (s *userService) GetAll() ([]*models.User, error) {
	return s.userRepo.GetAll()
}

// Create registers a new user with a bcrypt-hashed password
func (s *userService) Create(actor *models.User, req *CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.NewValidation("username harus diisi")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.NewValidation("password minimal 6 karakter")
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleJamaah {
		return nil, apperrors.NewValidation("role harus admin atau jamaah")
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, apperrors.NewValidation("username sudah digunakan")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: string(hashed),
		FullName: strings.TrimSpace(req.FullName),
		Role:     req.Role,
		RT:       req.RT,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menambah user: %s (%s)", user.Username, user.Role), "user", user.ID)
	return user, nil
}

// Delete removes a user. Deleting your own account is rejected.
func (s *userService) Delete(actor *models.User, id uint) error {
	if actor != nil && actor.ID == id {
		return apperrors.NewValidation("tidak dapat menghapus akun sendiri")
	}

	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("user tidak ditemukan")
		}
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menghapus user: %s", user.Username), "user", id)
	return nil
}
