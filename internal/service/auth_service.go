package service

import (
	"errors"
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/pkg/apperr"
	"go-dairy-ops/pkg/jwt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InactivityTimeout is how long a session may sit idle before the next request
// is rejected. The frontend heartbeats to keep it alive.
const InactivityTimeout = 5 * time.Minute

// LoginResult carries the token plus the role profile the frontend routes on
type LoginResult struct {
	Token     string             `json:"token"`
	User      model.UserResponse `json:"user"`
	ProfileID string             `json:"profile_id,omitempty"`
	Profile   interface{}        `json:"profile,omitempty"`
}

// AuthService issues and validates sessions. Logging in rotates the user's
// token version, so at most one token per user is ever valid.
type AuthService interface {
	Login(email, password string) (*LoginResult, error)
	ValidateSession(claims *jwt.Claims) (*model.User, error)
	Heartbeat(userID uuid.UUID) error
	ResetPassword(email, newPassword string) error
}

type authService struct {
	userRepo     repository.UserRepository
	sellerRepo   repository.SellerRepository
	managerRepo  repository.ManagerRepository
	employeeRepo repository.EmployeeRepository
}

func NewAuthService(
	userRepo repository.UserRepository,
	sellerRepo repository.SellerRepository,
	managerRepo repository.ManagerRepository,
	employeeRepo repository.EmployeeRepository,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		sellerRepo:   sellerRepo,
		managerRepo:  managerRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *authService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Authorization("invalid email or password")
	} else if err != nil {
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, apperr.Authorization("invalid email or password")
	}
	if !user.IsActive {
		return nil, apperr.Authorization("account is deactivated")
	}

	profileID, profile, err := s.profileFor(user)
	if err != nil {
		return nil, err
	}

	// New login invalidates any previously issued token
	tokenVersion := uuid.New().String()
	if err := s.userRepo.UpdateTokenVersion(user.ID, tokenVersion); err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateLastSeen(user.ID); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, user.Role, profileID, tokenVersion)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		User:      user.ToResponse(),
		ProfileID: profileID,
		Profile:   profile,
	}, nil
}

// profileFor resolves the role-specific profile row. Admins have none.
func (s *authService) profileFor(user *model.User) (string, interface{}, error) {
	switch user.Role {
	case model.RoleSeller:
		seller, err := s.sellerRepo.FindByUserID(user.ID)
		if err != nil {
			return "", nil, apperr.Authorization("seller profile not found")
		}
		return seller.ID.String(), seller, nil
	case model.RoleManager:
		manager, err := s.managerRepo.FindByUserID(user.ID)
		if err != nil {
			return "", nil, apperr.Authorization("manager profile not found")
		}
		return manager.ID.String(), manager, nil
	case model.RoleEmployee:
		employee, err := s.employeeRepo.FindByUserID(user.ID)
		if err != nil {
			return "", nil, apperr.Authorization("employee profile not found")
		}
		return employee.ID.String(), employee, nil
	default:
		return "", nil, nil
	}
}

// ValidateSession enforces token version and the inactivity window on top of
// the signature check the middleware already did.
func (s *authService) ValidateSession(claims *jwt.Claims) (*model.User, error) {
	user, err := s.userRepo.FindByID(claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Authorization("user not found")
	} else if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apperr.Authorization("account is deactivated")
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, apperr.Authorization("session has been superseded by a newer login")
	}
	if user.LastSeenAt != nil && time.Since(*user.LastSeenAt) > InactivityTimeout {
		return nil, apperr.Authorization("session expired due to inactivity")
	}

	return user, nil
}

func (s *authService) Heartbeat(userID uuid.UUID) error {
	return s.userRepo.UpdateLastSeen(userID)
}

func (s *authService) ResetPassword(email, newPassword string) error {
	if len(newPassword) < 6 {
		return apperr.Validation("password must be at least 6 characters")
	}

	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("user not found")
	} else if err != nil {
		return err
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(user.ID, user.Password); err != nil {
		return err
	}
	// Force re-login everywhere
	return s.userRepo.UpdateTokenVersion(user.ID, uuid.New().String())
}
