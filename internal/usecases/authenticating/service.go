// Package authenticating is the identity provider: it turns credentials into
// a signed token and tokens back into the caller identity the core consumes.
package authenticating

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository"
	"github.com/aideveloperindia/KDSMS-sub000/internal/config"
	"github.com/aideveloperindia/KDSMS-sub000/internal/domain"
)

type Authenticator interface {
	Login(employeeID, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	CreateUser(req *domain.CreateUserRequest) (*domain.User, error)
	GetProfile(employeeID string) (*domain.User, error)
	ListUsers() ([]*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Login verifies the credentials and issues a JWT whose claims embed the
// full caller identity, so request handling never needs a user lookup.
func (s *Service) Login(employeeID, password string) (string, error) {
	if employeeID == "" || password == "" {
		return "", errors.Wrap(domain.ErrInvalidInput, "employee id and password are required")
	}

	user, err := s.userRepo.GetByEmployeeID(employeeID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.Wrapf(ErrInvalidCredentials, "employee %s", employeeID)
	}
	if !user.Active {
		return "", errors.Wrapf(ErrUserDisabled, "employee %s", employeeID)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.Wrapf(ErrInvalidCredentials, "employee %s", employeeID)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}

	logrus.WithFields(logrus.Fields{
		"employee_id": user.EmployeeID,
		"role":        user.Role,
	}).Info("auth: login succeeded")

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := domain.Claims{
		EmployeeID: user.EmployeeID,
		Name:       user.Name,
		Role:       user.Role,
		Zone:       user.Zone,
		Area:       user.Area,
		SubArea:    user.SubArea,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// CreateUser provisions an employee account. The role's mandatory hierarchy
// levels and the canonical coordinate mapping are enforced here, so only
// well-formed identities ever reach the sale write path.
func (s *Service) CreateUser(req *domain.CreateUserRequest) (*domain.User, error) {
	if req.EmployeeID == "" || req.Name == "" || req.Password == "" {
		return nil, errors.Wrap(domain.ErrInvalidInput, "employee id, name and password are required")
	}

	identity := domain.Identity{
		EmployeeID: req.EmployeeID,
		Role:       req.Role,
		Zone:       req.Zone,
		Area:       req.Area,
		SubArea:    req.SubArea,
	}
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hashing password")
	}

	user := &domain.User{
		EmployeeID:   req.EmployeeID,
		Name:         req.Name,
		PasswordHash: string(hashed),
		Role:         req.Role,
		Zone:         req.Zone,
		Area:         req.Area,
		SubArea:      req.SubArea,
		Active:       true,
	}

	return s.userRepo.Create(user)
}

func (s *Service) GetProfile(employeeID string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Wrapf(domain.ErrNotFound, "employee %s", employeeID)
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUsers() ([]*domain.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		user.PasswordHash = ""
	}
	return users, nil
}
