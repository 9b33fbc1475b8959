package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	internal "github.com/cims/inventory-management/internal"
	userDatamodel "github.com/cims/inventory-management/internal/core/datamodel/user"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service owns credential registration and verification plus token issuance.
type Service struct {
	repo       RepositoryAPI
	tokenGen   TokenGeneratorAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, tokenGen TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = 10
	}
	return &Service{
		repo:       repo,
		tokenGen:   tokenGen,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register validates the candidate credentials, checks email uniqueness and
// persists the new user with a bcrypt hash in place of the plaintext.
func (s *Service) Register(dto RegisterDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	email := strings.TrimSpace(dto.Email)

	exists, err := s.repo.EmailExists(email)
	if err != nil {
		s.logger.Error("register: email lookup failed", "error", err)
		return internal.NewInternalError("email lookup failed", err)
	}
	if exists {
		return internal.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("register: password hashing failed", "error", err)
		return internal.NewInternalError("password hashing failed", err)
	}

	user := &userDatamodel.User{
		Name:         strings.TrimSpace(dto.Name),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(user); err != nil {
		// unique index on email catches the race between the existence
		// check and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrUserExists
		}
		s.logger.Error("register: user insert failed", "error", err)
		return internal.NewInternalError("user insert failed", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return nil
}

// Authenticate verifies the credentials and mints a bearer token. A missing
// user and a wrong password return the identical error so callers cannot
// probe which emails are registered.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(dto.Email)

	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrInvalidCredentials
		}
		s.logger.Error("login: user lookup failed", "error", err)
		return nil, internal.NewInternalError("user lookup failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokenGen.GenerateToken(strconv.FormatInt(user.ID, 10), user.Email)
	if err != nil {
		s.logger.Error("login: token generation failed", "error", err)
		return nil, internal.NewInternalError("token generation failed", err)
	}

	return &LoginResult{
		Token: token,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// ValidateAccessToken verifies signature and expiry and returns the claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateToken(tokenString)
}

// GenerateToken signs the subject identity into an HS256 token valid for
// the configured window from the moment of issuance.
func (j *JWTTokenGenerator) GenerateToken(userID string, email string) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// ValidateToken parses and verifies a token string against the signing secret.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}

	return claims, nil
}
