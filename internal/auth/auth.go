package auth

import (
	"time"

	userDatamodel "github.com/cims/inventory-management/internal/core/datamodel/user"
	"github.com/golang-jwt/jwt/v5"
)

type ServiceAPI interface {
	Register(dto RegisterDTO) error
	Authenticate(dto LoginDTO) (*LoginResult, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type RepositoryAPI interface {
	GetByEmail(email string) (*userDatamodel.User, error)
	EmailExists(email string) (bool, error)
	Create(user *userDatamodel.User) error
}

type TokenGeneratorAPI interface {
	GenerateToken(userID string, email string) (token string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

// LoginResult carries what a successful login hands back to the client:
// the bearer token plus the display identity.
type LoginResult struct {
	Token string
	Name  string
	Email string
}

// Claims represents the signed token claims. The subject identity is fully
// reconstructed from these on every request; the user store is not consulted.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}
