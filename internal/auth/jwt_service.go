package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"alumniport/internal/model"
)

// TokenExpiry is the absolute lifetime of a session token. Tokens are
// stateless and expire by time only; there is no revocation list.
const TokenExpiry = 24 * time.Hour

// Claims carries the authenticated identity plus the profile snapshot that
// post and comment writes embed. Everything handlers need is in the token,
// so verification never touches the database.
type Claims struct {
	UserID         uuid.UUID  `json:"id"`
	Role           model.Role `json:"role"`
	Name           string     `json:"name"`
	BatchYear      int        `json:"batch_year"`
	Branch         string     `json:"branch"`
	ProfilePicture string     `json:"profile_picture"`
	jwt.RegisteredClaims
}

// JWTService handles session token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// GenerateToken issues a session token for the user. Role and profile
// fields always come from the stored record, never from the request.
func (s *JWTService) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:         user.ID,
		Role:           user.Role,
		Name:           user.Name,
		BatchYear:      user.BatchYear,
		Branch:         user.Branch,
		ProfilePicture: user.ProfilePicture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a session token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
