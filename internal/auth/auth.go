package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Furoshaa/HowMuch/foundation/web"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type ctxKey int

// Key is how claims are stored and retrieved from a request context.
const Key ctxKey = 1

const (
	RoleUser = "USER"

	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

const (
	accessTokenTime  = 6 * time.Hour
	refreshTokenTime = 30 * 24 * time.Hour
)

// Claims is the payload carried by both token types.
type Claims struct {
	jwt.StandardClaims
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
}

// Authorized reports whether the claims' role is one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth signs and validates tokens. Revoked token ids are kept in redis
// until their natural expiry, which is the logout invalidation event the
// localStorage sessions of the old client never had.
type Auth struct {
	secret []byte
	redis  *redis.Client
}

func New(secret string, redisDB *redis.Client) *Auth {
	return &Auth{secret: []byte(secret), redis: redisDB}
}

// GenerateTokens issues an access/refresh pair for the user.
func (a *Auth) GenerateTokens(userID int) (string, string, error) {
	now := time.Now()

	access, err := a.sign(Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        fmt.Sprintf("%d-%d", userID, now.UnixNano()),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTime).Unix(),
		},
		UserId: userID,
		Role:   RoleUser,
		Type:   TypeAccess,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refresh, err := a.sign(Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        fmt.Sprintf("%d-%d-r", userID, now.UnixNano()),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(refreshTokenTime).Unix(),
		},
		UserId: userID,
		Role:   RoleUser,
		Type:   TypeRefresh,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return access, refresh, nil
}

func (a *Auth) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken checks the signature, expiry and the redis revocation list.
func (a *Auth) ValidateToken(ctx context.Context, tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	if a.redis != nil {
		revoked, err := a.redis.Exists(ctx, revokedKey(claims.Id)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return Claims{}, errors.Wrap(err, "checking token revocation")
		}
		if revoked > 0 {
			return Claims{}, errors.New("token has been revoked")
		}
	}

	return claims, nil
}

// Revoke blacklists the token id until it would have expired anyway.
func (a *Auth) Revoke(ctx context.Context, claims Claims) error {
	if a.redis == nil {
		return errors.New("revocation store not configured")
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	if err := a.redis.Set(ctx, revokedKey(claims.Id), "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "storing revoked token")
	}
	return nil
}

func revokedKey(id string) string {
	return "revoked:" + id
}

// GetClaims pulls claims out of a request context. Handlers behind the
// Authenticate middleware can rely on them being present.
func GetClaims(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}
	return claims, nil
}
