package token

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is used when the configured token lifetime is absent or unparseable.
const DefaultTTL = 7 * 24 * time.Hour

// Closed error set; callers switch on these instead of inspecting library errors.
var (
	ErrNoSecret     = errors.New("signing secret is not configured")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the JWT payload carried by session tokens.
type Claims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

var (
	secondsRe  = regexp.MustCompile(`^\d+$`)
	durationRe = regexp.MustCompile(`^(\d+)([smhd])$`)
)

// ParseTTL interprets a token-lifetime setting: a bare integer is seconds, and
// "<amount><unit>" accepts s, m, h and d units. Anything else falls back to
// DefaultTTL.
func ParseTTL(val string) time.Duration {
	if val == "" {
		return DefaultTTL
	}
	if secondsRe.MatchString(val) {
		n, err := strconv.Atoi(val)
		if err != nil {
			return DefaultTTL
		}
		return time.Duration(n) * time.Second
	}
	m := durationRe.FindStringSubmatch(val)
	if m == nil {
		return DefaultTTL
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultTTL
	}
	switch m[2] {
	case "s":
		return time.Duration(amount) * time.Second
	case "m":
		return time.Duration(amount) * time.Minute
	case "h":
		return time.Duration(amount) * time.Hour
	case "d":
		return time.Duration(amount) * 24 * time.Hour
	}
	return DefaultTTL
}

// Issue creates a signed session token for the given admin id.
func Issue(adminID, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	now := time.Now()
	claims := &Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Verify checks signature and expiry and returns the embedded admin id.
func Verify(tokenString, secret string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.AdminID == "" {
		return "", ErrInvalidToken
	}
	return claims.AdminID, nil
}
