package util

import (
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/fcurti/falegnameria-backend/pkg/config"
)

// SessionCookieName carries the signed admin session token.
const SessionCookieName = "curti_admin_session"

// SessionTTL bounds both the token expiry and the cookie max-age.
const SessionTTL = 12 * time.Hour

type (
	SessionClaims struct {
		Admin bool `json:"adm"`
		jwt.RegisteredClaims
	}
	// SessionInfo is the verified content of a session token. There is a
	// single shared admin credential, so the only claim is the admin flag.
	SessionInfo struct {
		Admin bool `json:"admin"`
	}
)

type TokenManager struct {
	secretKey  string
	sessionTTL time.Duration
}

var (
	once     sync.Once
	tokenMgr *TokenManager
)

func GetTokenMgr() *TokenManager {
	once.Do(func() {
		tokenMgr = newTokenManager(config.GetConfig().Auth.SessionSecret, SessionTTL)
	})
	return tokenMgr
}

func newTokenManager(secretKey string, sessionTTL time.Duration) *TokenManager {
	return &TokenManager{
		secretKey,
		sessionTTL,
	}
}

// CreateSession returns a signed session token with the admin claim set.
func (tm *TokenManager) CreateSession() (string, error) {
	claims := &SessionClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.secretKey))
}

// CheckSession verifies the signature and expiry of a session token.
func (tm *TokenManager) CheckSession(requestToken string) (SessionInfo, error) {
	claims := SessionClaims{}
	_, err := jwt.ParseWithClaims(requestToken, &claims, func(_ *jwt.Token) (any, error) {
		return []byte(tm.secretKey), nil
	})
	return SessionInfo{Admin: claims.Admin}, err
}
