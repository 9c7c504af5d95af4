package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs the session id into the cookie value so a forged or
// truncated cookie never reaches the store.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (cd *Codec) Issue(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cd.secret)
}

func (cd *Codec) Verify(signed string) (string, error) {
	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return cd.secret, nil
	})
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sid, nil
}
