package devserver

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohanthewiz/serr"
)

// JWT configuration for the stub's signup response token.
const (
	// tokenExpirationHours defines how long tokens remain valid (7 days)
	tokenExpirationHours = 24 * 7

	tokenIssuer = "signupform-devserver"

	// jwtSecretEnvVar optionally overrides the signing key
	jwtSecretEnvVar = "SIGNUPFORM_JWT_SECRET"
)

// tokenClaims extends JWT standard claims with the account identity.
type tokenClaims struct {
	jwt.RegisteredClaims
	AccountGUID string `json:"account_guid"`
	Username    string `json:"username"`
}

// loadSecret returns the signing key. A baked-in default is fine here —
// this server exists only for local development.
func loadSecret() []byte {
	if secret := os.Getenv(jwtSecretEnvVar); secret != "" {
		return []byte(secret)
	}
	return []byte("devserver-only-secret-not-for-production")
}

// generateToken signs an HS256 JWT for a freshly created account.
func generateToken(secret []byte, account *Account) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   account.GUID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * tokenExpirationHours)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
		AccountGUID: account.GUID,
		Username:    account.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", serr.Wrap(err, "failed to sign token")
	}
	return signed, nil
}
