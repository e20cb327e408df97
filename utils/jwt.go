package utils

import (
	"log"
	"os"
)

// JWTSecretKey is the HMAC secret shared with the core API. The core issues
// tokens on login; this service only verifies them.
var JWTSecretKey string

// JWTIssuer is the issuer claim the core API stamps on its tokens.
const JWTIssuer = "ownerstatements-core"

func InitJWT() {
	// For tests, use a default secret if the environment doesn't set one
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}
}
