package config

import (
	"os"
	"time"
)

// Signing material for the auth middleware. Load overwrites these from the
// resolved config; the init values keep tests and one-off tools working
// without a config file.
var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("FIRMSITE_JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)
	JWTExpiration = 24 * time.Hour
}
