// Package token encodes and decodes the signed session token.
//
// The token carries exactly the three identity claims the session resolver
// re-checks against the account store: account id, full name, and role.
// It proves nothing beyond "this session was issued to this identity";
// the live re-check decides whether the identity is still valid.
package token

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/principal"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
)

const minKeyBytes = 32

// ErrInvalid covers every way a presented token can fail: bad signature,
// malformed payload, expiry, or missing claims. Collaborators map it to
// "clear the session artifact and redirect to login".
var ErrInvalid = apperrors.New(apperrors.CodeSessionInvalid, "session token is invalid")

// codecEnv holds raw env values before post-parse validation.
type codecEnv struct {
	HMACKey string        `env:"WAYNE_SESSION_HMAC_KEY"`
	Issuer  string        `env:"WAYNE_SESSION_ISSUER" envDefault:"projetp-wayne"`
	TTL     time.Duration `env:"WAYNE_SESSION_TTL" envDefault:"12h"`
}

// Config defines how session tokens are signed and verified.
type Config struct {
	Key    []byte
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

// Claims captures the validated identity claims of a session token.
type Claims struct {
	AccountID string
	FullName  string
	Role      role.Role
}

// sessionClaims is the internal claims type used for JWT parsing.
type sessionClaims struct {
	jwt.RegisteredClaims
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoadConfigFromEnv reads session token configuration from the environment.
func LoadConfigFromEnv(now func() time.Time) (Config, error) {
	var raw codecEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse session token env: %w", err)
	}
	keyHex := strings.TrimSpace(raw.HMACKey)
	if keyHex == "" {
		return Config{}, fmt.Errorf("WAYNE_SESSION_HMAC_KEY is required")
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return Config{}, fmt.Errorf("decode session hmac key: %w", err)
	}
	if len(key) < minKeyBytes {
		return Config{}, fmt.Errorf("session hmac key must be at least %d bytes", minKeyBytes)
	}
	if raw.TTL <= 0 {
		return Config{}, fmt.Errorf("session ttl must be positive")
	}
	if now == nil {
		now = time.Now
	}
	return Config{
		Key:    key,
		Issuer: strings.TrimSpace(raw.Issuer),
		TTL:    raw.TTL,
		Now:    now,
	}, nil
}

// Codec signs and verifies session tokens.
type Codec struct {
	cfg Config
}

// NewCodec creates a codec after validating the config.
func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.Key) < minKeyBytes {
		return nil, fmt.Errorf("session hmac key must be at least %d bytes", minKeyBytes)
	}
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("session issuer is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Codec{cfg: cfg}, nil
}

// Issue signs a session token for the given principal.
func (c *Codec) Issue(p principal.Principal) (string, error) {
	if strings.TrimSpace(p.ID) == "" {
		return "", fmt.Errorf("principal id is required")
	}
	if !p.Role.Valid() {
		return "", fmt.Errorf("principal role is invalid")
	}
	now := c.cfg.Now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.cfg.Issuer,
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.TTL)),
		},
		FullName: p.FullName,
		Role:     string(p.Role),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.cfg.Key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies a session token and extracts its identity claims.
// Every failure mode collapses into ErrInvalid; a presented token is
// either fully valid or worthless.
func (c *Codec) Parse(tokenString string) (Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return Claims{}, ErrInvalid
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(t *jwt.Token) (any, error) {
		return c.cfg.Key, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(c.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.cfg.Now().UTC() }),
	)
	if err != nil {
		return Claims{}, ErrInvalid
	}

	accountID := strings.TrimSpace(parsed.Subject)
	fullName := strings.TrimSpace(parsed.FullName)
	if accountID == "" || fullName == "" {
		return Claims{}, ErrInvalid
	}
	parsedRole, roleErr := role.Parse(parsed.Role)
	if roleErr != nil {
		return Claims{}, ErrInvalid
	}
	return Claims{
		AccountID: accountID,
		FullName:  fullName,
		Role:      parsedRole,
	}, nil
}
