package jwtkit

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims are the verified contents of an admin token. SessionID identifies
// the invoking actor's interactive session; service-to-service tokens carry
// no session and are treated as non-interactive callers.
type Claims struct {
	ActorID   string
	SessionID string
	Roles     []string
}

// Signer issues asymmetric admin tokens.
type Signer interface {
	// Algorithm returns the JWS algorithm (e.g., RS256).
	Algorithm() string
	// KID returns the current key id.
	KID() string
	// Sign creates a signed token for the given claims with the given ttl.
	Sign(ctx context.Context, claims Claims, ttl time.Duration) (string, error)
}

// RSASigner is a minimal in-memory RSA signer for bootstrap/dev. Production
// should load the key from KMS or config via NewRSASignerFromPEM.
type RSASigner struct {
	key *rsa.PrivateKey
	kid string
}

// NewRSASigner generates a fresh RSA key (default 2048 bits).
func NewRSASigner(bits int, kid string) (*RSASigner, error) {
	if bits == 0 {
		bits = 2048
	}
	k, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, err
	}
	return &RSASigner{key: k, kid: kid}, nil
}

// NewRSASignerFromPEM constructs an RSASigner from a PEM-encoded private key.
func NewRSASignerFromPEM(kid string, pemBytes []byte) (*RSASigner, error) {
	if len(pemBytes) == 0 {
		return nil, errors.New("empty RSA private key pem")
	}
	blk, _ := pem.Decode(pemBytes)
	if blk == nil {
		return nil, errors.New("failed to decode RSA private key pem")
	}
	var parsed *rsa.PrivateKey
	var err error
	switch blk.Type {
	case "RSA PRIVATE KEY":
		parsed, err = x509.ParsePKCS1PrivateKey(blk.Bytes)
	default:
		var key any
		key, err = x509.ParsePKCS8PrivateKey(blk.Bytes)
		if err == nil {
			var ok bool
			if parsed, ok = key.(*rsa.PrivateKey); !ok {
				err = errors.New("pkcs8 key is not RSA private key")
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return &RSASigner{key: parsed, kid: kid}, nil
}

func (s *RSASigner) Algorithm() string         { return jwt.SigningMethodRS256.Alg() }
func (s *RSASigner) KID() string               { return s.kid }
func (s *RSASigner) PublicKey() *rsa.PublicKey { return &s.key.PublicKey }

func (s *RSASigner) Sign(_ context.Context, claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	mc := jwt.MapClaims{
		"sub": claims.ActorID,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(ttl)),
	}
	if claims.SessionID != "" {
		mc["sid"] = claims.SessionID
	}
	if len(claims.Roles) > 0 {
		mc["roles"] = claims.Roles
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, mc)
	token.Header["kid"] = s.kid
	return token.SignedString(s.key)
}

// Verifier validates admin tokens against a set of RSA public keys by kid.
type Verifier struct {
	keys map[string]*rsa.PublicKey
}

// NewVerifier builds a verifier over the given kid→public-key set.
func NewVerifier(keys map[string]*rsa.PublicKey) *Verifier {
	if keys == nil {
		keys = map[string]*rsa.PublicKey{}
	}
	return &Verifier{keys: keys}
}

// VerifierForSigner is a convenience for single-key setups and tests.
func VerifierForSigner(s *RSASigner) *Verifier {
	return NewVerifier(map[string]*rsa.PublicKey{s.KID(): s.PublicKey()})
}

// Verify parses and validates the token and extracts Claims.
func (v *Verifier) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		pub, ok := v.keys[kid]
		if !ok {
			return nil, fmt.Errorf("unknown key id %q", kid)
		}
		return pub, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return Claims{}, err
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("invalid token claims")
	}
	var c Claims
	c.ActorID, _ = mc["sub"].(string)
	c.SessionID, _ = mc["sid"].(string)
	if raw, ok := mc["roles"].([]any); ok {
		for _, r := range raw {
			if s, ok := r.(string); ok {
				c.Roles = append(c.Roles, s)
			}
		}
	}
	if c.ActorID == "" {
		return Claims{}, errors.New("token missing subject")
	}
	return c, nil
}
