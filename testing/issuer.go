// Package testing provides utilities for testing applications that embed
// sponsorkit. It provides a mock issuer that serves JWKS and signs admin
// tokens, enabling adapter tests without a real auth server.
//
// Example usage:
//
//	issuer, _ := testing.NewTestIssuer()
//	defer issuer.Close()
//
//	token, _ := issuer.InteractiveToken("admin-1", "sess-42")
//	// attach as "Authorization: Bearer <token>"
package testing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	jwtkit "github.com/open-rails/sponsorkit/jwt"
)

// TestIssuer signs admin tokens that validate against its own JWKS, served by
// an httptest server at /.well-known/jwks.json.
type TestIssuer struct {
	server *httptest.Server
	signer *jwtkit.RSASigner
}

// NewTestIssuer generates a fresh RSA key pair and starts the JWKS server.
// Call Close when done.
func NewTestIssuer() (*TestIssuer, error) {
	signer, err := jwtkit.NewRSASigner(2048, "test-key-1")
	if err != nil {
		return nil, err
	}
	ti := &TestIssuer{signer: signer}
	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/jwks.json", func(w http.ResponseWriter, r *http.Request) {
		jwtkit.ServeJWKS(w, r, jwtkit.SignerJWKS(signer))
	})
	ti.server = httptest.NewServer(mux)
	return ti, nil
}

// URL returns the issuer's base URL.
func (t *TestIssuer) URL() string { return t.server.URL }

// Verifier returns a verifier for tokens signed by this issuer.
func (t *TestIssuer) Verifier() *jwtkit.Verifier { return jwtkit.VerifierForSigner(t.signer) }

// InteractiveToken signs a token for an actor with a resolvable session, i.e.
// a caller allowed to grant private tiers.
func (t *TestIssuer) InteractiveToken(actorID, sessionID string) (string, error) {
	return t.signer.Sign(context.Background(), jwtkit.Claims{ActorID: actorID, SessionID: sessionID}, time.Hour)
}

// ServiceToken signs a token without a session id: authenticated, but
// non-interactive.
func (t *TestIssuer) ServiceToken(actorID string) (string, error) {
	return t.signer.Sign(context.Background(), jwtkit.Claims{ActorID: actorID}, time.Hour)
}

// Close shuts down the JWKS server.
func (t *TestIssuer) Close() { t.server.Close() }
