package actor

import "context"

type ctxKey struct{}

// WithSession attaches the invoking actor's session id to ctx. Front ends
// call this after authenticating an interactive caller; non-interactive
// callers (automation, service tokens) simply never attach one.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionFromContext reads the invoking actor's session id from ctx.
func SessionFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(ctxKey{})
	s, ok := v.(string)
	return s, ok && s != ""
}
