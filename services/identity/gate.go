package identity

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	maxAttempts = 3
	retryDelay  = time.Second
)

// Session is the resolved identity of the signed-in actor.
type Session struct {
	Email      string
	SignedInAt time.Time
}

// Gate fronts an identity Provider. Sign-up and sign-in retry a bounded
// number of times with linearly increasing backoff when the provider reports
// its transient availability error; every other failure propagates
// immediately. The gate also tracks the current session and notifies
// registered listeners when it changes.
type Gate struct {
	provider Provider
	logger   *zap.Logger

	mu        sync.Mutex
	current   *Session
	listeners map[int]func(*Session)
	nextID    int

	// sleep is swappable in tests.
	sleep func(context.Context, time.Duration) error
}

// NewGate wraps the given provider.
func NewGate(provider Provider, logger *zap.Logger) *Gate {
	return &Gate{
		provider:  provider,
		logger:    logger,
		listeners: make(map[int]func(*Session)),
		sleep:     sleepCtx,
	}
}

// SignUp creates an account with the external provider.
func (g *Gate) SignUp(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	return g.retry(ctx, "sign-up", func() error {
		return g.provider.CreateAccount(ctx, email, password)
	})
}

// SignIn authenticates against the external provider and establishes the
// current session.
func (g *Gate) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	err := g.retry(ctx, "sign-in", func() error {
		return g.provider.SignIn(ctx, email, password)
	})
	if err != nil {
		return nil, err
	}

	session := &Session{Email: email, SignedInAt: time.Now().UTC()}
	g.setSession(session)
	return session, nil
}

// SignOut terminates the session for the given email. Tracked session state
// is only cleared when it belongs to that email, so one caller signing out
// never tears down another's session.
func (g *Gate) SignOut(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}
	if err := g.provider.SignOut(ctx, email); err != nil {
		return err
	}

	g.mu.Lock()
	current := g.current
	g.mu.Unlock()
	if current != nil && current.Email == email {
		g.setSession(nil)
	}
	return nil
}

// CurrentSession returns the active session, or nil when signed out.
func (g *Gate) CurrentSession() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// OnSessionChange registers a listener invoked on sign-in and sign-out.
// The returned function unsubscribes it.
func (g *Gate) OnSessionChange(fn func(*Session)) func() {
	g.mu.Lock()
	id := g.nextID
	g.nextID++
	g.listeners[id] = fn
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.listeners, id)
		g.mu.Unlock()
	}
}

func (g *Gate) setSession(s *Session) {
	g.mu.Lock()
	g.current = s
	fns := make([]func(*Session), 0, len(g.listeners))
	for _, fn := range g.listeners {
		fns = append(fns, fn)
	}
	g.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// retry runs op up to maxAttempts times, backing off retryDelay*attempt
// between tries, but only for the provider's transient availability error.
func (g *Gate) retry(ctx context.Context, operation string, op func() error) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}

		var idErr *Error
		if !errors.As(lastErr, &idErr) || !idErr.Transient() || attempt == maxAttempts {
			return lastErr
		}

		g.logger.Warn("identity provider temporarily unavailable, retrying",
			zap.String("operation", operation), zap.Int("attempt", attempt))
		if err := g.sleep(ctx, retryDelay*time.Duration(attempt)); err != nil {
			return err
		}
	}
	return lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
