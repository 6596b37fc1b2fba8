package providers

import (
	"context"
	"sync"

	"github.com/edworks/course_catalog/internal/logging"
	"github.com/edworks/course_catalog/internal/state"
	"github.com/edworks/course_catalog/internal/transport"
	"github.com/edworks/course_catalog/pkg/apiclient"
)

// AuthProvider owns the auth slice. All dispatches go through one mutex, so
// actions issued in order are applied in order; two in-flight requests may
// still settle out of order, in which case the last one to complete wins.
type AuthProvider struct {
	client *apiclient.Client
	tokens TokenStore

	mu        sync.Mutex
	state     state.AuthState
	listeners []func()
}

func NewAuthProvider(client *apiclient.Client, tokens TokenStore) *AuthProvider {
	return &AuthProvider{client: client, tokens: tokens}
}

// State returns a snapshot safe to keep across later dispatches.
func (p *AuthProvider) State() state.AuthState {
	p.mu.Lock()
	defer p.mu.Unlock()
	st := p.state
	if st.User != nil {
		user := *st.User
		st.User = &user
	}
	return st
}

// Subscribe registers a change callback invoked after every dispatch.
func (p *AuthProvider) Subscribe(fn func()) {
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}

func (p *AuthProvider) dispatch(action state.AuthAction) {
	p.mu.Lock()
	p.state = state.ReduceAuth(p.state, action)
	listeners := make([]func(), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// RestoreSession replays a persisted token against the refresh endpoint.
// Success re-establishes the session; any failure clears it.
func (p *AuthProvider) RestoreSession(ctx context.Context) {
	l := logging.FromContext(ctx).With("provider", "auth.restore")

	if p.tokens.Token() == "" {
		return
	}

	var resp transport.AuthResponse
	if err := p.client.Post(ctx, "/auth/refresh-token", nil, &resp); err != nil {
		l.Warn("refresh_failed", "error", err)
		p.tokens.Clear()
		p.dispatch(state.LogoutAction{})
		return
	}

	p.tokens.Set(resp.Token)
	p.dispatch(state.LoginAction{User: transport.UserFromDTO(resp.User), Token: resp.Token})
	l.Info("session_restored")
}

// Login fails closed on empty credentials: no request is made and false is
// returned. Network and HTTP failures also return false with state
// unchanged; the error itself is not kept.
func (p *AuthProvider) Login(ctx context.Context, email, password string) bool {
	l := logging.FromContext(ctx).With("provider", "auth.login")

	if email == "" || password == "" {
		l.Warn("login_rejected", "reason", "missing fields")
		return false
	}

	var resp transport.AuthResponse
	req := transport.LoginRequest{Email: email, Password: password}
	if err := p.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		l.Warn("login_failed", "error", err)
		return false
	}

	p.tokens.Set(resp.Token)
	p.dispatch(state.LoginAction{User: transport.UserFromDTO(resp.User), Token: resp.Token})
	l.Info("login_success")
	return true
}

// Register mirrors Login's fail-closed validation.
func (p *AuthProvider) Register(ctx context.Context, username, email, password string) bool {
	l := logging.FromContext(ctx).With("provider", "auth.register")

	if username == "" || email == "" || password == "" {
		l.Warn("register_rejected", "reason", "missing fields")
		return false
	}

	var resp transport.AuthResponse
	req := transport.RegisterRequest{Username: username, Email: email, Password: password}
	if err := p.client.Post(ctx, "/users/register", req, &resp); err != nil {
		l.Warn("register_failed", "error", err)
		return false
	}

	p.tokens.Set(resp.Token)
	p.dispatch(state.LoginAction{User: transport.UserFromDTO(resp.User), Token: resp.Token})
	l.Info("register_success")
	return true
}

func (p *AuthProvider) Logout(ctx context.Context) {
	logging.FromContext(ctx).Info("logout", "provider", "auth.logout")
	p.tokens.Clear()
	p.dispatch(state.LogoutAction{})
}
