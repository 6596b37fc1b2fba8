package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestClient_GetDecodesJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/courses", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"c1"},{"id":"c2"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	var out []struct {
		ID string `json:"id"`
	}
	require.NoError(t, client.Get(context.Background(), "/courses", &out))
	require.Len(t, out, 2)
	assert.Equal(t, "c1", out[0].ID)
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, decodeJSON(r, &body))
		assert.Equal(t, "value", body["key"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	require.NoError(t, client.Post(context.Background(), "/thing", map[string]string{"key": "value"}, nil))
}

func TestClient_AttachesToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		cookie, err := r.Cookie("token")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", cookie.Value)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithTokenSource(staticTokens("tok-1")))
	require.NoError(t, client.Get(context.Background(), "/me", nil))
}

func TestClient_NoTokenHeaderWhenLoggedOut(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithTokenSource(staticTokens("")))
	require.NoError(t, client.Get(context.Background(), "/courses", nil))
}

func TestClient_ServerMessageSurfaced(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"already exists"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	err := client.Post(context.Background(), "/category/create", map[string]string{}, nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusConflict, reqErr.Status)
	assert.Equal(t, "already exists", reqErr.Message)
}

func TestClient_GenericMessageWithoutBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL)
	err := client.Get(context.Background(), "/courses", nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "request failed: 500", reqErr.Message)
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(&RequestError{Status: http.StatusNotFound, Message: "no comments"}))
	assert.False(t, IsNotFound(&RequestError{Status: http.StatusInternalServerError}))
	assert.False(t, IsNotFound(context.Canceled))
	assert.False(t, IsNotFound(nil))
}

func TestClient_TimeoutOption(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithTimeout(20*time.Millisecond))
	err := client.Get(context.Background(), "/courses", nil)
	require.Error(t, err)

	slow := New(srv.URL, WithTimeout(5*time.Second))
	require.NoError(t, slow.Get(context.Background(), "/courses", nil))
}

func TestClient_CookieName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   []Option
		cookie string
	}{
		{name: "default", cookie: "token"},
		{name: "custom", opts: []Option{WithCookieName("session")}, cookie: "session"},
		{name: "empty keeps default", opts: []Option{WithCookieName("")}, cookie: "token"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c, err := r.Cookie(tt.cookie)
				require.NoError(t, err)
				assert.Equal(t, "secret-token", c.Value)
				_, _ = w.Write([]byte(`{}`))
			}))
			defer srv.Close()

			opts := append([]Option{WithTokenSource(staticTokens("secret-token"))}, tt.opts...)
			client := New(srv.URL, opts...)
			require.NoError(t, client.Get(context.Background(), "/courses", nil))
		})
	}
}

func decodeJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
