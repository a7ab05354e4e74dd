package crmapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexacrm/crm-console/internal/domain/model"
	apperrors "github.com/nexacrm/crm-console/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	for _, base := range []string{"", "not a url", "localhost:5000"} {
		_, err := New(Config{BaseURL: base})
		assert.Error(t, err, "base %q", base)
	}
}

func TestClient_BearerInjectedFromContext(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	ctx := WithBearer(context.Background(), "tok123")
	_, err := c.Admins().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestClient_NoBearerWithoutContextToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	_, err := c.Admins().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode apperrors.ErrorCode
		wantMsg  string
	}{
		{name: "401", status: 401, body: ``, wantCode: apperrors.ErrCodeUnauthorized, wantMsg: MsgSessionInvalid},
		{name: "403", status: 403, body: ``, wantCode: apperrors.ErrCodeForbidden, wantMsg: MsgForbidden},
		{name: "404", status: 404, body: ``, wantCode: apperrors.ErrCodeNotFound, wantMsg: MsgNotFound},
		{name: "400 with backend message", status: 400, body: `{"message":"Bu kullanıcı adı zaten kayıtlı"}`, wantCode: apperrors.ErrCodeValidation, wantMsg: "Bu kullanıcı adı zaten kayıtlı"},
		{name: "500", status: 500, body: `oops`, wantCode: apperrors.ErrCodeUpstream, wantMsg: "oops"},
		{name: "503 empty body", status: 503, body: ``, wantCode: apperrors.ErrCodeUpstream, wantMsg: MsgServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := c.Customers().List(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.GetCode(err))
			assert.Equal(t, tt.wantMsg, apperrors.Message(err, ""))
		})
	}
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"token":"abc.def.ghi"}`))
	}))

	token, err := c.Login(context.Background(), model.LoginRequest{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestClient_Login_WrongCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.Login(context.Background(), model.LoginRequest{Username: "u", Password: "bad"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, MsgInvalidCredentials, apperrors.Message(err, ""))
}

func TestClient_Login_PascalCaseToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Token":"abc"}`))
	}))

	token, err := c.Login(context.Background(), model.LoginRequest{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestClient_Login_EmptyToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := c.Login(context.Background(), model.LoginRequest{Username: "u", Password: "p"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestClient_AdminDelete_PathEscapesID(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`"Silindi"`))
	}))

	msg, err := c.Admins().Delete(context.Background(), "user/7")
	require.NoError(t, err)
	assert.Equal(t, "Silindi", msg)
	assert.Equal(t, "/api/Auth/admin/delete/user%2F7", gotPath)
}

func TestClient_MessageShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "object", body: `{"message":"Tamam"}`, want: "Tamam"},
		{name: "pascal object", body: `{"Message":"Tamam"}`, want: "Tamam"},
		{name: "json string", body: `"Tamam"`, want: "Tamam"},
		{name: "raw string", body: `Tamam`, want: "Tamam"},
		{name: "empty", body: ``, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))

			msg, err := c.Register(context.Background(), model.RegisterRequest{Username: "u"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.Products().List(context.Background())
	require.Error(t, err)
	code := apperrors.GetCode(err)
	assert.Contains(t, []apperrors.ErrorCode{apperrors.ErrCodeTimeout, apperrors.ErrCodeUpstream}, code)
}
