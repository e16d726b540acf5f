package oneroster

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL, tokenURL string) Config {
	return Config{
		BaseURL:      baseURL,
		TokenURL:     tokenURL,
		ClientID:     "client-1",
		ClientSecret: "secret-1",
	}
}

// newTestServer runs a minimal SIS: a token endpoint plus whatever
// handler the test wires in. It counts token grants so tests can
// assert on caching.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int) {
	t.Helper()
	tokenGrants := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "token request missing basic auth")
		require.Equal(t, "client-1", user)
		require.Equal(t, "secret-1", pass)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.FormValue("grant_type"))

		tokenGrants++
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-abc",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &tokenGrants
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig("http://x", "http://y")
	require.NoError(t, cfg.Validate())

	missing := cfg
	missing.ClientSecret = ""
	err := missing.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestTeacherByEmail(t *testing.T) {
	srv, grants := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teachers", r.URL.Path)
		assert.Equal(t, "email='t@school.org'", r.URL.Query().Get("filter"))
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(usersResponse{Users: []User{
			{SourcedID: "t-1", Email: "t@school.org", GivenName: "Pat"},
		}})
	})

	c, err := NewClient(testConfig(srv.URL, srv.URL+"/oauth/token"))
	require.NoError(t, err)

	u, err := c.TeacherByEmail(context.Background(), "t@school.org")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "t-1", u.SourcedID)
	assert.Equal(t, 1, *grants)
}

func TestTeacherByEmailNoMatch(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(usersResponse{})
	})

	c, err := NewClient(testConfig(srv.URL, srv.URL+"/oauth/token"))
	require.NoError(t, err)

	u, err := c.TeacherByEmail(context.Background(), "nobody@school.org")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestTokenCachedAcrossCalls(t *testing.T) {
	srv, grants := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(classesResponse{Classes: []Class{
			{SourcedID: "class-1", Title: "Algebra 1", Course: Ref{SourcedID: "course-1"}},
		}})
	})

	c, err := NewClient(testConfig(srv.URL, srv.URL+"/oauth/token"))
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := c.ClassesForTeacher(ctx, "t-1")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, *grants, "token should be acquired once and cached")
}

func TestPutLineItem(t *testing.T) {
	var gotPath string
	var gotBody lineItemRequest
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	c, err := NewClient(testConfig(srv.URL, srv.URL+"/oauth/token"))
	require.NoError(t, err)

	li := LineItem{
		SourcedID:      "class-1_Unit_1_1DOT1_Habc",
		Title:          "U1-1.1",
		Class:          Ref{SourcedID: "class-1"},
		ResultValueMax: 4,
	}
	require.NoError(t, c.PutLineItem(context.Background(), li))
	assert.Equal(t, "/lineItems/class-1_Unit_1_1DOT1_Habc", gotPath)
	assert.Equal(t, "U1-1.1", gotBody.LineItem.Title)
	assert.Equal(t, "class-1", gotBody.LineItem.Class.SourcedID)
}

func TestPutResultNon2xx(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"score out of range"}`))
	})

	c, err := NewClient(testConfig(srv.URL, srv.URL+"/oauth/token"))
	require.NoError(t, err)

	err = c.PutResult(context.Background(), Result{SourcedID: "res-1", Score: 9})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, apiErr.Body, "score out of range")
	assert.Equal(t, "PUT", apiErr.Method)
}

func TestTokenFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := NewClient(testConfig(srv.URL, srv.URL+"/oauth/token"))
	require.NoError(t, err)

	_, err = c.GradingPeriods(context.Background())
	require.Error(t, err)

	var tokErr *TokenError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, http.StatusUnauthorized, tokErr.Status)
}
