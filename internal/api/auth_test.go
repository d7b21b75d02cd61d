package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/v1/auth/register", "application/json",
		jsonBody(t, map[string]string{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "long-enough-pass",
		}), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// Same email again: conflict.
	w = srv.do(t, http.MethodPost, "/api/v1/auth/register", "application/json",
		jsonBody(t, map[string]string{
			"name":     "Alice Two",
			"email":    "alice@example.com",
			"password": "long-enough-pass",
		}), "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterEndpointValidation(t *testing.T) {
	srv := setupTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"name": "Bob", "password": "long-enough-pass"}},
		{"bad email", map[string]string{"name": "Bob", "email": "nope", "password": "long-enough-pass"}},
		{"short password", map[string]string{"name": "Bob", "email": "bob@example.com", "password": "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, http.MethodPost, "/api/v1/auth/register", "application/json", jsonBody(t, tt.body), "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	srv := setupTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/v1/auth/register", "application/json",
		jsonBody(t, map[string]string{
			"name":     "Carol",
			"email":    "carol@example.com",
			"password": "long-enough-pass",
		}), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = srv.do(t, http.MethodPost, "/api/v1/auth/login", "application/json",
		jsonBody(t, map[string]string{
			"email":    "carol@example.com",
			"password": "long-enough-pass",
		}), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	claims, err := srv.auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "Carol", claims.Name)

	w = srv.do(t, http.MethodPost, "/api/v1/auth/login", "application/json",
		jsonBody(t, map[string]string{
			"email":    "carol@example.com",
			"password": "wrong-pass",
		}), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
