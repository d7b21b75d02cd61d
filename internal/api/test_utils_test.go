package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recipeshelf/backend/internal/api"
	"github.com/recipeshelf/backend/internal/mocks"
	"github.com/recipeshelf/backend/internal/router"
	"github.com/recipeshelf/backend/internal/service"
	"github.com/recipeshelf/backend/internal/testhelpers"
)

// testServer bundles everything a handler test needs: the wired router, the
// backing database and the uploader mock to set expectations on.
type testServer struct {
	router   *gin.Engine
	db       *gorm.DB
	uploader *mocks.MockImageUploader
	auth     *service.AuthService
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	uploader := new(mocks.MockImageUploader)

	recipeSvc := service.NewRecipeService(db, uploader)
	reviewSvc := service.NewReviewService(db)
	authSvc := service.NewAuthService(db, "test-secret")

	recipeHandler := api.NewRecipeHandler(recipeSvc, reviewSvc)
	authHandler := api.NewAuthHandler(authSvc)

	// nil redis client: no rate limiting in handler tests.
	engine := router.SetupRouter(recipeHandler, authHandler, authSvc, nil, []string{"http://localhost:5173"})

	return &testServer{
		router:   engine,
		db:       db,
		uploader: uploader,
		auth:     authSvc,
	}
}

// registerUser creates an account through the API and returns the user id and
// a bearer token for it.
func (s *testServer) registerUser(t *testing.T, name string) (uuid.UUID, string) {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"name":     name,
		"email":    fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
		"password": "test-password",
	})
	require.NoError(t, err)

	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "application/json", bytes.NewReader(body), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := s.auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	return claims.UserID, resp.Token
}

func (s *testServer) do(t *testing.T, method, path, contentType string, body *bytes.Reader, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// recipeForm builds a multipart body for the create/update endpoints.
// Ingredients and steps go over the wire as JSON-encoded form fields.
func recipeForm(t *testing.T, fields map[string]string, image []byte) (*bytes.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "image.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return bytes.NewReader(buf.Bytes()), writer.FormDataContentType()
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}
