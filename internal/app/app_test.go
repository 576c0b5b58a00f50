package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/test/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := helpers.NewTestDB(t)
	router := SetupRouter(db, helpers.NewTestConfig())
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":  "flowuser",
		"firstName": "Flow",
		"lastName":  "User",
		"password":  "password123",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "flowuser",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	assert.NotEmpty(t, login.AccessToken)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/usermedias/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestProtectedRouteWithGarbageToken(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/usermedias/1", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestForeignListIsForbiddenNotNotFound(t *testing.T) {
	router, db := setupRouter(t)
	cfg := helpers.NewTestConfig()
	caller := helpers.CreateUser(t, db, "caller", models.UserRoleUser)
	victim := helpers.CreateUser(t, db, "victim", models.UserRoleUser)
	token := helpers.TokenFor(t, cfg, caller)

	path := fmt.Sprintf("/api/v1/usermedias/%d", victim.UserID)
	resp := doJSON(t, router, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code, resp.Body.String())
}

func TestReviewLifecycleOverHTTP(t *testing.T) {
	router, db := setupRouter(t)
	cfg := helpers.NewTestConfig()
	user := helpers.CreateUser(t, db, "httpuser", models.UserRoleUser)
	media := helpers.CreateMedia(t, db, "Fargo")
	token := helpers.TokenFor(t, cfg, user)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/usermedias", token, gin.H{
		"userId":      user.UserID,
		"mediaId":     media.MediaID,
		"mediaStatus": "Finished",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created struct {
		UserMediaID int `json:"userMediaId"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	// Invalid rating: nothing is persisted.
	resp = doJSON(t, router, http.MethodPut, "/api/v1/usermedias", token, gin.H{
		"userMediaId": created.UserMediaID,
		"userId":      user.UserID,
		"userRating":  "Superb",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())

	var reviewCount int64
	require.NoError(t, db.Model(&models.Review{}).Count(&reviewCount).Error)
	assert.EqualValues(t, 0, reviewCount)

	// Valid rating: review created and linked.
	resp = doJSON(t, router, http.MethodPut, "/api/v1/usermedias", token, gin.H{
		"userMediaId": created.UserMediaID,
		"userId":      user.UserID,
		"userRating":  "Good",
		"reviewText":  "tight script",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated struct {
		ReviewID *int `json:"reviewId"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.NotNil(t, updated.ReviewID)

	// The review surfaces on the read side.
	path := fmt.Sprintf("/api/v1/reviews/%d", user.UserID)
	resp = doJSON(t, router, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, models.UserRatingGood, reviews[0].UserRating)
}

func TestErrorEnvelopeShape(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "x",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
}

func TestAdminOnlyRouteForbiddenForUser(t *testing.T) {
	router, db := setupRouter(t)
	cfg := helpers.NewTestConfig()
	user := helpers.CreateUser(t, db, "regular", models.UserRoleUser)
	token := helpers.TokenFor(t, cfg, user)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/medias", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}
