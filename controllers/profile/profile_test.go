package profile_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psymatch/therapy-app/db"
	"github.com/psymatch/therapy-app/models"
	"github.com/psymatch/therapy-app/routes"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	if os.Getenv("RUN_DB_TESTS") != "true" {
		t.Skip("set RUN_DB_TESTS=true to run database tests")
	}
	if db.DB == nil {
		db.Migrate()
	}

	app := fiber.New()
	routes.SetupAuthRoutes(app)
	routes.SetupProfileRoutes(app)
	return app
}

func request(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

// registerClient creates a fresh client account and returns its token.
func registerClient(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := request(t, app, http.MethodPost, "/auth/register/client", "", map[string]string{
		"email":            fmt.Sprintf("prof_%d@example.com", time.Now().UnixNano()),
		"password":         "p1",
		"password_confirm": "p1",
		"first_name":       "Before",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["token"].(string)
}

func TestUpdateBaseProfile(t *testing.T) {
	app := newTestApp(t)
	token := registerClient(t, app)

	resp := request(t, app, http.MethodPatch, "/profile/base", token, map[string]string{
		"first_name": "After",
		"gender":     "female",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile models.UserProfile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	assert.Equal(t, "After", profile.FirstName)
	assert.Equal(t, models.GenderFemale, profile.Gender)
}

func TestUpdateBaseProfileRejectsBadGender(t *testing.T) {
	app := newTestApp(t)
	token := registerClient(t, app)

	resp := request(t, app, http.MethodPatch, "/profile/base", token, map[string]string{
		"gender": "yes",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClientCannotEditTherapistProfile(t *testing.T) {
	app := newTestApp(t)
	token := registerClient(t, app)

	resp := request(t, app, http.MethodPatch, "/profile/therapist", token, map[string]string{
		"bio": "not a therapist",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUpdateClientProfile(t *testing.T) {
	app := newTestApp(t)
	token := registerClient(t, app)

	var skill models.Skill
	require.NoError(t, db.DB.FirstOrCreate(&skill, models.Skill{Name: "Anxiety"}).Error)

	resp := request(t, app, http.MethodPatch, "/profile/client", token, map[string]interface{}{
		"request_text": "I want to work on anxiety",
		"interest_ids": []uint{skill.ID},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var client models.ClientProfile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&client))
	assert.Equal(t, "I want to work on anxiety", client.RequestText)
	require.Len(t, client.Interests, 1)
	assert.Equal(t, "Anxiety", client.Interests[0].Name)
}

func TestProfileRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, http.MethodPatch, "/profile/base", "", map[string]string{
		"first_name": "Nobody",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// registerTherapist seeds an invite code and creates a therapist account,
// returning the token and the therapist profile row.
func registerTherapist(t *testing.T, app *fiber.App) (string, *models.TherapistProfile) {
	t.Helper()
	code := fmt.Sprintf("PHT%d", time.Now().UnixNano())
	require.NoError(t, db.DB.Create(&models.InviteCode{Code: code}).Error)

	email := fmt.Sprintf("ther_%d@example.com", time.Now().UnixNano())
	resp := request(t, app, http.MethodPost, "/auth/register/therapist", "", map[string]string{
		"email":            email,
		"password":         "p1",
		"password_confirm": "p1",
		"invite_code":      code,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	var user models.User
	require.NoError(t, db.DB.Preload("TherapistProfile").Where("email = ?", email).First(&user).Error)
	require.NotNil(t, user.TherapistProfile)
	return body["token"].(string), user.TherapistProfile
}

func TestPhotoReorderPersists(t *testing.T) {
	app := newTestApp(t)
	token, therapist := registerTherapist(t, app)

	first := models.TherapistPhoto{TherapistProfileID: therapist.ID, URL: "https://cdn/p1.png", Position: 0}
	second := models.TherapistPhoto{TherapistProfileID: therapist.ID, URL: "https://cdn/p2.png", Position: 1}
	require.NoError(t, db.DB.Create(&first).Error)
	require.NoError(t, db.DB.Create(&second).Error)

	// Move the second photo to the front
	resp := request(t, app, http.MethodPatch, fmt.Sprintf("/profile/photos/%d", second.ID), token,
		map[string]interface{}{"position": 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = request(t, app, http.MethodPatch, fmt.Sprintf("/profile/photos/%d", first.ID), token,
		map[string]interface{}{"position": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var positions []models.TherapistPhoto
	require.NoError(t, db.DB.Where("therapist_profile_id = ?", therapist.ID).
		Order("position ASC").Find(&positions).Error)
	require.Len(t, positions, 2)
	assert.Equal(t, second.ID, positions[0].ID)
	assert.Equal(t, first.ID, positions[1].ID)

	// The owner-facing listing follows the new order too
	resp = request(t, app, http.MethodGet, "/profile/photos", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []models.TherapistPhoto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
}

func TestPhotoUpdateScopedToOwner(t *testing.T) {
	app := newTestApp(t)
	_, owner := registerTherapist(t, app)
	intruderToken, _ := registerTherapist(t, app)

	photo := models.TherapistPhoto{TherapistProfileID: owner.ID, URL: "https://cdn/own.png"}
	require.NoError(t, db.DB.Create(&photo).Error)

	resp := request(t, app, http.MethodPatch, fmt.Sprintf("/profile/photos/%d", photo.ID), intruderToken,
		map[string]interface{}{"position": 5})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
