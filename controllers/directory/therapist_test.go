package directory_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
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
	routes.SetupDirectoryRoutes(app)
	return app
}

// seedTherapist inserts a user with a therapist profile in the given gate
// state and returns both.
func seedTherapist(t *testing.T, verified, subscribed bool) (*models.User, *models.TherapistProfile) {
	t.Helper()
	user := models.User{
		PublicID: uuid.NewString(),
		Email:    fmt.Sprintf("dir_%d@example.com", time.Now().UnixNano()),
		Username: "dir-test",
		Password: "x",
		Role:     models.RoleTherapist,
	}
	require.NoError(t, db.DB.Create(&user).Error)
	require.NoError(t, db.DB.Create(&models.UserProfile{UserID: user.ID, FirstName: "Derived"}).Error)

	therapist := models.TherapistProfile{
		UserID:       user.ID,
		Status:       models.TherapistActive,
		IsVerified:   verified,
		IsSubscribed: subscribed,
	}
	require.NoError(t, db.DB.Create(&therapist).Error)
	return &user, &therapist
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestListTherapistsGating(t *testing.T) {
	app := newTestApp(t)

	_, visible := seedTherapist(t, true, true)
	_, unverified := seedTherapist(t, false, true)
	_, unsubscribed := seedTherapist(t, true, false)

	resp, body := getJSON(t, app, "/therapists?limit=100")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listed := map[float64]bool{}
	for _, entry := range body["therapists"].([]interface{}) {
		id := entry.(map[string]interface{})["id"].(float64)
		listed[id] = true
	}

	assert.True(t, listed[float64(visible.ID)], "visible therapist missing from directory")
	assert.False(t, listed[float64(unverified.ID)], "unverified therapist leaked into directory")
	assert.False(t, listed[float64(unsubscribed.ID)], "unsubscribed therapist leaked into directory")
}

func TestGetTherapistGating(t *testing.T) {
	app := newTestApp(t)

	_, visible := seedTherapist(t, true, true)
	_, hidden := seedTherapist(t, false, false)

	resp, _ := getJSON(t, app, fmt.Sprintf("/therapists/%d", visible.ID))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = getJSON(t, app, fmt.Sprintf("/therapists/%d", hidden.ID))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPublicProfileIndistinguishable404(t *testing.T) {
	app := newTestApp(t)

	// Verified therapist resolves even when not subscribed
	verifiedUser, _ := seedTherapist(t, true, false)
	resp, _ := getJSON(t, app, "/users/"+verifiedUser.PublicID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Unverified therapist, client account and a random id must all
	// produce the same response
	unverifiedUser, _ := seedTherapist(t, false, true)
	client := models.User{
		PublicID: uuid.NewString(),
		Email:    fmt.Sprintf("cli_%d@example.com", time.Now().UnixNano()),
		Password: "x",
		Role:     models.RoleClient,
	}
	require.NoError(t, db.DB.Create(&client).Error)

	paths := []string{
		"/users/" + unverifiedUser.PublicID,
		"/users/" + client.PublicID,
		"/users/" + uuid.NewString(),
	}
	var bodies []map[string]interface{}
	for _, path := range paths {
		resp, body := getJSON(t, app, path)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		bodies = append(bodies, body)
	}
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

func TestHoursRedactedUnlessOptedIn(t *testing.T) {
	app := newTestApp(t)

	user, therapist := seedTherapist(t, true, true)
	require.NoError(t, db.DB.Model(therapist).
		Updates(map[string]interface{}{"total_hours_worked": 500, "display_hours": false}).Error)

	_, body := getJSON(t, app, "/users/"+user.PublicID)
	_, present := body["total_hours_worked"]
	assert.False(t, present, "hours must be redacted when display_hours is off")

	require.NoError(t, db.DB.Model(therapist).Update("display_hours", true).Error)
	_, body = getJSON(t, app, "/users/"+user.PublicID)
	assert.Equal(t, float64(500), body["total_hours_worked"])
}

func TestFilteredListingCountsFilteredRows(t *testing.T) {
	app := newTestApp(t)

	_, tagged := seedTherapist(t, true, true)
	seedTherapist(t, true, true)

	skill := models.Skill{Name: fmt.Sprintf("Niche-%d", time.Now().UnixNano())}
	require.NoError(t, db.DB.Create(&skill).Error)
	require.NoError(t, db.DB.Model(tagged).Association("Skills").Append(&skill))

	resp, body := getJSON(t, app, fmt.Sprintf("/therapists?skill_id=%d&limit=100", skill.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entries := body["therapists"].([]interface{})
	require.Len(t, entries, 1)
	assert.Equal(t, float64(tagged.ID), entries[0].(map[string]interface{})["id"])

	// total reflects the filter, not the whole directory
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, float64(1), body["pages"])
}
