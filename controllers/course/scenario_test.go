package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	courseModels "elearn/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full signup → login → enroll → complete-chapter flow.
func TestSignupLoginEnrollCompleteFlow(t *testing.T) {
	app, db := setupTestApp(t)
	course := seedCourse(t, db, "Go Basics", 3)

	// signup
	resp, body := doRequest(t, app, http.MethodPost, "/signup/", "",
		strings.NewReader(`{"email":"a@x.com","password1":"p1","password2":"p1"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Account created successfully!", body["success"])

	// duplicate signup
	resp, body = doRequest(t, app, http.MethodPost, "/signup/", "",
		strings.NewReader(`{"email":"a@x.com","password1":"p1","password2":"p1"}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already registered!", body["error"])

	// login
	resp, body = doRequest(t, app, http.MethodPost, "/login/", "",
		strings.NewReader(`{"email":"a@x.com","password":"p1"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logged in successfully!", body["success"])
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// enroll: 3 chapters → 3 incomplete progress rows
	resp, body = doRequest(t, app, http.MethodPost, courseURL(course.ID)+"enroll/", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotZero(t, body["enrollment_id"])

	var progresses []courseModels.Progress
	require.NoError(t, db.Find(&progresses).Error)
	require.Len(t, progresses, 3)
	for _, p := range progresses {
		assert.False(t, p.Completed)
	}

	// complete chapter order 1
	resp, body = doRequest(t, app, http.MethodPost, chapterByOrderURL(course.ID, 1), token,
		strings.NewReader(`{"completed": true}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	chapter := body["chapter"].(map[string]interface{})
	assert.Equal(t, true, chapter["completed"])
	require.NotNil(t, chapter["completed_at"])
	parseTime(t, chapter["completed_at"])
}

func TestCsrfTokenEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/csrf-token/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, ok := body["csrfToken"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)
}
