package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/internal/domain"
)

func getJSON(t *testing.T, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	router := newTestRouter(&stubMailer{})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if out != nil && w.Code == http.StatusOK {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.NoError(t, json.Unmarshal(env.Data, out))
	}
	return w
}

func TestListProjects(t *testing.T) {
	var projects []domain.Project
	w := getJSON(t, "/v1/projects", &projects)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, projects, 3)
	assert.Equal(t, 1, projects[0].ID)
}

func TestListProjectsFiltersByCategory(t *testing.T) {
	var projects []domain.Project
	w := getJSON(t, "/v1/projects?category=e-commerce", &projects)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.Len(t, projects, 1) {
		assert.Contains(t, projects[0].Category, "E-commerce")
	}
}

func TestGetProject(t *testing.T) {
	var project domain.Project
	w := getJSON(t, "/v1/projects/2", &project)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Personal Portfolio Website", project.Title)
}

func TestGetProjectNotFound(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		w := getJSON(t, "/v1/projects/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := getJSON(t, "/v1/projects/abc", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetProfile(t *testing.T) {
	var profile domain.Profile
	w := getJSON(t, "/v1/profile", &profile)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, profile.Name)
	assert.NotEmpty(t, profile.Skills)
}
