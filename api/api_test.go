package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-api-backend/api"
	"github.com/rpupo63/portfolio-api-backend/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	return api.NewRouter(database.NewMemory())
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
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
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return decoded
}

func createProject(t *testing.T, router http.Handler, body map[string]any) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	envelope := decodeBody(t, rec)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]any)
	return data["id"].(string)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestProjectLifecycle(t *testing.T) {
	router := newTestRouter(t)

	projectID := createProject(t, router, map[string]any{
		"title":  "API Tool",
		"skills": []string{"Python", "FastAPI"},
	})

	t.Run("skill filter matches normalized names", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/projects?skill=python", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		require.Equal(t, float64(1), body["total"])
		project := body["projects"].([]any)[0].(map[string]any)
		assert.Equal(t, "API Tool", project["title"])
	})

	t.Run("skill filter excludes non-matching projects", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/projects?skill=java", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(0), decodeBody(t, rec)["total"])
	})

	t.Run("get returns effective skills", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/projects/"+projectID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.ElementsMatch(t, []any{"python", "fastapi"}, body["effective_skills"].([]any))
	})

	t.Run("delete then get reports not found", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/api/v1/projects/"+projectID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/"+projectID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, "/api/v1/projects/"+projectID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProjectValidation(t *testing.T) {
	router := newTestRouter(t)

	t.Run("missing title is a validation error", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]any{
			"description": "no title",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "title", decodeBody(t, rec)["field"])
	})

	t.Run("unrecognized status is rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]any{
			"title":  "Bad Status",
			"status": "launched",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "status", decodeBody(t, rec)["field"])
	})

	t.Run("any-to-any status transition within the enum is accepted", func(t *testing.T) {
		projectID := createProject(t, router, map[string]any{"title": "Status Walk", "status": "draft"})
		for _, status := range []string{"archived", "active", "completed", "draft"} {
			rec := doJSON(t, router, http.MethodPut, "/api/v1/projects/"+projectID, map[string]any{"status": status})
			require.Equal(t, http.StatusOK, rec.Code, "transition to %s", status)
		}
	})

	t.Run("invalid id is a bad request", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/projects/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProjectUpdateSkills(t *testing.T) {
	router := newTestRouter(t)

	projectID := createProject(t, router, map[string]any{
		"title":  "Evolving",
		"skills": []string{"Python"},
	})

	rec := doJSON(t, router, http.MethodPut, "/api/v1/projects/"+projectID, map[string]any{
		"skills": []any{
			map[string]any{"name": "Go", "proficiency": "advanced"},
			"Python",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/"+projectID, nil)
	body := decodeBody(t, rec)
	assert.ElementsMatch(t, []any{"go", "python"}, body["effective_skills"].([]any))

	// Dropping python detaches the association without touching the row.
	rec = doJSON(t, router, http.MethodPut, "/api/v1/projects/"+projectID, map[string]any{
		"skills": []any{"go"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/"+projectID, nil)
	body = decodeBody(t, rec)
	assert.ElementsMatch(t, []any{"go"}, body["effective_skills"].([]any))

	rec = doJSON(t, router, http.MethodGet, "/api/v1/search?q=python", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["skills"].([]any), 1)
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter(t)
	createProject(t, router, map[string]any{
		"title":  "API Tool",
		"skills": []string{"Python"},
	})

	t.Run("missing query is a validation error", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/search", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("matches by skill name", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/search?q=py", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Len(t, body["projects"].([]any), 1)
		assert.Len(t, body["skills"].([]any), 1)
	})

	t.Run("no matches yields empty arrays", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/search?q=nonexistent-zzz", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Empty(t, body["projects"].([]any))
		assert.Empty(t, body["skills"].([]any))
	})
}

func TestTopSkillsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	for _, title := range []string{"One", "Two", "Three"} {
		createProject(t, router, map[string]any{"title": title, "skills": []string{"python"}})
	}
	createProject(t, router, map[string]any{"title": "Four", "skills": []string{"react"}})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/skills/top?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var ranked []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ranked))
	require.Len(t, ranked, 2)
	assert.Equal(t, "python", ranked[0]["name"])
	assert.Equal(t, float64(3), ranked[0]["project_count"])
	assert.Equal(t, "react", ranked[1]["name"])
}

func TestProfileEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("get lazily creates the default profile", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/profile", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["name"])
		assert.NotEmpty(t, body["email"])
	})

	t.Run("put applies only the provided fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/v1/profile", map[string]any{
			"title": "Backend Engineer",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeBody(t, rec)
		data := envelope["data"].(map[string]any)
		assert.Equal(t, "Backend Engineer", data["title"])
		assert.NotEmpty(t, data["name"], "unspecified fields keep their values")
	})

	t.Run("put rejects a malformed email", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/v1/profile", map[string]any{
			"email": "not-an-email",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "email", decodeBody(t, rec)["field"])
	})
}
