package users

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (http.Handler, *memoryRepo) {
	svc, repo, _ := newTestService()
	handler := NewHandler(nil, svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r, repo
}

func TestCreateUserEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	body := `{"name":"a","email":"a@x.com","password":"secret1","registeredDate":"2024-01-01T00:00:00Z","status":"active"}`
	for _, path := range []string{"/users", "/users/create"} {
		t.Run(path, func(t *testing.T) {
			payload := body
			if path == "/users/create" {
				payload = strings.ReplaceAll(body, "a@x.com", "b@x.com")
				payload = strings.ReplaceAll(payload, `"name":"a"`, `"name":"b"`)
			}
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
			res := httptest.NewRecorder()
			router.ServeHTTP(res, req)

			require.Equal(t, http.StatusCreated, res.Code)
			require.Contains(t, res.Body.String(), `"success":true`)
			require.NotContains(t, res.Body.String(), "password")
		})
	}
}

func TestCreateUserValidation(t *testing.T) {
	router, repo := newTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"missing fields", `{"name":"a","email":"a@x.com"}`},
		{"short password", `{"name":"a","email":"a@x.com","password":"12345","registeredDate":"2024-01-01T00:00:00Z","status":"active"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tc.body))
			res := httptest.NewRecorder()
			router.ServeHTTP(res, req)

			require.Equal(t, http.StatusBadRequest, res.Code)
			require.Contains(t, res.Body.String(), `"success":false`)
		})
	}
	require.Empty(t, repo.users)
}

func TestDuplicateUserEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	body := `{"name":"a","email":"a@x.com","password":"secret1","registeredDate":"2024-01-01T00:00:00Z","status":"active"}`
	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	require.Equal(t, http.StatusBadRequest, second.Code)
	require.Contains(t, second.Body.String(), "already exists")
}

func TestGetUnknownUser(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/users/nope", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusNotFound, res.Code)
	require.Contains(t, res.Body.String(), `"success":false`)
}

func TestListUsersOmitsHashes(t *testing.T) {
	router, _ := newTestRouter()

	body := `{"name":"a","email":"a@x.com","password":"secret1","registeredDate":"2024-01-01T00:00:00Z","status":"active"}`
	created := httptest.NewRecorder()
	router.ServeHTTP(created, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, created.Code)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/users", nil))
	require.Equal(t, http.StatusOK, res.Code)
	require.Contains(t, res.Body.String(), `"email":"a@x.com"`)
	require.NotContains(t, res.Body.String(), "password")
}

func TestUpdateAndDeleteUserEndpoints(t *testing.T) {
	router, repo := newTestRouter()

	body := `{"name":"a","email":"a@x.com","password":"secret1","registeredDate":"2024-01-01T00:00:00Z","status":"active"}`
	created := httptest.NewRecorder()
	router.ServeHTTP(created, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, created.Code)

	var id string
	for userID := range repo.users {
		id = userID
	}
	require.NotEmpty(t, id)

	update := httptest.NewRecorder()
	router.ServeHTTP(update, httptest.NewRequest(http.MethodPut, "/users/"+id,
		strings.NewReader(`{"status":"inactive"}`)))
	require.Equal(t, http.StatusOK, update.Code)
	require.Contains(t, update.Body.String(), `"status":"inactive"`)

	deleted := httptest.NewRecorder()
	router.ServeHTTP(deleted, httptest.NewRequest(http.MethodDelete, "/users/"+id, nil))
	require.Equal(t, http.StatusOK, deleted.Code)

	missing := httptest.NewRecorder()
	router.ServeHTTP(missing, httptest.NewRequest(http.MethodDelete, "/users/"+id, nil))
	require.Equal(t, http.StatusNotFound, missing.Code)
}
