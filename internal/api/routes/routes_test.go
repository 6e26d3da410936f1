package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/config"
	"sysmayal-backend/internal/mocks"
	"sysmayal-backend/internal/scheduler"
	"sysmayal-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type testRouter struct {
	router *gin.Engine
	tasks  *mocks.MockTaskRunnerInterface
	token  string
}

func newTestRouter(t *testing.T) *testRouter {
	gin.SetMode(gin.TestMode)

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: "routes-test-secret-with-enough-length",
		Issuer:    "sysmayal-backend",
		TokenTTL:  time.Hour,
	})
	require.NoError(t, err)
	token, err := authService.GenerateJWT("tester", "tester@sysmayal.com")
	require.NoError(t, err)

	tasks := mocks.NewMockTaskRunnerInterface(gomock.NewController(t))
	router := SetupRoutes(&config.Config{AllowedOrigins: []string{"*"}}, &Dependencies{
		DB:       db,
		Services: &service.Registry{},
		Auth:     authService,
		Importer: mocks.NewMockImporterInterface(gomock.NewController(t)),
		Tasks:    tasks,
		Version:  "test",
	})

	return &testRouter{router: router, tasks: tasks, token: token}
}

func (r *testRouter) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	r.router.ServeHTTP(recorder, req)
	return recorder
}

func TestAPIRequiresToken(t *testing.T) {
	r := newTestRouter(t)

	recorder := r.do("GET", "/api/v1/organizations", "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestAPIRejectsForeignToken(t *testing.T) {
	r := newTestRouter(t)

	recorder := r.do("GET", "/api/v1/tasks", "not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestTasksRouteWithToken(t *testing.T) {
	r := newTestRouter(t)
	r.tasks.EXPECT().Jobs().Return([]scheduler.JobStatus{{Name: "archive_old_documents", Schedule: "0 2 1 * *"}})

	recorder := r.do("GET", "/api/v1/tasks", r.token)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "archive_old_documents")
}

func TestLivenessIsPublic(t *testing.T) {
	r := newTestRouter(t)

	recorder := r.do("GET", "/health/live", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	recorder := r.do("GET", "/api/v2/nothing", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Endpoint not found")
}
