package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"exercise-tracker/internal/api"
	"exercise-tracker/internal/repository/memory"
	"exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := memory.New()
	userService := service.NewUserService(store.Users())
	exerciseService := service.NewExerciseService(store.Users(), store.Exercises())
	logService := service.NewLogService(store.Users(), store.Exercises())

	router := gin.New()
	api.SetupRoutes(router, userService, exerciseService, logService)
	return router
}

func postForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func createUser(t *testing.T, router *gin.Engine, username string) api.UserResponse {
	t.Helper()
	rr := postForm(t, router, "/api/exercise/new-user", url.Values{"username": {username}})
	if rr.Code != http.StatusOK {
		t.Fatalf("create user: expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var user api.UserResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &user); err != nil {
		t.Fatalf("create user: decode: %v", err)
	}
	return user
}

func addExercise(t *testing.T, router *gin.Engine, userID, description, duration, date string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{
		"userId":      {userID},
		"description": {description},
		"duration":    {duration},
	}
	if date != "" {
		form.Set("date", date)
	}
	return postForm(t, router, "/api/exercise/add", form)
}

func TestCreateUserAndLookup(t *testing.T) {
	router := newTestRouter()

	user := createUser(t, router, "ada")
	if user.ID == "" || user.Username != "ada" {
		t.Fatalf("unexpected user response %+v", user)
	}

	rr := get(t, router, "/api/exercise/users")
	if rr.Code != http.StatusOK {
		t.Fatalf("list users: expected 200 got %d", rr.Code)
	}
	var users []api.UserResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &users); err != nil {
		t.Fatalf("list users: decode: %v", err)
	}
	if len(users) != 1 || users[0].ID != user.ID || users[0].Username != "ada" {
		t.Fatalf("created user does not resolve via listing: %+v", users)
	}
}

func TestCreateUserMissingUsername(t *testing.T) {
	router := newTestRouter()

	rr := postForm(t, router, "/api/exercise/new-user", url.Values{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "username") {
		t.Fatalf("error must name the offending field, got %q", rr.Body.String())
	}
}

func TestDuplicateUsernamesPermitted(t *testing.T) {
	router := newTestRouter()

	first := createUser(t, router, "ada")
	second := createUser(t, router, "ada")
	if first.ID == second.ID {
		t.Fatal("duplicate usernames must create distinct users")
	}
}

func TestAddExerciseEchoesPersistedEntry(t *testing.T) {
	router := newTestRouter()
	user := createUser(t, router, "ada")

	rr := addExercise(t, router, user.ID, "morning run", "30", "2021-06-01")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var entry service.ExerciseEntry
	if err := json.Unmarshal(rr.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry.UserID != user.ID || entry.Username != "ada" {
		t.Fatalf("entry must merge the user identity, got %+v", entry)
	}
	if entry.Description != "morning run" || entry.Duration != 30 {
		t.Fatalf("entry fields not echoed, got %+v", entry)
	}
}

func TestAddExerciseUnknownUser(t *testing.T) {
	router := newTestRouter()

	unknown := primitive.NewObjectID().Hex()
	rr := addExercise(t, router, unknown, "run", "30", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d: %s", rr.Code, rr.Body.String())
	}

	// Nothing was persisted; the log side still fails the same way.
	rr = get(t, router, "/api/exercise/log?userId="+unknown)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on subsequent log query, got %d", rr.Code)
	}
}

func TestAddExerciseValidation(t *testing.T) {
	router := newTestRouter()
	user := createUser(t, router, "ada")

	tests := []struct {
		name      string
		form      url.Values
		wantField string
	}{
		{"missing description", url.Values{"userId": {user.ID}, "duration": {"30"}}, "description"},
		{"bad duration", url.Values{"userId": {user.ID}, "description": {"run"}, "duration": {"-3"}}, "duration"},
		{"missing userId", url.Values{"description": {"run"}, "duration": {"30"}}, "userId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postForm(t, router, "/api/exercise/add", tt.form)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d: %s", rr.Code, rr.Body.String())
			}
			if !strings.Contains(rr.Body.String(), tt.wantField) {
				t.Fatalf("error must name %q, got %q", tt.wantField, rr.Body.String())
			}
		})
	}
}

func TestLogWindowFiltering(t *testing.T) {
	router := newTestRouter()
	user := createUser(t, router, "ada")

	for _, date := range []string{"2021-01-01", "2021-06-01", "2022-01-01"} {
		if rr := addExercise(t, router, user.ID, "entry "+date, "30", date); rr.Code != http.StatusOK {
			t.Fatalf("seed %s: %d %s", date, rr.Code, rr.Body.String())
		}
	}

	rr := get(t, router, "/api/exercise/log?userId="+user.ID+"&from=2021-01-01&to=2021-12-31")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var log api.LogResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &log); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if log.Count != 2 || len(log.Exercises) != 2 {
		t.Fatalf("expected exactly the two 2021 entries, got count=%d len=%d", log.Count, len(log.Exercises))
	}
	if log.Exercises[0].Description != "entry 2021-01-01" || log.Exercises[1].Description != "entry 2021-06-01" {
		t.Fatalf("unexpected entries or order: %+v", log.Exercises)
	}
}

func TestLogLimitTruncatesAndCountMatches(t *testing.T) {
	router := newTestRouter()
	user := createUser(t, router, "ada")

	for _, date := range []string{"2021-01-01", "2021-02-01", "2021-03-01"} {
		if rr := addExercise(t, router, user.ID, "entry", "30", date); rr.Code != http.StatusOK {
			t.Fatalf("seed %s: %d", date, rr.Code)
		}
	}

	rr := get(t, router, "/api/exercise/log?userId="+user.ID+"&limit=2")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var log api.LogResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &log); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(log.Exercises) != 2 {
		t.Fatalf("expected truncation to 2 entries, got %d", len(log.Exercises))
	}
	if log.Count != 2 {
		t.Fatalf("count must match the returned array, not the total; got %d", log.Count)
	}
}

func TestLogRepeatedQueriesAreIdentical(t *testing.T) {
	router := newTestRouter()
	user := createUser(t, router, "ada")

	for _, desc := range []string{"a", "b", "c"} {
		if rr := addExercise(t, router, user.ID, desc, "30", "2021-06-01"); rr.Code != http.StatusOK {
			t.Fatalf("seed %s: %d", desc, rr.Code)
		}
	}

	first := get(t, router, "/api/exercise/log?userId="+user.ID)
	second := get(t, router, "/api/exercise/log?userId="+user.ID)
	if first.Body.String() != second.Body.String() {
		t.Fatalf("identical queries over unchanged state diverged:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func TestLogMissingUserIDIsBadRequest(t *testing.T) {
	router := newTestRouter()

	rr := get(t, router, "/api/exercise/log")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing userId must be a 400, got %d", rr.Code)
	}
}

func TestLogInvalidLimitIsBadRequest(t *testing.T) {
	router := newTestRouter()
	user := createUser(t, router, "ada")

	rr := get(t, router, "/api/exercise/log?userId="+user.ID+"&limit=0")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("non-positive limit must be a 400, got %d", rr.Code)
	}
}

func TestLogUnparsableDatesFallBackToFullWindow(t *testing.T) {
	router := newTestRouter()
	user := createUser(t, router, "ada")

	if rr := addExercise(t, router, user.ID, "run", "30", "2021-06-01"); rr.Code != http.StatusOK {
		t.Fatalf("seed: %d", rr.Code)
	}

	rr := get(t, router, "/api/exercise/log?userId="+user.ID+"&from=banana&to=apple")
	if rr.Code != http.StatusOK {
		t.Fatalf("unparsable dates must not fail the request, got %d: %s", rr.Code, rr.Body.String())
	}

	var log api.LogResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &log); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if log.Count != 1 {
		t.Fatalf("fallback window must cover the entry, got count=%d", log.Count)
	}
}

func TestUnmatchedRouteIsPlainTextNotFound(t *testing.T) {
	router := newTestRouter()

	rr := get(t, router, "/api/exercise/nope")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	if rr.Body.String() != "not found" {
		t.Fatalf("expected plain-text body %q, got %q", "not found", rr.Body.String())
	}
}

func TestRequestIDAssigned(t *testing.T) {
	router := newTestRouter()

	rr := get(t, router, "/api/exercise/users")
	if rr.Header().Get(api.RequestIDHeader) == "" {
		t.Fatal("expected a request id on the response")
	}
}
