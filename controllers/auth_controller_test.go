package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nishantsaini5786/saini-game-hub-backend/middleware"
	"github.com/nishantsaini5786/saini-game-hub-backend/models"
	"github.com/nishantsaini5786/saini-game-hub-backend/repositories"
	"github.com/nishantsaini5786/saini-game-hub-backend/services"
	"github.com/nishantsaini5786/saini-game-hub-backend/utils"
)

// fakeUserRepo mirrors the Mongo repository's contract in memory, shared by
// the controller tests in this package.
type fakeUserRepo struct {
	users     []*models.User
	createErr error
}

func (f *fakeUserRepo) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserRepo) UpdateProfileImage(ctx context.Context, id, filename string) error {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			u.ProfileImage = filename
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

// setupAuthRouter wires the auth routes the way main does.
func setupAuthRouter(repo repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware())

	ctrl := NewAuthController(services.NewAuthService(repo))
	r.POST("/register", ctrl.RegisterUser)
	r.POST("/login", ctrl.LoginUser)
	r.GET("/check", ctrl.CheckSession)
	r.GET("/logout", ctrl.LogoutUser)
	return r
}

func performRequest(r *gin.Engine, method, path string, body io.Reader, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// decodeSessionCookie undoes gin's URL escaping and parses the JSON payload.
func decodeSessionCookie(t *testing.T, c *http.Cookie) models.SessionUser {
	t.Helper()
	raw, err := url.QueryUnescape(c.Value)
	require.NoError(t, err)

	var session models.SessionUser
	require.NoError(t, json.Unmarshal([]byte(raw), &session))
	return session
}

const registerBody = `{"name":"A","username":"a1","contact":"123","email":"a1@gmail.com","password":"p"}`

func TestRegisterUser_SetsSessionCookie(t *testing.T) {
	repo := &fakeUserRepo{}
	r := setupAuthRouter(repo)

	w := performRequest(r, http.MethodPost, "/register", strings.NewReader(registerBody))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

	session := decodeSessionCookie(t, cookie)
	assert.Equal(t, "a1", session.Username)
	require.Len(t, repo.users, 1)
	assert.Equal(t, repo.users[0].ID.Hex(), session.ID)
}

func TestRegisterUser_MissingFieldFails(t *testing.T) {
	repo := &fakeUserRepo{}
	r := setupAuthRouter(repo)

	body := `{"name":"A","username":"a1","email":"a1@gmail.com","password":"p"}` // no contact
	w := performRequest(r, http.MethodPost, "/register", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"All fields are required"}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
	assert.Empty(t, repo.users)
}

func TestRegisterUser_NonGmailFails(t *testing.T) {
	repo := &fakeUserRepo{}
	r := setupAuthRouter(repo)

	body := `{"name":"A","username":"a1","contact":"123","email":"a1@yahoo.com","password":"p"}`
	w := performRequest(r, http.MethodPost, "/register", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid email address"}`, w.Body.String())
	assert.Empty(t, repo.users)
}

func TestRegisterUser_DuplicateEmailFails(t *testing.T) {
	repo := &fakeUserRepo{}
	r := setupAuthRouter(repo)

	first := performRequest(r, http.MethodPost, "/register", strings.NewReader(registerBody))
	require.Equal(t, http.StatusOK, first.Code)

	// Same email, different username: one record, never two.
	body := `{"name":"B","username":"b2","contact":"456","email":"a1@gmail.com","password":"q"}`
	second := performRequest(r, http.MethodPost, "/register", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.JSONEq(t, `{"error":"User already exists"}`, second.Body.String())
	assert.Empty(t, second.Result().Cookies())
	assert.Len(t, repo.users, 1)
}

func TestLoginUser_WrongPasswordSetsNoCookie(t *testing.T) {
	repo := &fakeUserRepo{}
	r := setupAuthRouter(repo)
	registerTestUser(t, r)

	body := `{"email":"a1@gmail.com","password":"wrong"}`
	w := performRequest(r, http.MethodPost, "/login", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Incorrect password"}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginUser_UnknownEmailFails(t *testing.T) {
	repo := &fakeUserRepo{}
	r := setupAuthRouter(repo)

	body := `{"email":"missing@gmail.com","password":"p"}`
	w := performRequest(r, http.MethodPost, "/login", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginUser_Success(t *testing.T) {
	repo := &fakeUserRepo{}
	r := setupAuthRouter(repo)
	registerTestUser(t, r)

	body := `{"email":"a1@gmail.com","password":"p"}`
	w := performRequest(r, http.MethodPost, "/login", strings.NewReader(body))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	session := decodeSessionCookie(t, sessionCookie(t, w))
	assert.Equal(t, repo.users[0].Username, session.Username)
	assert.Equal(t, repo.users[0].ID.Hex(), session.ID)
}

func TestCheckSession_NoCookie(t *testing.T) {
	r := setupAuthRouter(&fakeUserRepo{})

	w := performRequest(r, http.MethodGet, "/check", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loggedIn":false}`, w.Body.String())
}

func TestCheckSession_WithLoginCookie(t *testing.T) {
	repo := &fakeUserRepo{}
	r := setupAuthRouter(repo)
	loginCookie := registerTestUser(t, r)

	w := performRequest(r, http.MethodGet, "/check", nil, loginCookie)

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		LoggedIn bool               `json:"loggedIn"`
		User     models.SessionUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.LoggedIn)
	assert.Equal(t, "a1", res.User.Username)
	assert.Equal(t, repo.users[0].ID.Hex(), res.User.ID)
}

func TestCheckSession_MalformedCookie(t *testing.T) {
	r := setupAuthRouter(&fakeUserRepo{})

	bad := &http.Cookie{Name: utils.SessionCookieName, Value: "not-json"}
	w := performRequest(r, http.MethodGet, "/check", nil, bad)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loggedIn":false}`, w.Body.String())
}

func TestLogoutUser_ClearsCookie(t *testing.T) {
	r := setupAuthRouter(&fakeUserRepo{})

	w := performRequest(r, http.MethodGet, "/logout", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	cookie := sessionCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

// registerTestUser registers the standard test account and returns its
// session cookie.
func registerTestUser(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/register", strings.NewReader(registerBody))
	require.Equal(t, http.StatusOK, w.Code)
	return sessionCookie(t, w)
}
