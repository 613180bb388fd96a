package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestlistapp/guestlist-api/internal/config"
	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/pkg/jwthelper"
	"github.com/guestlistapp/guestlist-api/internal/service"
)

const authTestSigningKey = "handler-test-signing-key"

type stubAuthService struct {
	usersByEmail map[string]domain.User
	usersByPhone map[string]domain.User
	nextID       uint
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{
		usersByEmail: map[string]domain.User{},
		usersByPhone: map[string]domain.User{},
		nextID:       1,
	}
}

func (s *stubAuthService) Register(_ context.Context, email, password, name string, phone *string) (domain.User, error) {
	if _, ok := s.usersByEmail[email]; ok {
		return domain.User{}, service.ErrUserEmailExists
	}

	hash := "hashed:" + password
	user := domain.User{
		ID:           s.nextID,
		Email:        &email,
		PasswordHash: &hash,
		Name:         name,
		Phone:        phone,
	}
	s.nextID++
	s.usersByEmail[email] = user

	return user, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (domain.User, error) {
	user, ok := s.usersByEmail[email]
	if !ok {
		return domain.User{}, service.ErrUserNotFound
	}
	if user.PasswordHash == nil || *user.PasswordHash != "hashed:"+password {
		return domain.User{}, service.ErrWrongPassword
	}

	return user, nil
}

func (s *stubAuthService) PhoneAuth(_ context.Context, phone, name string) (domain.User, error) {
	if user, ok := s.usersByPhone[phone]; ok {
		user.Name = name
		s.usersByPhone[phone] = user

		return user, nil
	}

	user := domain.User{
		ID:    s.nextID,
		Phone: &phone,
		Name:  name,
	}
	s.nextID++
	s.usersByPhone[phone] = user

	return user, nil
}

type stubUserService struct {
	users map[uint]domain.User
}

func (s *stubUserService) GetUser(_ context.Context, id uint) (domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, service.ErrUserNotFound
	}

	return user, nil
}

func setupAuthRouter(svc AuthService, userSvc AuthUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	conf := &config.APIConfig{JWTSigningKey: authTestSigningKey}
	h := NewAuthHandler(conf, svc, userSvc)
	router.POST("/auth/register", h.HandleRegister)
	router.POST("/auth/login", h.HandleLogin)
	router.POST("/auth/phone-auth", h.HandlePhoneAuth)

	return router
}

func TestHandleRegister(t *testing.T) {
	router := setupAuthRouter(newStubAuthService(), nil)

	w := doJSON(router, http.MethodPost, "/auth/register",
		`{"email":"amy@example.com","password":"password1","name":"Amy"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"amy@example.com"`)
	assert.NotContains(t, w.Body.String(), "password1")
	assert.NotContains(t, w.Body.String(), "hashed:")
	assert.Contains(t, w.Body.String(), `"token":"`)
}

func TestHandleRegister_TokenIsVerifiable(t *testing.T) {
	svc := newStubAuthService()
	router := setupAuthRouter(svc, nil)

	w := doJSON(router, http.MethodPost, "/auth/register",
		`{"email":"amy@example.com","password":"password1","name":"Amy"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := jwthelper.VerifyToken([]byte(authTestSigningKey), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, svc.usersByEmail["amy@example.com"].ID, claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestHandleRegister_Validation(t *testing.T) {
	router := setupAuthRouter(newStubAuthService(), nil)

	tests := []struct {
		name string
		body string
	}{
		{"bad email", `{"email":"not-an-email","password":"password1","name":"Amy"}`},
		{"short password", `{"email":"amy@example.com","password":"pw1","name":"Amy"}`},
		{"password without digits", `{"email":"amy@example.com","password":"passwords","name":"Amy"}`},
		{"password without letters", `{"email":"amy@example.com","password":"12345678","name":"Amy"}`},
		{"missing name", `{"email":"amy@example.com","password":"password1"}`},
		{"bad phone", `{"email":"amy@example.com","password":"password1","name":"Amy","phone":"0abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	router := setupAuthRouter(newStubAuthService(), nil)

	body := `{"email":"amy@example.com","password":"password1","name":"Amy"}`
	w := doJSON(router, http.MethodPost, "/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleLogin(t *testing.T) {
	svc := newStubAuthService()
	router := setupAuthRouter(svc, nil)

	w := doJSON(router, http.MethodPost, "/auth/register",
		`{"email":"amy@example.com","password":"password1","name":"Amy"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("success", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/auth/login",
			`{"email":"amy@example.com","password":"password1"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"`)
	})

	t.Run("wrong password and unknown email render identically", func(t *testing.T) {
		wrongPassword := doJSON(router, http.MethodPost, "/auth/login",
			`{"email":"amy@example.com","password":"nope12345"}`)
		unknownEmail := doJSON(router, http.MethodPost, "/auth/login",
			`{"email":"ghost@example.com","password":"password1"}`)

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})
}

func TestHandlePhoneAuth(t *testing.T) {
	svc := newStubAuthService()
	router := setupAuthRouter(svc, nil)

	w := doJSON(router, http.MethodPost, "/auth/phone-auth",
		`{"phone":"+14155552671","name":"Ben"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"phone":"+14155552671"`)
	assert.Contains(t, w.Body.String(), `"token":"`)

	w = doJSON(router, http.MethodPost, "/auth/phone-auth",
		`{"phone":"14155552671abc","name":"Ben"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
