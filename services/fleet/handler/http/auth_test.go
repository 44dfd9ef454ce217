package http

import (
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/services/fleet/mocks"
)

func setupAuthHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockAuthUC, *echo.Echo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(uc), uc, echo.New()
}

func TestRegister(t *testing.T) {
	h, uc, e := setupAuthHandlerTest(t)

	user := &models.User{ID: uuid.New(), Username: "mrodriguez", Role: models.RoleDriver, IsActive: true}
	uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(user, nil)

	body := `{"username":"mrodriguez","password":"s3cret","fullname":"Maria Rodriguez","role":"driver"}`
	req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, nethttp.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "mrodriguez")
	assert.NotContains(t, rec.Body.String(), "s3cret")
}

func TestRegister_InvalidRole(t *testing.T) {
	h, uc, e := setupAuthHandlerTest(t)

	uc.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("invalid role: dispatcher"))

	body := `{"username":"mrodriguez","password":"s3cret","role":"dispatcher"}`
	req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	h, uc, e := setupAuthHandlerTest(t)

	resp := &models.AuthResponse{
		Token:     "signed-token",
		ExpiresAt: 1750000000,
		UserID:    uuid.New(),
		Role:      models.RoleDriver,
		FullName:  "Maria Rodriguez",
	}
	uc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(resp, nil)

	body := `{"username":"mrodriguez","password":"s3cret"}`
	req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestLogin_BadCredentials(t *testing.T) {
	h, uc, e := setupAuthHandlerTest(t)

	uc.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("invalid credentials"))

	body := `{"username":"mrodriguez","password":"wrong"}`
	req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}
