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
	"github.com/ncastellanos/flotilla/services/tracking/mocks"
)

func setupTrackingHandlerTest(t *testing.T) (*TrackingHandler, *mocks.MockTrackingUC, *echo.Echo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockTrackingUC(ctrl)
	return NewTrackingHandler(uc), uc, echo.New()
}

func TestListTransmitting(t *testing.T) {
	h, uc, e := setupTrackingHandlerTest(t)

	records := []models.LocationRecord{
		{DriverID: uuid.NewString(), Latitude: "10.5", Longitude: "-74.2", IsTransmitting: true},
	}
	uc.EXPECT().ListTransmitting(gomock.Any()).Return(records, nil)

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListTransmitting(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), records[0].DriverID)
}

func TestUpdateDriverLocation(t *testing.T) {
	h, uc, e := setupTrackingHandlerTest(t)

	driverID := uuid.New()
	record := &models.LocationRecord{DriverID: driverID.String(), Latitude: "10.5", Longitude: "-74.2", IsTransmitting: true}
	uc.EXPECT().UpdateLocation(gomock.Any(), driverID.String(), gomock.Any()).Return(record, nil)

	body := `{"latitude":"10.5","longitude":"-74.2","is_transmitting":true}`
	req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(driverID.String())

	require.NoError(t, h.UpdateDriverLocation(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestUpdateDriverLocation_InvalidCoordinates(t *testing.T) {
	h, uc, e := setupTrackingHandlerTest(t)

	driverID := uuid.New()
	uc.EXPECT().UpdateLocation(gomock.Any(), driverID.String(), gomock.Any()).
		Return(nil, errors.New("invalid latitude"))

	body := `{"latitude":"north","longitude":"-74.2"}`
	req := httptest.NewRequest(nethttp.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(driverID.String())

	require.NoError(t, h.UpdateDriverLocation(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestStopTransmission_NoContent(t *testing.T) {
	h, uc, e := setupTrackingHandlerTest(t)

	driverID := uuid.New()
	uc.EXPECT().StopTransmission(gomock.Any(), driverID.String()).Return(nil)

	req := httptest.NewRequest(nethttp.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(driverID.String())

	require.NoError(t, h.StopTransmission(c))
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestStopTransmission_Repeatable(t *testing.T) {
	h, uc, e := setupTrackingHandlerTest(t)

	driverID := uuid.New()
	uc.EXPECT().StopTransmission(gomock.Any(), driverID.String()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(nethttp.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(driverID.String())

		require.NoError(t, h.StopTransmission(c))
		assert.Equal(t, nethttp.StatusNoContent, rec.Code)
	}
}

func TestGetDriverLocation_AbsentIsNotFound(t *testing.T) {
	h, uc, e := setupTrackingHandlerTest(t)

	driverID := uuid.New()
	uc.EXPECT().GetDriverLocation(gomock.Any(), driverID.String()).
		Return(nil, nil)

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(driverID.String())

	require.NoError(t, h.GetDriverLocation(c))
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestGetDriverLocation_LedgerError(t *testing.T) {
	h, uc, e := setupTrackingHandlerTest(t)

	driverID := uuid.New()
	uc.EXPECT().GetDriverLocation(gomock.Any(), driverID.String()).
		Return(nil, errors.New("redis: connection refused"))

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(driverID.String())

	require.NoError(t, h.GetDriverLocation(c))
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
}
