package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TireSlotService/internal/service/bookings"
	"github.com/m04kA/SMC-TireSlotService/internal/service/bookings/models"
)

type fakeService struct {
	id  int64
	req *models.CancelBookingRequest
	err error
}

func (f *fakeService) Cancel(_ context.Context, id int64, req *models.CancelBookingRequest) error {
	f.id = id
	f.req = req
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc BookingService) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)
	return r
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/42/cancel",
		strings.NewReader(`{"cancellationReason":"klient zadzwonił"}`))
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.id)
	require.NotNil(t, svc.req.CancellationReason)
	assert.Equal(t, "klient zadzwonił", *svc.req.CancellationReason)
}

func TestHandler_Handle_EmptyBody(t *testing.T) {
	svc := &fakeService{}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/7/cancel", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.req.CancellationReason)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		svcErr     error
		wantStatus int
	}{
		{name: "bad id", url: "/api/v1/bookings/abc/cancel", wantStatus: http.StatusBadRequest},
		{name: "not found", url: "/api/v1/bookings/1/cancel", svcErr: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "cannot cancel", url: "/api/v1/bookings/1/cancel", svcErr: bookings.ErrCannotCancel, wantStatus: http.StatusConflict},
		{name: "invalid input", url: "/api/v1/bookings/1/cancel", svcErr: bookings.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", url: "/api/v1/bookings/1/cancel", svcErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(&fakeService{err: tt.svcErr}).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
