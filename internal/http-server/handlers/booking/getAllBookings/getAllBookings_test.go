package getAllBookings

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfBooker/internal/http-server/handlers/booking/getAllBookings/mocks"
	"turfBooker/internal/lib/logger/handlers/slogdiscard"
	"turfBooker/internal/models"
)

func TestGetAllBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	sample := []models.Booking{
		{ID: "b-1", FullName: "Arif", Phone: "01711111111", Sport: "football", Date: "2030-03-10", Slots: []string{"10:00"}},
		{ID: "b-2", FullName: "Nadia", Phone: "01722222222", Sport: "cricket", Date: "2030-03-11", Slots: []string{"18:00"}},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.BookingsLister)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "All bookings",
			url:  "/bookings",
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("Bookings", "").Return(sample, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":"b-1"`)
				assert.Contains(t, body, `"id":"b-2"`)
			},
		},
		{
			name: "Filtered by phone",
			url:  "/bookings?phone=01722222222",
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("Bookings", "01722222222").Return(sample[1:], nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.NotContains(t, body, `"id":"b-1"`)
				assert.Contains(t, body, `"id":"b-2"`)
			},
		},
		{
			name: "Empty history",
			url:  "/bookings",
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("Bookings", "").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name: "Storage failure",
			url:  "/bookings",
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("Bookings", "").Return(nil, errors.New("read failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to get bookings")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewBookingsLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
