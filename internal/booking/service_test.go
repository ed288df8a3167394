package booking_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfBooker/internal/booking"
	"turfBooker/internal/models"
	"turfBooker/internal/storage/jsonfile"
)

// fixedNow pins "today" to 2024-03-10 so every past/future check is
// deterministic.
func fixedNow() time.Time {
	return time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (*booking.Service, *jsonfile.Storage) {
	t.Helper()

	store := jsonfile.New(filepath.Join(t.TempDir(), "bookings.json"))
	catalog := booking.NewCatalog(models.DefaultSports(), models.HourlySlots(6, 22))

	return booking.NewService(store, catalog, nil, fixedNow), store
}

func validInput() booking.SubmitInput {
	return booking.SubmitInput{
		FullName:      "Arif Hossain",
		Phone:         "01711111111",
		Sport:         "football",
		Date:          "2024-03-10",
		Slots:         []string{"10:00"},
		PaymentMethod: "bkash",
		PaymentAmount: models.PaymentFull,
	}
}

func TestSubmitThenConflict(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)

	created, err := svc.Submit(validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1500, created.TotalPrice)
	assert.Equal(t, fixedNow(), created.CreatedAt)

	statuses, err := svc.SlotStatus("football", "2024-03-10")
	require.NoError(t, err)

	byLabel := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		byLabel[s.Slot] = s.Booked
	}
	assert.True(t, byLabel["10:00"])
	assert.False(t, byLabel["11:00"])

	_, err = svc.Submit(validInput())
	assert.ErrorIs(t, err, booking.ErrSlotConflict)

	all, err := store.LoadAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestNoDoubleBookingAcrossSlotSets(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	first := validInput()
	first.Slots = []string{"10:00", "11:00"}
	_, err := svc.Submit(first)
	require.NoError(t, err)

	// Overlaps on one slot of the existing booking.
	second := validInput()
	second.FullName = "Nadia"
	second.Phone = "01722222222"
	second.Slots = []string{"11:00", "12:00"}
	_, err = svc.Submit(second)
	assert.ErrorIs(t, err, booking.ErrSlotConflict)

	// Disjoint slots are fine.
	third := validInput()
	third.Slots = []string{"12:00"}
	_, err = svc.Submit(third)
	assert.NoError(t, err)

	// Same slot, different sport is a different resource.
	fourth := validInput()
	fourth.Sport = "cricket"
	fourth.Slots = []string{"10:00"}
	_, err = svc.Submit(fourth)
	assert.NoError(t, err)

	// Same slot, different day is a different resource.
	fifth := validInput()
	fifth.Date = "2024-03-11"
	_, err = svc.Submit(fifth)
	assert.NoError(t, err)
}

func TestPastDateRejected(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)

	input := validInput()
	input.Date = "2024-03-09"

	_, err := svc.Submit(input)
	assert.ErrorIs(t, err, booking.ErrPastDate)

	all, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTodayIsBookable(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Submit(validInput())
	assert.NoError(t, err)
}

func TestMissingFields(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		mutate func(in *booking.SubmitInput)
		want   error
	}{
		{"No name", func(in *booking.SubmitInput) { in.FullName = " " }, booking.ErrMissingField},
		{"No phone", func(in *booking.SubmitInput) { in.Phone = "" }, booking.ErrMissingField},
		{"No slots", func(in *booking.SubmitInput) { in.Slots = nil }, booking.ErrMissingField},
		{"Unknown sport", func(in *booking.SubmitInput) { in.Sport = "chess" }, booking.ErrUnknownSport},
		{"Unknown slot", func(in *booking.SubmitInput) { in.Slots = []string{"23:00"} }, booking.ErrUnknownSlot},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, store := newTestService(t)

			input := validInput()
			tc.mutate(&input)

			_, err := svc.Submit(input)
			assert.ErrorIs(t, err, tc.want)

			all, err := store.LoadAll()
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestIdempotentSlotStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Submit(validInput())
	require.NoError(t, err)

	first, err := svc.SlotStatus("football", "2024-03-10")
	require.NoError(t, err)

	second, err := svc.SlotStatus("football", "2024-03-10")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAppendOnlyRoundTrip(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)

	input := booking.SubmitInput{
		User:          &models.User{ID: "u-7", Email: "arif@example.com"},
		FullName:      "Arif Hossain",
		Phone:         "01711111111",
		Sport:         "cricket",
		Date:          "2024-04-01",
		Slots:         []string{"18:00", "20:00"},
		Players:       12,
		Notes:         "bring stumps",
		PaymentMethod: "card",
		PaymentAmount: models.PaymentConfirmation,
		DiscountCode:  "EARLY10",
	}

	created, err := svc.Submit(input)
	require.NoError(t, err)

	extra := validInput()
	extra.Slots = []string{"06:00"}
	_, err = svc.Submit(extra)
	require.NoError(t, err)

	all, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)

	got := all[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "u-7", got.UserID)
	assert.Equal(t, "Arif Hossain", got.FullName)
	assert.Equal(t, "01711111111", got.Phone)
	assert.Equal(t, "arif@example.com", got.Email)
	assert.Equal(t, "cricket", got.Sport)
	assert.Equal(t, "2024-04-01", got.Date)
	assert.Equal(t, []string{"18:00", "20:00"}, got.Slots)
	assert.Equal(t, 12, got.Players)
	assert.Equal(t, "bring stumps", got.Notes)
	assert.Equal(t, "card", got.PaymentMethod)
	assert.Equal(t, models.PaymentConfirmation, got.PaymentAmount)
	assert.Equal(t, "EARLY10", got.DiscountCode)
	assert.Equal(t, 2400, got.TotalPrice)
	assert.True(t, got.CreatedAt.Equal(fixedNow()))
}

func TestUserPrefillsContactFields(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	input := validInput()
	input.FullName = ""
	input.Phone = ""
	input.User = &models.User{
		ID:    "u-1",
		Name:  "Stored Name",
		Phone: "01733333333",
		Email: "stored@example.com",
	}

	created, err := svc.Submit(input)
	require.NoError(t, err)

	assert.Equal(t, "u-1", created.UserID)
	assert.Equal(t, "Stored Name", created.FullName)
	assert.Equal(t, "01733333333", created.Phone)
	assert.Equal(t, "stored@example.com", created.Email)
}

func TestDiscountPricing(t *testing.T) {
	t.Parallel()

	store := jsonfile.New(filepath.Join(t.TempDir(), "bookings.json"))
	catalog := booking.NewCatalog(models.DefaultSports(), models.HourlySlots(6, 22))
	discounts := booking.PercentTable{"EARLY10": 10}

	svc := booking.NewService(store, catalog, discounts, fixedNow)

	input := validInput()
	input.Slots = []string{"10:00", "11:00"}
	input.DiscountCode = "EARLY10"

	created, err := svc.Submit(input)
	require.NoError(t, err)
	// 1500 * 2 slots, minus 10 percent.
	assert.Equal(t, 2700, created.TotalPrice)

	plain := validInput()
	plain.Slots = []string{"12:00"}
	plain.DiscountCode = "BOGUS"

	created, err = svc.Submit(plain)
	require.NoError(t, err)
	assert.Equal(t, 1500, created.TotalPrice)
}

func TestTrackBookingByPhone(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Submit(validInput())
	require.NoError(t, err)

	other := validInput()
	other.Phone = "01722222222"
	other.Slots = []string{"11:00"}
	_, err = svc.Submit(other)
	require.NoError(t, err)

	mine, err := svc.Bookings("01711111111")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "01711111111", mine[0].Phone)

	all, err := svc.Bookings("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBookingByID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	created, err := svc.Submit(validInput())
	require.NoError(t, err)

	got, err := svc.BookingByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.BookingByID("missing")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestCompletionSignal(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	var signalled []models.Booking
	svc.SetNotifier(notifierFunc(func(b models.Booking) {
		signalled = append(signalled, b)
	}))

	created, err := svc.Submit(validInput())
	require.NoError(t, err)

	require.Len(t, signalled, 1)
	assert.Equal(t, created.ID, signalled[0].ID)

	_, err = svc.Submit(validInput())
	require.ErrorIs(t, err, booking.ErrSlotConflict)
	assert.Len(t, signalled, 1, "rejected submissions must not signal")
}

type notifierFunc func(models.Booking)

func (f notifierFunc) BookingCreated(b models.Booking) { f(b) }
