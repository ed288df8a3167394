package booking_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfBooker/internal/booking"
	"turfBooker/internal/models"
	"turfBooker/internal/storage/jsonfile"
)

func TestSlotStatusCatalogOrder(t *testing.T) {
	t.Parallel()

	store := jsonfile.New(filepath.Join(t.TempDir(), "bookings.json"))
	catalog := booking.NewCatalog(models.DefaultSports(), models.HourlySlots(6, 22))
	eval := booking.NewEvaluator(store, catalog)

	statuses, err := eval.SlotStatus("football", "2024-03-10")
	require.NoError(t, err)

	require.Len(t, statuses, 17)
	assert.Equal(t, "06:00", statuses[0].Slot)
	assert.Equal(t, "22:00", statuses[16].Slot)

	for _, s := range statuses {
		assert.False(t, s.Booked)
	}
}

func TestSlotStatusInputValidation(t *testing.T) {
	t.Parallel()

	store := jsonfile.New(filepath.Join(t.TempDir(), "bookings.json"))
	catalog := booking.NewCatalog(models.DefaultSports(), models.HourlySlots(6, 22))
	eval := booking.NewEvaluator(store, catalog)

	_, err := eval.SlotStatus("chess", "2024-03-10")
	assert.ErrorIs(t, err, booking.ErrUnknownSport)

	_, err = eval.SlotStatus("football", "10.03.2024")
	assert.Error(t, err)
}

func TestSlotStatusIgnoresOtherSportAndDay(t *testing.T) {
	t.Parallel()

	store := jsonfile.New(filepath.Join(t.TempDir(), "bookings.json"))
	catalog := booking.NewCatalog(models.DefaultSports(), models.HourlySlots(6, 22))

	seed := []models.Booking{
		{ID: "b-1", FullName: "A", Phone: "1", Sport: "football", Date: "2024-03-10", Slots: []string{"10:00"}},
		{ID: "b-2", FullName: "B", Phone: "2", Sport: "cricket", Date: "2024-03-10", Slots: []string{"11:00"}},
		{ID: "b-3", FullName: "C", Phone: "3", Sport: "football", Date: "2024-03-11", Slots: []string{"12:00"}},
	}
	for _, b := range seed {
		b.PaymentMethod = "cash"
		b.PaymentAmount = models.PaymentFull
		require.NoError(t, store.Append(b))
	}

	eval := booking.NewEvaluator(store, catalog)

	statuses, err := eval.SlotStatus("football", "2024-03-10")
	require.NoError(t, err)

	byLabel := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		byLabel[s.Slot] = s.Booked
	}

	assert.True(t, byLabel["10:00"])
	assert.False(t, byLabel["11:00"], "cricket booking must not block football")
	assert.False(t, byLabel["12:00"], "other day must not block this day")
}
