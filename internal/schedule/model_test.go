package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var studioTZ = mustLoadLocation("America/Mexico_City")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func TestComposeStartsAt(t *testing.T) {
	t.Run("composes in the studio timezone", func(t *testing.T) {
		class := &ScheduledClass{
			// class_date columns come back as UTC midnight from the driver.
			ClassDate: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00:00",
		}

		require.NoError(t, class.ComposeStartsAt(studioTZ))

		want := time.Date(2025, time.June, 3, 9, 0, 0, 0, studioTZ)
		assert.True(t, class.StartsAt.Equal(want), "got %v", class.StartsAt)
		assert.Equal(t, studioTZ, class.StartsAt.Location())
	})

	t.Run("accepts HH:MM", func(t *testing.T) {
		class := &ScheduledClass{
			ClassDate: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
			StartTime: "18:30",
		}

		require.NoError(t, class.ComposeStartsAt(studioTZ))
		assert.Equal(t, 18, class.StartsAt.Hour())
		assert.Equal(t, 30, class.StartsAt.Minute())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		class := &ScheduledClass{
			ClassDate: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
			StartTime: "morning",
		}

		assert.Error(t, class.ComposeStartsAt(studioTZ))
	})
}
