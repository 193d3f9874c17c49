package catalog

import (
	"catalogserver/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyUpdate(t *testing.T) {
	tests := []struct {
		name        string
		incoming    models.Event
		wantStars   *int
		wantComment *string
	}{
		{
			name:        "absent stars clear, new comment overwrites",
			incoming:    models.Event{Comment: models.StringPtr("Nul !")},
			wantStars:   nil,
			wantComment: models.StringPtr("Nul !"),
		},
		{
			name:        "same stars kept, empty comment clears",
			incoming:    models.Event{NbStars: models.IntPtr(5), Comment: models.StringPtr("")},
			wantStars:   models.IntPtr(5),
			wantComment: nil,
		},
		{
			name:        "zero stars is a value, not absence",
			incoming:    models.Event{NbStars: models.IntPtr(0), Comment: models.StringPtr("Perfect")},
			wantStars:   models.IntPtr(0),
			wantComment: models.StringPtr("Perfect"),
		},
		{
			name:        "everything absent clears both",
			incoming:    models.Event{},
			wantStars:   nil,
			wantComment: nil,
		},
		{
			name:        "both overwritten",
			incoming:    models.Event{NbStars: models.IntPtr(2), Comment: models.StringPtr("Bof")},
			wantStars:   models.IntPtr(2),
			wantComment: models.StringPtr("Bof"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := concertEvent()

			merged := ApplyUpdate(&existing, tt.incoming)

			require.Same(t, &existing, merged)
			assert.Equal(t, tt.wantStars, merged.NbStars)
			assert.Equal(t, tt.wantComment, merged.Comment)
		})
	}
}

func TestApplyUpdate_FillsAbsentValues(t *testing.T) {
	existing := carnavalEvent()

	ApplyUpdate(&existing, models.Event{NbStars: models.IntPtr(4), Comment: models.StringPtr("Super")})

	require.NotNil(t, existing.NbStars)
	assert.Equal(t, 4, *existing.NbStars)
	require.NotNil(t, existing.Comment)
	assert.Equal(t, "Super", *existing.Comment)
}

func TestApplyUpdate_LeavesOtherFieldsAlone(t *testing.T) {
	existing := concertEvent()
	existing.ImgURL = models.StringPtr("img/concert.png")
	incoming := models.Event{
		ID:      42,
		Title:   "Renamed",
		ImgURL:  models.StringPtr("img/other.png"),
		Bands:   []models.Band{{ID: 99, Name: "Other"}},
		NbStars: models.IntPtr(1),
	}

	ApplyUpdate(&existing, incoming)

	assert.Equal(t, int64(1), existing.ID)
	assert.Equal(t, "Concert", existing.Title)
	assert.Equal(t, "img/concert.png", *existing.ImgURL)
	assert.Equal(t, concertEvent().Bands, existing.Bands)
}

func TestApplyUpdate_DoesNotAliasIncoming(t *testing.T) {
	existing := concertEvent()
	incoming := models.Event{NbStars: models.IntPtr(3), Comment: models.StringPtr("Bien")}

	ApplyUpdate(&existing, incoming)
	*incoming.NbStars = 1
	*incoming.Comment = "changed"

	assert.Equal(t, 3, *existing.NbStars)
	assert.Equal(t, "Bien", *existing.Comment)
}
