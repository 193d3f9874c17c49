package catalog

import "catalogserver/models"

// ApplyUpdate merges the user-editable fields of incoming into existing and returns existing.
// Only the star rating and the comment can change: an absent rating clears the stored one,
// an absent or empty comment clears the stored one, anything else overwrites. Title, image
// and bands are left alone. The caller is responsible for checking that existing is real.
func ApplyUpdate(existing *models.Event, incoming models.Event) *models.Event {
	switch {
	case incoming.NbStars == nil:
		existing.NbStars = nil
	case existing.NbStars == nil || *existing.NbStars != *incoming.NbStars:
		existing.NbStars = models.IntPtr(*incoming.NbStars)
	}

	switch {
	case incoming.Comment == nil || *incoming.Comment == "":
		existing.Comment = nil
	case existing.Comment == nil || *existing.Comment != *incoming.Comment:
		existing.Comment = models.StringPtr(*incoming.Comment)
	}

	return existing
}
