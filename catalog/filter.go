// Package catalog holds the pure operations over event snapshots: the member-name
// search that prunes and relabels the catalog, and the rating/comment update merge.
package catalog

import (
	"catalogserver/models"
	"fmt"
	"strings"
)

// Filter returns the events that still have at least one band with at least one
// member whose name contains query (case-insensitive). Surviving bands and events
// are relabeled with a bracketed count. The input is never modified; the result is
// built from a deep copy so it can be handed to a caller without aliasing the store.
func Filter(events []models.Event, query string) []models.Event {
	return FilterInPlace(models.CloneEvents(events), query)
}

// FilterInPlace is Filter without the defensive copy: bands, members and titles of the
// given events are rewritten and the returned slice shares its backing array with events.
// Only use it on a snapshot nobody else can see.
func FilterInPlace(events []models.Event, query string) []models.Event {
	needle := strings.ToLower(query)

	kept := events[:0]
	for _, event := range events {
		if reduceEvent(&event, needle) {
			kept = append(kept, event)
		}
	}
	return kept
}

func memberMatches(member models.Member, needle string) bool {
	return strings.Contains(strings.ToLower(member.Name), needle)
}

// drops non-matching members, reports whether the band survives and relabels it
func reduceBand(band *models.Band, needle string) bool {
	members := band.Members[:0]
	for _, member := range band.Members {
		if memberMatches(member, needle) {
			members = append(members, member)
		}
	}
	band.Members = members

	count := band.MemberCount()
	if count == 0 {
		return false
	}

	// only a suffix matching the current count counts as already labeled, a stale one stays
	if !strings.Contains(band.Name, countSuffix(count)) {
		band.Name = withCount(band.Name, count)
	}
	return true
}

func reduceEvent(event *models.Event, needle string) bool {
	bands := event.Bands[:0]
	members := 0
	for _, band := range event.Bands {
		if reduceBand(&band, needle) {
			bands = append(bands, band)
			members += band.MemberCount()
		}
	}
	event.Bands = bands

	if len(bands) == 0 {
		return false
	}

	// event titles are always relabeled, even when a previous pass already did it
	event.Title = withCount(event.Title, len(bands)+members)
	return true
}

func countSuffix(n int) string {
	return fmt.Sprintf(" [%d]", n)
}

func withCount(label string, n int) string {
	return label + countSuffix(n)
}
