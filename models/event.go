package models

import "github.com/jinzhu/copier"

// highest rating the catalog accepts, ratings start at 0
const MaxStars = 5

// Optional fields are pointers so that "absent" (nil) and "empty" ("" / 0) stay distinguishable
// all the way from the JSON payload down to the stored document.
type Event struct {
	ID      int64   `json:"id" bson:"_id" yaml:"id"`
	Title   string  `json:"title" bson:"title" yaml:"title"`
	ImgURL  *string `json:"imgUrl" bson:"img_url,omitempty" yaml:"imgUrl"`
	Bands   []Band  `json:"bands" bson:"bands" yaml:"bands"`
	NbStars *int    `json:"nbStars" bson:"nb_stars,omitempty" yaml:"nbStars"`
	Comment *string `json:"comment" bson:"comment,omitempty" yaml:"comment"`
}

// Returns a deep copy of the event. Bands, members and the optional fields are
// all reallocated so nothing in the copy aliases the original.
func (e Event) Clone() Event {
	var clone Event
	if err := copier.CopyWithOption(&clone, &e, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which can't happen copying a type onto itself
		panic(err)
	}
	return clone
}

// deep copies a whole snapshot, keeping order
func CloneEvents(events []Event) []Event {
	if events == nil {
		return nil
	}
	clones := make([]Event, 0, len(events))
	for _, event := range events {
		clones = append(clones, event.Clone())
	}
	return clones
}

func IntPtr(v int) *int {
	return &v
}

func StringPtr(v string) *string {
	return &v
}
