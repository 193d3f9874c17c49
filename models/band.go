package models

type Band struct {
	ID      int64    `json:"id" bson:"id" yaml:"id"`
	Name    string   `json:"name" bson:"name" yaml:"name"`
	Members []Member `json:"members" bson:"members" yaml:"members"`
}

// number of members currently attached to the band, after any filtering
func (b Band) MemberCount() int {
	return len(b.Members)
}
