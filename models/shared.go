package models

// Location is a coarse (state, city) pair used for eligibility matching.
type Location struct {
	State string `bson:"state" json:"state"`
	City  string `bson:"city" json:"city"`
}

// Known reports whether both components are set.
func (l Location) Known() bool {
	return l.State != "" && l.City != ""
}

// Matches compares two locations case-sensitively; callers normalize at the boundary.
func (l Location) Matches(other Location) bool {
	return l.State == other.State && l.City == other.City
}

// TimeWindow is an inclusive daily working window in "HH:MM" form.
type TimeWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}
