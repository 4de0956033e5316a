package models

import "time"

// DaySchedule is one weekday entry of a jovem's weekly schedule.
type DaySchedule struct {
	Enabled bool   `bson:"enabled" json:"enabled"`
	Start   string `bson:"start,omitempty" json:"start,omitempty"`
	End     string `bson:"end,omitempty" json:"end,omitempty"`
}

// JovemStats is the derived-statistics block rolled up at booking completion.
// All four fields update together in a single write.
type JovemStats struct {
	CompletedServices int     `bson:"completedServices" json:"completedServices"`
	Rating            float64 `bson:"rating" json:"rating"`
	Points            int     `bson:"points" json:"points"`
	TotalEarnings     float64 `bson:"totalEarnings" json:"totalEarnings"`
}

// Jovem is a service-providing worker affiliated with an ONG.
type Jovem struct {
	ID           string     `bson:"id" json:"id"`
	OngID        string     `bson:"ongId,omitempty" json:"ongId,omitempty"`
	UserID       string     `bson:"userId,omitempty" json:"userId,omitempty"`
	Name         string     `bson:"name" json:"name"`
	Email        string     `bson:"email" json:"email"`
	Phone        string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Availability bool       `bson:"availability" json:"availability"`
	Skills       SkillSet   `bson:"skills" json:"skills"`
	Location     Location   `bson:"location" json:"location"`
	Stats        JovemStats `bson:"stats" json:"stats"`

	// WeeklySchedule maps lowercase weekday names ("monday") to that day's
	// window. When absent, Window plus WorkDays act as the fallback schedule.
	WeeklySchedule map[string]DaySchedule `bson:"weeklySchedule,omitempty" json:"weeklySchedule,omitempty"`
	Window         *TimeWindow            `bson:"window,omitempty" json:"window,omitempty"`
	WorkDays       []string               `bson:"workDays,omitempty" json:"workDays,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// JovemUpdate is the explicit field-by-field profile update for a jovem.
type JovemUpdate struct {
	Name           *string                `json:"name,omitempty"`
	Phone          *string                `json:"phone,omitempty"`
	Availability   *bool                  `json:"availability,omitempty"`
	Skills         SkillSet               `json:"skills,omitempty"`
	Location       *Location              `json:"location,omitempty"`
	WeeklySchedule map[string]DaySchedule `json:"weeklySchedule,omitempty"`
	Window         *TimeWindow            `json:"window,omitempty"`
	WorkDays       []string               `json:"workDays,omitempty"`
}
