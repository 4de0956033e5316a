package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingAssigned   BookingStatus = "assigned"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingRejected   BookingStatus = "rejected"
)

// allowedTransitions encodes the lifecycle state machine. Same-state entries
// cover transitions that rewrite the booking without advancing it (PIN
// regeneration, reschedule of an already-assigned booking).
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingAssigned, BookingConfirmed, BookingCancelled, BookingRejected},
	BookingAssigned:   {BookingAssigned, BookingConfirmed, BookingCancelled},
	BookingConfirmed:  {BookingConfirmed, BookingAssigned, BookingInProgress, BookingCancelled},
	BookingInProgress: {BookingCompleted},
	BookingCompleted:  {},
	BookingCancelled:  {},
	BookingRejected:   {},
}

// CanTransition reports whether moving from s to next is legal.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s BookingStatus) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

// RecommendedJovem is one entry of the bounded recommendation snapshot taken
// at booking creation. Fields are copied, not referenced, so later profile
// edits do not rewrite history.
type RecommendedJovem struct {
	ID                string  `bson:"id" json:"id"`
	Name              string  `bson:"name" json:"name"`
	Rating            float64 `bson:"rating" json:"rating"`
	CompletedServices int     `bson:"completedServices" json:"completedServices"`
	OngID             string  `bson:"ongId,omitempty" json:"ongId,omitempty"`
}

// Rejection records one worker declining a booking.
type Rejection struct {
	JovemID string    `bson:"jovemId" json:"jovemId"`
	Reason  string    `bson:"reason,omitempty" json:"reason,omitempty"`
	At      time.Time `bson:"at" json:"at"`
}

// ScheduleChange keeps the pre-reschedule date/time for audit.
type ScheduleChange struct {
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"time,omitempty" json:"time,omitempty"`
	ChangedAt time.Time `bson:"changedAt" json:"changedAt"`
}

// Booking is one scheduled instance of a client requesting a catalog service.
type Booking struct {
	ID              string `bson:"id" json:"id"`
	ServiceID       string `bson:"serviceId" json:"serviceId"`
	ServiceName     string `bson:"serviceName" json:"serviceName"`
	ServiceCategory string `bson:"serviceCategory" json:"serviceCategory"`
	ClientID        string `bson:"clientId" json:"clientId"`

	Date    string `bson:"date" json:"date"`                     // "2006-01-02"
	Time    string `bson:"time,omitempty" json:"time,omitempty"` // "15:04", optional
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`

	JovemID           string             `bson:"jovemId,omitempty" json:"jovemId,omitempty"`
	RecommendedJovens []RecommendedJovem `bson:"recommendedJovens" json:"recommendedJovens"`
	Status            BookingStatus      `bson:"status" json:"status"`

	AcceptedBy string     `bson:"acceptedBy,omitempty" json:"acceptedBy,omitempty"`
	AcceptedAt *time.Time `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`

	CheckInPin  string     `bson:"checkInPin,omitempty" json:"-"`
	PinIssuedAt *time.Time `bson:"pinIssuedAt,omitempty" json:"pinIssuedAt,omitempty"`
	CheckInAt   *time.Time `bson:"checkInAt,omitempty" json:"checkInAt,omitempty"`

	BasePrice  float64 `bson:"basePrice" json:"basePrice"`
	FinalPrice float64 `bson:"finalPrice,omitempty" json:"finalPrice,omitempty"`

	Rating      int        `bson:"rating,omitempty" json:"rating,omitempty"`
	Review      string     `bson:"review,omitempty" json:"review,omitempty"`
	Photos      []string   `bson:"photos,omitempty" json:"photos,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`

	CancelReason string     `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CancelledAt  *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`

	RescheduleCount   int              `bson:"rescheduleCount,omitempty" json:"rescheduleCount,omitempty"`
	PreviousSchedules []ScheduleChange `bson:"previousSchedules,omitempty" json:"previousSchedules,omitempty"`
	Rejections        []Rejection      `bson:"rejections,omitempty" json:"rejections,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Recommended reports whether jovemID appears in the recommendation snapshot.
func (b *Booking) Recommended(jovemID string) bool {
	for _, rj := range b.RecommendedJovens {
		if rj.ID == jovemID {
			return true
		}
	}
	return false
}

// BookingFilter narrows booking listings.
type BookingFilter struct {
	ClientID string
	JovemID  string
	Status   BookingStatus
}

// BookingRequest is the client-originated creation payload.
type BookingRequest struct {
	ServiceID string   `json:"serviceId"`
	ClientID  string   `json:"clientId"`
	Date      string   `json:"date"`
	Time      string   `json:"time,omitempty"`
	Address   string   `json:"address,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Photos    []string `json:"photos,omitempty"`
}

// CompletionRequest finalizes an in-progress booking with the client's review.
type CompletionRequest struct {
	BookingID string   `json:"bookingId"`
	ClientID  string   `json:"clientId"`
	Rating    int      `json:"rating"`
	Comment   string   `json:"comment,omitempty"`
	Photos    []string `json:"photos,omitempty"`
}
