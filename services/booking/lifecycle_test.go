package booking

import (
	"context"
	"testing"

	"impulso/apperrors"
	bookingRepo "impulso/database/repository/booking"
	jovemRepo "impulso/database/repository/jovem"
	memoryRepo "impulso/database/repository/memory"
	"impulso/models"
	"impulso/services/availability"
	"impulso/services/pricing"
	"impulso/services/review"
)

const (
	testDate     = "2026-03-02" // a monday
	testAltDate  = "2026-03-03" // the following tuesday
	testClientID = "client-1"
	testSvcID    = "svc-gardening"
)

type fixture struct {
	svc      *DefaultService
	bookings bookingRepo.BookingRepository
	jovens   jovemRepo.JovemRepository
	pricing  pricing.Service
}

func newFixture() *fixture {
	bookings := memoryRepo.NewBookingRepo()
	jovens := memoryRepo.NewJovemRepo()
	users := memoryRepo.NewUserRepo()
	catalog := memoryRepo.NewServiceRepo()

	evaluator := &availability.Evaluator{Bookings: bookings}
	priceSvc := &pricing.DefaultService{Repo: memoryRepo.NewPricingRepo()}

	svc := &DefaultService{
		Bookings:     bookings,
		Jovens:       jovens,
		Users:        users,
		Catalog:      catalog,
		Pricing:      priceSvc,
		Reviews:      &review.DefaultService{Reviews: memoryRepo.NewReviewRepo(), Jovens: jovens},
		Availability: evaluator,
		Matcher:      &Matcher{Jovens: jovens, Availability: evaluator},
	}

	ctx := context.Background()
	users.Create(ctx, models.User{
		ID:       testClientID,
		Name:     "Maria",
		Email:    "maria@example.com",
		Type:     models.RoleCliente,
		Location: models.Location{State: "SP", City: "Sao Paulo"},
	})
	catalog.Create(ctx, models.Service{
		ID:            testSvcID,
		Name:          "Jardinagem",
		Category:      "jardinagem",
		BasePrice:     100,
		DurationHours: 1,
		Status:        models.ServiceAvailable,
	})

	return &fixture{svc: svc, bookings: bookings, jovens: jovens, pricing: priceSvc}
}

// seedJovem registers an available jovem covering the test service's category.
func (f *fixture) seedJovem(t *testing.T, id string, rating float64, completed int) {
	t.Helper()
	_, err := f.jovens.Create(context.Background(), models.Jovem{
		ID:           id,
		Name:         "Jovem " + id,
		Availability: true,
		Skills:       models.SkillSet{{Kind: models.SkillCategory, Value: "jardinagem"}},
		Location:     models.Location{State: "SP", City: "Sao Paulo"},
		Stats:        models.JovemStats{Rating: rating, CompletedServices: completed},
	})
	if err != nil {
		t.Fatalf("seed jovem %s: %v", id, err)
	}
}

// createBooking creates a booking through the full service path.
func (f *fixture) createBooking(t *testing.T, timeStr string) *models.Booking {
	t.Helper()
	b, err := f.svc.CreateBooking(context.Background(), models.BookingRequest{
		ServiceID: testSvcID,
		ClientID:  testClientID,
		Date:      testDate,
		Time:      timeStr,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	return b
}

func (f *fixture) stored(t *testing.T, id string) *models.Booking {
	t.Helper()
	b, err := f.bookings.GetByID(context.Background(), id)
	if err != nil || b == nil {
		t.Fatalf("booking %s not stored: %v", id, err)
	}
	return b
}

func wantKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", kind)
	}
	if !apperrors.IsKind(err, kind) {
		t.Fatalf("expected %v error, got %v", kind, err)
	}
}

func TestAcceptBooking(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.5, 3)
	b := f.createBooking(t, "10:00")

	got, err := f.svc.AcceptBooking(context.Background(), b.ID, "j1", models.RoleJovem)
	if err != nil {
		t.Fatalf("AcceptBooking: %v", err)
	}
	if got.Status != models.BookingConfirmed {
		t.Errorf("status = %s, want confirmed", got.Status)
	}
	if got.JovemID != "j1" {
		t.Errorf("jovemId = %s, want j1", got.JovemID)
	}
	if got.AcceptedBy != models.RoleJovem || got.AcceptedAt == nil {
		t.Errorf("accept audit fields not set: acceptedBy=%q acceptedAt=%v", got.AcceptedBy, got.AcceptedAt)
	}

	stored := f.stored(t, b.ID)
	if !validPinFormat(stored.CheckInPin) {
		t.Errorf("stored PIN %q is not 4 digits", stored.CheckInPin)
	}
	if stored.PinIssuedAt == nil {
		t.Error("pinIssuedAt not set")
	}
}

func TestAcceptByRecommendedJovem(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.8, 9)
	f.seedJovem(t, "j2", 3.0, 0)
	b := f.createBooking(t, "10:00")
	if b.JovemID != "j1" {
		t.Fatalf("auto-assigned %s, want j1", b.JovemID)
	}

	// j2 is only recommended, but may still take the booking.
	got, err := f.svc.AcceptBooking(context.Background(), b.ID, "j2", models.RoleJovem)
	if err != nil {
		t.Fatalf("AcceptBooking by recommended jovem: %v", err)
	}
	if got.JovemID != "j2" {
		t.Errorf("jovemId = %s, want j2 after recommended accept", got.JovemID)
	}
	if got.Status != models.BookingConfirmed {
		t.Errorf("status = %s, want confirmed", got.Status)
	}
}

func TestAcceptAndRejectRequireJovemID(t *testing.T) {
	f := newFixture()
	// No jovens seeded: the booking stays pending with an empty jovemId,
	// which an empty actor id must not be allowed to match.
	b := f.createBooking(t, "10:00")
	ctx := context.Background()

	_, err := f.svc.AcceptBooking(ctx, b.ID, "", models.RoleJovem)
	wantKind(t, err, apperrors.KindValidation)

	_, err = f.svc.RejectBooking(ctx, b.ID, "", "nope")
	wantKind(t, err, apperrors.KindValidation)

	stored := f.stored(t, b.ID)
	if stored.Status != models.BookingPending {
		t.Errorf("status = %s, want pending (unchanged)", stored.Status)
	}
	if stored.JovemID != "" || stored.CheckInPin != "" {
		t.Errorf("booking mutated: jovemId=%q pin=%q, want both empty", stored.JovemID, stored.CheckInPin)
	}
}

func TestAcceptUnrelatedJovem(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")

	_, err := f.svc.AcceptBooking(context.Background(), b.ID, "stranger", models.RoleJovem)
	wantKind(t, err, apperrors.KindAuthorization)
}

func TestAcceptAlreadyConfirmed(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")

	if _, err := f.svc.AcceptBooking(context.Background(), b.ID, "j1", models.RoleJovem); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	_, err := f.svc.AcceptBooking(context.Background(), b.ID, "j1", models.RoleJovem)
	wantKind(t, err, apperrors.KindConflict)
}

func TestRejectByAssignedJovemCancels(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")

	got, err := f.svc.RejectBooking(context.Background(), b.ID, "j1", "sem transporte")
	if err != nil {
		t.Fatalf("RejectBooking: %v", err)
	}
	if got.Status != models.BookingCancelled {
		t.Errorf("status = %s, want cancelled", got.Status)
	}
	if got.CancelReason != "sem transporte" || got.CancelledAt == nil {
		t.Errorf("cancel audit fields not set: reason=%q at=%v", got.CancelReason, got.CancelledAt)
	}
	if len(got.Rejections) != 1 || got.Rejections[0].JovemID != "j1" {
		t.Errorf("rejections = %+v, want one entry for j1", got.Rejections)
	}
}

func TestRejectByRecommendedKeepsBookingOpen(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.8, 9)
	f.seedJovem(t, "j2", 3.0, 0)
	b := f.createBooking(t, "10:00")

	got, err := f.svc.RejectBooking(context.Background(), b.ID, "j2", "agenda cheia")
	if err != nil {
		t.Fatalf("RejectBooking: %v", err)
	}
	if got.Status != models.BookingAssigned {
		t.Errorf("status = %s, want assigned (unchanged)", got.Status)
	}
	if got.Recommended("j2") {
		t.Error("j2 still present in recommendation snapshot after declining")
	}
	if !got.Recommended("j1") {
		t.Error("j1 dropped from snapshot, want kept")
	}
}

func TestRejectLastRecommendedMarksRejected(t *testing.T) {
	f := newFixture()
	// Pending booking whose snapshot holds a single candidate.
	id, err := f.bookings.Create(context.Background(), models.Booking{
		ServiceID: testSvcID,
		ClientID:  testClientID,
		Date:      testDate,
		Status:    models.BookingPending,
		RecommendedJovens: []models.RecommendedJovem{
			{ID: "j9", Name: "Jovem j9"},
		},
	})
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	got, err := f.svc.RejectBooking(context.Background(), id, "j9", "indisponivel")
	if err != nil {
		t.Fatalf("RejectBooking: %v", err)
	}
	if got.Status != models.BookingRejected {
		t.Errorf("status = %s, want rejected once the snapshot empties", got.Status)
	}
	if len(got.RecommendedJovens) != 0 {
		t.Errorf("snapshot = %+v, want empty", got.RecommendedJovens)
	}
}

func TestRejectUnrelatedJovem(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")

	_, err := f.svc.RejectBooking(context.Background(), b.ID, "stranger", "")
	wantKind(t, err, apperrors.KindAuthorization)
}

func TestCheckInFlow(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")
	ctx := context.Background()

	if _, err := f.svc.AcceptBooking(ctx, b.ID, "j1", models.RoleJovem); err != nil {
		t.Fatalf("accept: %v", err)
	}
	pin := f.stored(t, b.ID).CheckInPin

	wrong := "0000"
	if wrong == pin {
		wrong = "0001"
	}
	_, err := f.svc.ValidateCheckInPin(ctx, b.ID, testClientID, wrong)
	wantKind(t, err, apperrors.KindValidation)
	if got := f.stored(t, b.ID); got.Status != models.BookingConfirmed {
		t.Fatalf("status after wrong PIN = %s, want confirmed (unchanged)", got.Status)
	}

	got, err := f.svc.ValidateCheckInPin(ctx, b.ID, testClientID, pin)
	if err != nil {
		t.Fatalf("ValidateCheckInPin: %v", err)
	}
	if got.Status != models.BookingInProgress || got.CheckInAt == nil {
		t.Errorf("status=%s checkInAt=%v, want in_progress with timestamp", got.Status, got.CheckInAt)
	}

	// The start transition fires exactly once.
	_, err = f.svc.ValidateCheckInPin(ctx, b.ID, testClientID, pin)
	wantKind(t, err, apperrors.KindConflict)
}

func TestValidateCheckInPinFormat(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")
	ctx := context.Background()
	if _, err := f.svc.AcceptBooking(ctx, b.ID, "j1", models.RoleJovem); err != nil {
		t.Fatalf("accept: %v", err)
	}

	for _, pin := range []string{"", "123", "12345", "12a4"} {
		_, err := f.svc.ValidateCheckInPin(ctx, b.ID, testClientID, pin)
		wantKind(t, err, apperrors.KindValidation)
	}
}

func TestValidateCheckInPinWrongActor(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")
	ctx := context.Background()
	if _, err := f.svc.AcceptBooking(ctx, b.ID, "j1", models.RoleJovem); err != nil {
		t.Fatalf("accept: %v", err)
	}

	_, err := f.svc.ValidateCheckInPin(ctx, b.ID, "someone-else", "1234")
	wantKind(t, err, apperrors.KindAuthorization)
}

func TestGenerateCheckInPin(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")
	ctx := context.Background()

	// Only available once confirmed.
	_, err := f.svc.GenerateCheckInPin(ctx, b.ID, "j1")
	wantKind(t, err, apperrors.KindConflict)

	if _, err := f.svc.AcceptBooking(ctx, b.ID, "j1", models.RoleJovem); err != nil {
		t.Fatalf("accept: %v", err)
	}

	_, err = f.svc.GenerateCheckInPin(ctx, b.ID, "stranger")
	wantKind(t, err, apperrors.KindAuthorization)

	got, err := f.svc.GenerateCheckInPin(ctx, b.ID, "j1")
	if err != nil {
		t.Fatalf("GenerateCheckInPin: %v", err)
	}
	if !validPinFormat(got.CheckInPin) {
		t.Errorf("regenerated PIN %q is not 4 digits", got.CheckInPin)
	}
	if got.Status != models.BookingConfirmed {
		t.Errorf("status = %s, want confirmed after PIN regeneration", got.Status)
	}
}

func TestCompleteBooking(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 0, 0)
	ctx := context.Background()
	if err := f.pricing.SetMargin(ctx, 15); err != nil {
		t.Fatalf("SetMargin: %v", err)
	}

	b := f.createBooking(t, "10:00")
	if _, err := f.svc.AcceptBooking(ctx, b.ID, "j1", models.RoleJovem); err != nil {
		t.Fatalf("accept: %v", err)
	}
	pin := f.stored(t, b.ID).CheckInPin
	if _, err := f.svc.ValidateCheckInPin(ctx, b.ID, testClientID, pin); err != nil {
		t.Fatalf("check-in: %v", err)
	}

	got, err := f.svc.CompleteBooking(ctx, models.CompletionRequest{
		BookingID: b.ID,
		ClientID:  testClientID,
		Rating:    4,
		Comment:   "otimo trabalho",
	})
	if err != nil {
		t.Fatalf("CompleteBooking: %v", err)
	}
	if got.Status != models.BookingCompleted || got.CompletedAt == nil {
		t.Errorf("status=%s completedAt=%v, want completed with timestamp", got.Status, got.CompletedAt)
	}
	if got.FinalPrice != 115.00 {
		t.Errorf("finalPrice = %v, want 115.00 (base 100, margin 15%%)", got.FinalPrice)
	}
	if got.Rating != 4 || got.Review != "otimo trabalho" {
		t.Errorf("review fields = %d/%q, want 4/\"otimo trabalho\"", got.Rating, got.Review)
	}

	jovem, err := f.jovens.GetByID(ctx, "j1")
	if err != nil || jovem == nil {
		t.Fatalf("load jovem: %v", err)
	}
	stats := jovem.Stats
	if stats.CompletedServices != 1 || stats.Rating != 4.0 || stats.Points != 40 || stats.TotalEarnings != 115.00 {
		t.Errorf("stats rollup = %+v, want {1 4 40 115}", stats)
	}

	// Later margin edits must not rewrite the captured price.
	if err := f.pricing.SetMargin(ctx, 50); err != nil {
		t.Fatalf("SetMargin: %v", err)
	}
	if stored := f.stored(t, b.ID); stored.FinalPrice != 115.00 {
		t.Errorf("finalPrice after margin change = %v, want 115.00", stored.FinalPrice)
	}
}

func TestCompleteRequiresInProgress(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")

	_, err := f.svc.CompleteBooking(context.Background(), models.CompletionRequest{
		BookingID: b.ID, ClientID: testClientID, Rating: 5,
	})
	wantKind(t, err, apperrors.KindConflict)
}

func TestCompleteRatingRange(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")

	for _, rating := range []int{0, 6, -1} {
		_, err := f.svc.CompleteBooking(context.Background(), models.CompletionRequest{
			BookingID: b.ID, ClientID: testClientID, Rating: rating,
		})
		wantKind(t, err, apperrors.KindValidation)
	}
}

func TestCancelBooking(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")

	got, err := f.svc.CancelBooking(context.Background(), b.ID, testClientID, "mudanca de planos")
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if got.Status != models.BookingCancelled || got.CancelledAt == nil {
		t.Errorf("status=%s cancelledAt=%v, want cancelled with timestamp", got.Status, got.CancelledAt)
	}
	if got.CancelReason != "mudanca de planos" {
		t.Errorf("reason = %q, want recorded", got.CancelReason)
	}
}

func TestCancelWrongActor(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")

	_, err := f.svc.CancelBooking(context.Background(), b.ID, "someone-else", "")
	wantKind(t, err, apperrors.KindAuthorization)
}

func TestNoCancelOrRescheduleOnceStarted(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	ctx := context.Background()
	b := f.createBooking(t, "10:00")
	if _, err := f.svc.AcceptBooking(ctx, b.ID, "j1", models.RoleJovem); err != nil {
		t.Fatalf("accept: %v", err)
	}
	pin := f.stored(t, b.ID).CheckInPin
	if _, err := f.svc.ValidateCheckInPin(ctx, b.ID, testClientID, pin); err != nil {
		t.Fatalf("check-in: %v", err)
	}

	_, err := f.svc.CancelBooking(ctx, b.ID, testClientID, "")
	wantKind(t, err, apperrors.KindConflict)
	_, err = f.svc.RescheduleBooking(ctx, b.ID, testClientID, testAltDate, "10:00")
	wantKind(t, err, apperrors.KindConflict)

	if _, err := f.svc.CompleteBooking(ctx, models.CompletionRequest{
		BookingID: b.ID, ClientID: testClientID, Rating: 5,
	}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	_, err = f.svc.CancelBooking(ctx, b.ID, testClientID, "")
	wantKind(t, err, apperrors.KindConflict)
	_, err = f.svc.RescheduleBooking(ctx, b.ID, testClientID, testAltDate, "10:00")
	wantKind(t, err, apperrors.KindConflict)
}

func TestRescheduleBooking(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	ctx := context.Background()
	b := f.createBooking(t, "10:00")
	if _, err := f.svc.AcceptBooking(ctx, b.ID, "j1", models.RoleJovem); err != nil {
		t.Fatalf("accept: %v", err)
	}

	got, err := f.svc.RescheduleBooking(ctx, b.ID, testClientID, testAltDate, "14:00")
	if err != nil {
		t.Fatalf("RescheduleBooking: %v", err)
	}
	if got.Date != testAltDate || got.Time != "14:00" {
		t.Errorf("schedule = %s %s, want %s 14:00", got.Date, got.Time, testAltDate)
	}
	if got.Status != models.BookingAssigned {
		t.Errorf("status = %s, want assigned (must be re-confirmed)", got.Status)
	}
	if got.CheckInPin != "" || got.PinIssuedAt != nil {
		t.Error("check-in PIN survived reschedule, want cleared")
	}
	if got.RescheduleCount != 1 {
		t.Errorf("rescheduleCount = %d, want 1", got.RescheduleCount)
	}
	if len(got.PreviousSchedules) != 1 || got.PreviousSchedules[0].Date != testDate || got.PreviousSchedules[0].Time != "10:00" {
		t.Errorf("previousSchedules = %+v, want the original slot", got.PreviousSchedules)
	}
}

func TestRescheduleRequiresDate(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	b := f.createBooking(t, "10:00")

	_, err := f.svc.RescheduleBooking(context.Background(), b.ID, testClientID, "", "14:00")
	wantKind(t, err, apperrors.KindValidation)
}

func TestRescheduleChecksJovemAvailability(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.0, 1)
	ctx := context.Background()

	first := f.createBooking(t, "09:00")
	if _, err := f.svc.AcceptBooking(ctx, first.ID, "j1", models.RoleJovem); err != nil {
		t.Fatalf("accept first: %v", err)
	}

	second := f.createBooking(t, "14:00")
	if second.JovemID != "j1" {
		t.Fatalf("second booking assigned %s, want j1", second.JovemID)
	}

	// 10:00 is within the two-hour spacing of the 09:00 booking.
	_, err := f.svc.RescheduleBooking(ctx, second.ID, testClientID, testDate, "10:00")
	wantKind(t, err, apperrors.KindConflict)

	// 12:00 clears the buffer.
	got, err := f.svc.RescheduleBooking(ctx, second.ID, testClientID, testDate, "12:00")
	if err != nil {
		t.Fatalf("RescheduleBooking to open slot: %v", err)
	}
	if got.Time != "12:00" {
		t.Errorf("time = %s, want 12:00", got.Time)
	}
}
