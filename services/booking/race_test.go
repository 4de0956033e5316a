package booking

import (
	"context"
	"sync"
	"testing"

	"impulso/models"
)

// Two jovens racing to accept the same booking: exactly one transition may
// win; the loser must observe a conflict.
func TestConcurrentAcceptSingleWinner(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.5, 5)
	f.seedJovem(t, "j2", 4.5, 5)
	ctx := context.Background()
	b := f.createBooking(t, "10:00")

	jovens := []string{"j1", "j2"}
	errs := make([]error, len(jovens))
	var wg sync.WaitGroup
	for i, id := range jovens {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = f.svc.AcceptBooking(ctx, b.ID, id, models.RoleJovem)
		}(i, id)
	}
	wg.Wait()

	winners := 0
	var winner string
	for i, err := range errs {
		if err == nil {
			winners++
			winner = jovens[i]
		}
	}
	if winners != 1 {
		t.Fatalf("accept winners = %d, want exactly 1 (errors: %v)", winners, errs)
	}

	stored := f.stored(t, b.ID)
	if stored.Status != models.BookingConfirmed {
		t.Errorf("final status = %s, want confirmed", stored.Status)
	}
	if stored.JovemID != winner {
		t.Errorf("bound jovem = %s, winner was %s", stored.JovemID, winner)
	}
}

// An accept racing a client cancellation resolves to exactly one outcome.
func TestAcceptCancelRace(t *testing.T) {
	f := newFixture()
	f.seedJovem(t, "j1", 4.5, 5)
	ctx := context.Background()
	b := f.createBooking(t, "10:00")

	var wg sync.WaitGroup
	var acceptErr, cancelErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, acceptErr = f.svc.AcceptBooking(ctx, b.ID, "j1", models.RoleJovem)
	}()
	go func() {
		defer wg.Done()
		_, cancelErr = f.svc.CancelBooking(ctx, b.ID, testClientID, "desisti")
	}()
	wg.Wait()

	switch {
	case acceptErr == nil && cancelErr == nil:
		t.Fatal("both accept and cancel succeeded, want exactly one winner")
	case acceptErr != nil && cancelErr != nil:
		t.Fatalf("both accept and cancel failed: accept=%v cancel=%v", acceptErr, cancelErr)
	}

	stored := f.stored(t, b.ID)
	if acceptErr == nil && stored.Status != models.BookingConfirmed {
		t.Errorf("accept won but status = %s", stored.Status)
	}
	if cancelErr == nil && stored.Status != models.BookingCancelled {
		t.Errorf("cancel won but status = %s", stored.Status)
	}
}
