package services

import (
	"testing"
	"time"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/apperr"
)

func TestValidateWindow(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"endBeforeStart", base, base.Add(-time.Hour), true},
		{"endEqualsStart", base, base, true},
		{"tooShort", base, base.Add(15 * time.Minute), true},
		{"exactly30Minutes", base, base.Add(30 * time.Minute), false},
		{"exactly4Hours", base, base.Add(4 * time.Hour), false},
		{"tooLong", base, base.Add(4*time.Hour + time.Minute), true},
		{"normalDinner", base, base.Add(90 * time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWindow(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateWindow() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperr.IsKind(err, apperr.BadRequest) {
				t.Errorf("validateWindow() kind = %v, want BadRequest", apperr.KindOf(err))
			}
		})
	}
}

func TestCreateReservationConflict(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "a@example.com")
	other := f.user(t, "b@example.com")
	tb := f.table(t, "T1")

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	first, err := f.ResSvc.Create(u.ID, &CreateReservationIn{
		TableID: tb.ID, StartTime: start, EndTime: end,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if first.Status != entity.ReservationConfirmed {
		t.Errorf("new reservation status = %v, want confirmed", first.Status)
	}

	// คาบเกี่ยวช่วงเดิม → conflict
	_, err = f.ResSvc.Create(other.ID, &CreateReservationIn{
		TableID: tb.ID, StartTime: start.Add(30 * time.Minute), EndTime: end.Add(30 * time.Minute),
	})
	if !apperr.IsKind(err, apperr.Conflict) {
		t.Errorf("overlapping Create() kind = %v, want Conflict", apperr.KindOf(err))
	}

	// ต่อท้ายพอดี ([start,end) half-open) → ผ่าน
	if _, err := f.ResSvc.Create(other.ID, &CreateReservationIn{
		TableID: tb.ID, StartTime: end, EndTime: end.Add(time.Hour),
	}); err != nil {
		t.Errorf("back-to-back Create() error = %v, want nil", err)
	}

	// โต๊ะอื่นไม่เกี่ยว
	tb2 := f.table(t, "T2")
	if _, err := f.ResSvc.Create(other.ID, &CreateReservationIn{
		TableID: tb2.ID, StartTime: start, EndTime: end,
	}); err != nil {
		t.Errorf("other table Create() error = %v, want nil", err)
	}

	// ยกเลิกแล้วจองทับได้
	if _, err := f.ResSvc.Cancel(u.ID, first.ID); err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
	if _, err := f.ResSvc.Create(other.ID, &CreateReservationIn{
		TableID: tb.ID, StartTime: start, EndTime: end,
	}); err != nil {
		t.Errorf("Create() after cancel error = %v, want nil", err)
	}
}

func TestCreateReservationTableMissing(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "a@example.com")

	start := time.Now().UTC().Add(time.Hour)
	_, err := f.ResSvc.Create(u.ID, &CreateReservationIn{
		TableID: 999, StartTime: start, EndTime: start.Add(time.Hour),
	})
	if !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("Create() kind = %v, want NotFound", apperr.KindOf(err))
	}
}

func TestCancelReservationGuards(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	stranger := f.user(t, "stranger@example.com")
	tb := f.table(t, "T1")

	start := time.Now().UTC().Add(time.Hour)
	res := f.reservation(t, tb.ID, owner.ID, start, start.Add(time.Hour), entity.ReservationConfirmed)

	if _, err := f.ResSvc.Cancel(stranger.ID, res.ID); !apperr.IsKind(err, apperr.Forbidden) {
		t.Errorf("stranger Cancel() kind = %v, want Forbidden", apperr.KindOf(err))
	}

	active := f.reservation(t, tb.ID, owner.ID, start.Add(2*time.Hour), start.Add(3*time.Hour), entity.ReservationActive)
	if _, err := f.ResSvc.Cancel(owner.ID, active.ID); !apperr.IsKind(err, apperr.BadRequest) {
		t.Errorf("active Cancel() kind = %v, want BadRequest", apperr.KindOf(err))
	}

	got, err := f.ResSvc.Cancel(owner.ID, res.ID)
	if err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
	if got.Status != entity.ReservationCancelled {
		t.Errorf("status after cancel = %v, want cancelled", got.Status)
	}
	if got.OrderID != nil {
		t.Errorf("order link after cancel = %v, want nil", *got.OrderID)
	}
}
