package services

import (
	"testing"
	"time"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		rows []entity.TableReservation
		want entity.TableStatus
	}{
		{
			name: "noReservations",
			want: entity.TableAvailable,
		},
		{
			name: "currentWindowOccupied",
			rows: []entity.TableReservation{
				{StartTime: at(10, 0), EndTime: at(11, 0), Status: entity.ReservationConfirmed},
			},
			want: entity.TableOccupied,
		},
		{
			name: "futureWindowReserved",
			rows: []entity.TableReservation{
				{StartTime: at(12, 0), EndTime: at(13, 0), Status: entity.ReservationPending},
			},
			want: entity.TableReserved,
		},
		{
			name: "cancelledIgnored",
			rows: []entity.TableReservation{
				{StartTime: at(10, 0), EndTime: at(11, 0), Status: entity.ReservationCancelled},
				{StartTime: at(12, 0), EndTime: at(13, 0), Status: entity.ReservationCompleted},
			},
			want: entity.TableAvailable,
		},
		{
			name: "currentWinsOverFuture",
			rows: []entity.TableReservation{
				{StartTime: at(12, 0), EndTime: at(13, 0), Status: entity.ReservationConfirmed},
				{StartTime: at(10, 0), EndTime: at(11, 0), Status: entity.ReservationActive},
			},
			want: entity.TableOccupied,
		},
		{
			name: "pastWindowAvailable",
			rows: []entity.TableReservation{
				{StartTime: at(8, 0), EndTime: at(9, 0), Status: entity.ReservationConfirmed},
			},
			want: entity.TableAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.rows, now); got != tt.want {
				t.Errorf("DeriveStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnnotateWindow(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "guest@example.com")
	tb := f.table(t, "T1")

	now := time.Now().UTC()
	start := now.Add(-30 * time.Minute)
	end := now.Add(30 * time.Minute)
	f.reservation(t, tb.ID, u.ID, start, end, entity.ReservationConfirmed)

	// ช่วงที่ขอครอบ "ตอนนี้" → occupied
	tables, err := f.StatSvc.Annotate([]entity.Table{*tb}, &start, &end, now)
	if err != nil {
		t.Fatalf("Annotate() error: %v", err)
	}
	if tables[0].Status != entity.TableOccupied {
		t.Errorf("current window status = %v, want occupied", tables[0].Status)
	}

	// ช่วงอนาคตที่คาบเกี่ยวการจองเดิม → reserved
	futureRes := f.reservation(t, tb.ID, u.ID, now.Add(2*time.Hour), now.Add(3*time.Hour), entity.ReservationConfirmed)
	_ = futureRes
	fs := now.Add(2 * time.Hour)
	fe := now.Add(3 * time.Hour)
	tables, err = f.StatSvc.Annotate([]entity.Table{*tb}, &fs, &fe, now)
	if err != nil {
		t.Fatalf("Annotate() error: %v", err)
	}
	if tables[0].Status != entity.TableReserved {
		t.Errorf("future window status = %v, want reserved", tables[0].Status)
	}

	// realtime view: จองตอนนี้อยู่ → occupied
	tables, err = f.StatSvc.Annotate([]entity.Table{*tb}, nil, nil, now)
	if err != nil {
		t.Fatalf("Annotate() error: %v", err)
	}
	if tables[0].Status != entity.TableOccupied {
		t.Errorf("realtime status = %v, want occupied", tables[0].Status)
	}
}
