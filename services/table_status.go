package services

import (
	"time"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
)

// DeriveStatus computes the display status of a table from its blocking
// reservations. A reservation covering `now` makes the table occupied, a
// future one makes it reserved. Pure function; the result is never written
// back to the tables row.
func DeriveStatus(reservations []entity.TableReservation, now time.Time) entity.TableStatus {
	status := entity.TableAvailable
	for _, r := range reservations {
		if !r.Blocking() {
			continue
		}
		if !r.StartTime.After(now) && r.EndTime.After(now) {
			return entity.TableOccupied
		}
		if r.StartTime.After(now) {
			status = entity.TableReserved
		}
	}
	return status
}

// TableStatusService decorates table listings with derived status.
type TableStatusService struct {
	ResRepo *repository.ReservationRepository
}

func NewTableStatusService(rr *repository.ReservationRepository) *TableStatusService {
	return &TableStatusService{ResRepo: rr}
}

// Annotate recomputes every table's status, either for an explicit target
// window or for the realtime view when start/end are nil.
func (s *TableStatusService) Annotate(tables []entity.Table, targetStart, targetEnd *time.Time, now time.Time) ([]entity.Table, error) {
	if len(tables) == 0 {
		return tables, nil
	}

	ids := make([]uint, 0, len(tables))
	for _, t := range tables {
		ids = append(ids, t.ID)
	}

	if targetStart != nil && targetEnd != nil {
		rows, err := s.ResRepo.BlockingForWindow(ids, *targetStart, *targetEnd)
		if err != nil {
			return nil, err
		}
		booked := make(map[uint]bool, len(rows))
		for _, r := range rows {
			booked[r.TableID] = true
		}
		// ถ้าช่วงที่ขอคือ "ตอนนี้" โต๊ะที่มีจองถือว่า occupied ไปเลย
		windowIsNow := !targetStart.After(now) && targetEnd.After(now)
		for i := range tables {
			switch {
			case !booked[tables[i].ID]:
				tables[i].Status = entity.TableAvailable
			case windowIsNow:
				tables[i].Status = entity.TableOccupied
			default:
				tables[i].Status = entity.TableReserved
			}
		}
		return tables, nil
	}

	rows, err := s.ResRepo.BlockingForTables(ids, now)
	if err != nil {
		return nil, err
	}
	byTable := make(map[uint][]entity.TableReservation)
	for _, r := range rows {
		byTable[r.TableID] = append(byTable[r.TableID], r)
	}
	for i := range tables {
		tables[i].Status = DeriveStatus(byTable[tables[i].ID], now)
	}
	return tables, nil
}
