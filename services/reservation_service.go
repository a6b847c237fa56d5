package services

import (
	"errors"
	"time"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/apperr"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
	"gorm.io/gorm"
)

const (
	minReservation = 30 * time.Minute
	maxReservation = 4 * time.Hour
)

type ReservationService struct {
	DB        *gorm.DB
	Repo      *repository.ReservationRepository
	TableRepo *repository.TableRepository
}

func NewReservationService(db *gorm.DB, rr *repository.ReservationRepository, tr *repository.TableRepository) *ReservationService {
	return &ReservationService{DB: db, Repo: rr, TableRepo: tr}
}

type CreateReservationIn struct {
	TableID   uint      `json:"tableId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	PartySize int       `json:"partySize"`
	Notes     string    `json:"notes"`
}

func validateWindow(start, end time.Time) error {
	if !end.After(start) {
		return apperr.New(apperr.BadRequest, "end time must be after start time")
	}
	d := end.Sub(start)
	if d < minReservation {
		return apperr.New(apperr.BadRequest, "reservation must be at least 30 minutes")
	}
	if d > maxReservation {
		return apperr.New(apperr.BadRequest, "reservation cannot exceed 4 hours")
	}
	return nil
}

func (s *ReservationService) Create(userID uint, in *CreateReservationIn) (*entity.TableReservation, error) {
	t, err := s.TableRepo.Get(in.TableID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "table not found")
	}
	if err != nil {
		return nil, err
	}
	if !t.IsActive {
		return nil, apperr.New(apperr.BadRequest, "table is not in service")
	}

	if err := validateWindow(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	// conflict check and insert are not atomic; concurrent bookings can race
	conflict, err := s.Repo.HasConflict(in.TableID, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperr.New(apperr.Conflict, "time slot already reserved")
	}

	partySize := in.PartySize
	if partySize < 1 {
		partySize = 1
	}
	res := &entity.TableReservation{
		TableID:   in.TableID,
		UserID:    userID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		PartySize: partySize,
		Notes:     in.Notes,
		Status:    entity.ReservationConfirmed,
	}
	if err := s.Repo.Create(res); err != nil {
		return nil, err
	}
	return res, nil
}

// ForTableDay คืน reservation ของโต๊ะในวันนั้น เอาไปโชว์ตารางว่าง
func (s *ReservationService) ForTableDay(tableID uint, day time.Time) ([]entity.TableReservation, error) {
	if _, err := s.TableRepo.Get(tableID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "table not found")
	} else if err != nil {
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	return s.Repo.ForTable(tableID, dayStart, dayEnd)
}

func (s *ReservationService) ListMine(userID uint) ([]entity.TableReservation, error) {
	return s.Repo.ListForUser(userID)
}

// Cancel ยกเลิกได้เฉพาะเจ้าของ และต้องยังไม่ active/เสร็จสิ้น
func (s *ReservationService) Cancel(userID, reservationID uint) (*entity.TableReservation, error) {
	res, err := s.Repo.Get(reservationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "reservation not found")
	}
	if err != nil {
		return nil, err
	}
	if res.UserID != userID {
		return nil, apperr.New(apperr.Forbidden, "not your reservation")
	}
	if res.Status == entity.ReservationActive || res.Status == entity.ReservationCompleted {
		return nil, apperr.New(apperr.BadRequest, "cannot cancel an active or completed reservation")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, res.ID, entity.ReservationCancelled, true)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(res.ID)
}
