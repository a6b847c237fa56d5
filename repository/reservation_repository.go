package repository

import (
	"time"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"gorm.io/gorm"
)

type ReservationRepository struct{ DB *gorm.DB }

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Get(id uint) (*entity.TableReservation, error) {
	var res entity.TableReservation
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// HasConflict checks the half-open interval overlap test against every
// reservation on the table still claiming its window.
func (r *ReservationRepository) HasConflict(tableID uint, start, end time.Time) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.TableReservation{}).
		Where("table_id = ?", tableID).
		Where("status IN ?", entity.ActiveReservationStatuses).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	return count > 0, err
}

// ForTable คืน reservation ที่คาบเกี่ยวช่วงเวลาที่ขอ เรียงตามเวลาเริ่ม
func (r *ReservationRepository) ForTable(tableID uint, start, end time.Time) ([]entity.TableReservation, error) {
	var rows []entity.TableReservation
	err := r.DB.Where("table_id = ?", tableID).
		Where("start_time < ? AND end_time > ?", end, start).
		Order("start_time").
		Find(&rows).Error
	return rows, err
}

// BlockingForTables loads active-status reservations ending after `from` for
// the given tables; used to derive display status.
func (r *ReservationRepository) BlockingForTables(tableIDs []uint, from time.Time) ([]entity.TableReservation, error) {
	var rows []entity.TableReservation
	err := r.DB.Where("table_id IN ?", tableIDs).
		Where("status IN ?", entity.ActiveReservationStatuses).
		Where("end_time >= ?", from).
		Find(&rows).Error
	return rows, err
}

// BlockingForWindow loads active-status reservations overlapping [start,end).
func (r *ReservationRepository) BlockingForWindow(tableIDs []uint, start, end time.Time) ([]entity.TableReservation, error) {
	var rows []entity.TableReservation
	err := r.DB.Where("table_id IN ?", tableIDs).
		Where("status IN ?", entity.ActiveReservationStatuses).
		Where("start_time < ? AND end_time > ?", end, start).
		Find(&rows).Error
	return rows, err
}

func (r *ReservationRepository) ListForUser(userID uint) ([]entity.TableReservation, error) {
	var rows []entity.TableReservation
	err := r.DB.Where("user_id = ?", userID).Order("start_time DESC").Find(&rows).Error
	return rows, err
}

func (r *ReservationRepository) Create(res *entity.TableReservation) error {
	return r.DB.Create(res).Error
}

// AttachOrder links a reservation to its dine-in order and marks it active.
func (r *ReservationRepository) AttachOrder(tx *gorm.DB, reservationID, orderID uint) error {
	return tx.Model(&entity.TableReservation{}).Where("id = ?", reservationID).
		Updates(map[string]any{
			"order_id": orderID,
			"status":   entity.ReservationActive,
		}).Error
}

func (r *ReservationRepository) UpdateStatus(tx *gorm.DB, id uint, status entity.ReservationStatus, clearOrder bool) error {
	updates := map[string]any{"status": status}
	if clearOrder {
		updates["order_id"] = nil
	}
	return tx.Model(&entity.TableReservation{}).Where("id = ?", id).
		Updates(updates).Error
}

// ---- statistics ----

func (r *ReservationRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.TableReservation{}).Count(&n).Error
	return n, err
}

func (r *ReservationRepository) CountActive() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.TableReservation{}).
		Where("status IN ?", []entity.ReservationStatus{entity.ReservationConfirmed, entity.ReservationActive}).
		Count(&n).Error
	return n, err
}
