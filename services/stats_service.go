package services

import (
	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
)

type StatsService struct {
	Orders       *repository.OrderRepository
	Reservations *repository.ReservationRepository
}

func NewStatsService(or *repository.OrderRepository, rr *repository.ReservationRepository) *StatsService {
	return &StatsService{Orders: or, Reservations: rr}
}

type OverviewOut struct {
	TotalOrders        int64 `json:"totalOrders"`
	CompletedOrders    int64 `json:"completedOrders"`
	TotalRevenue       int64 `json:"totalRevenue"`
	TotalReservations  int64 `json:"totalReservations"`
	ActiveReservations int64 `json:"activeReservations"`
}

// Overview นับจากฐานข้อมูลตรง ๆ ไม่มี cache
func (s *StatsService) Overview() (*OverviewOut, error) {
	out := &OverviewOut{}
	var err error

	if out.TotalOrders, err = s.Orders.Count(); err != nil {
		return nil, err
	}
	if out.CompletedOrders, err = s.Orders.CountByStatus(entity.OrderCompleted); err != nil {
		return nil, err
	}
	if out.TotalRevenue, err = s.Orders.CompletedRevenue(); err != nil {
		return nil, err
	}
	if out.TotalReservations, err = s.Reservations.Count(); err != nil {
		return nil, err
	}
	if out.ActiveReservations, err = s.Reservations.CountActive(); err != nil {
		return nil, err
	}
	return out, nil
}
