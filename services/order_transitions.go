package services

import (
	"fmt"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/apperr"
	"gorm.io/gorm"
)

// statusEffects describes everything one order status implies: which
// statuses may precede it, how the table and reservation must follow, and
// the payment/stock side effects.
type statusEffects struct {
	prev        []entity.OrderStatus // empty = not reachable via UpdateStatus
	tableStatus entity.TableStatus
	resStatus   entity.ReservationStatus
	markPaid    bool
	restock     bool
}

var orderTransitions = map[entity.OrderStatus]statusEffects{
	entity.OrderPending: {
		tableStatus: entity.TableReserved,
		resStatus:   entity.ReservationConfirmed,
	},
	entity.OrderConfirmed: {
		prev:        []entity.OrderStatus{entity.OrderPending},
		tableStatus: entity.TableReserved,
		resStatus:   entity.ReservationConfirmed,
	},
	entity.OrderPreparing: {
		prev:        []entity.OrderStatus{entity.OrderConfirmed},
		tableStatus: entity.TableOccupied,
		resStatus:   entity.ReservationActive,
	},
	entity.OrderReady: {
		prev:        []entity.OrderStatus{entity.OrderPreparing},
		tableStatus: entity.TableOccupied,
		resStatus:   entity.ReservationActive,
	},
	entity.OrderCompleted: {
		prev:        []entity.OrderStatus{entity.OrderReady},
		tableStatus: entity.TableAvailable,
		resStatus:   entity.ReservationCompleted,
		markPaid:    true,
	},
	entity.OrderCancelled: {
		prev:        []entity.OrderStatus{entity.OrderPending, entity.OrderConfirmed, entity.OrderPreparing},
		tableStatus: entity.TableAvailable,
		resStatus:   entity.ReservationCancelled,
		restock:     true,
	},
}

func transitionAllowed(from, to entity.OrderStatus) bool {
	eff, ok := orderTransitions[to]
	if !ok {
		return false
	}
	for _, p := range eff.prev {
		if p == from {
			return true
		}
	}
	return false
}

// applyTransition is the single executor for every status change: it
// persists the order status and runs the effects the map prescribes, all
// inside the caller's transaction.
func (s *OrderService) applyTransition(tx *gorm.DB, order *entity.Order, target entity.OrderStatus) error {
	eff, ok := orderTransitions[target]
	if !ok {
		return apperr.New(apperr.BadRequest, fmt.Sprintf("unknown order status: %s", target))
	}
	if !transitionAllowed(order.Status, target) {
		return apperr.New(apperr.BadRequest,
			fmt.Sprintf("cannot change order from %s to %s", order.Status, target))
	}

	if err := s.Repo.UpdateStatus(tx, order.ID, target); err != nil {
		return err
	}
	if err := s.syncTableAndReservation(tx, order, eff); err != nil {
		return err
	}
	if eff.markPaid {
		if err := s.Repo.UpdatePaymentStatus(tx, order.ID, entity.PaymentPaid); err != nil {
			return err
		}
	}
	if eff.restock {
		for _, it := range order.Items {
			if err := s.ProductRepo.AdjustStock(tx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
	}
	return nil
}

// syncTableAndReservation fans the order status out to the linked table and
// reservation; a takeaway order has neither and this is a no-op.
func (s *OrderService) syncTableAndReservation(tx *gorm.DB, order *entity.Order, eff statusEffects) error {
	if order.TableID == nil {
		return nil
	}
	if err := s.TableRepo.UpdateStatus(tx, *order.TableID, eff.tableStatus); err != nil {
		return err
	}
	if order.Reservation != nil {
		if err := s.ResRepo.UpdateStatus(tx, order.Reservation.ID, eff.resStatus, false); err != nil {
			return err
		}
	}
	return nil
}
