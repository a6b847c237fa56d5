package services

import (
	"errors"
	"fmt"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/apperr"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusPublisher receives order status events after they commit;
// the ws feed implements it.
type StatusPublisher interface {
	PublishOrderStatus(o *entity.Order)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	TableRepo   *repository.TableRepository
	ResRepo     *repository.ReservationRepository

	Notifier Notifier        // best-effort, may be nil in tests
	Feed     StatusPublisher // optional ws fan-out
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	productRepo *repository.ProductRepository,
	tableRepo *repository.TableRepository,
	resRepo *repository.ReservationRepository,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo,
		ProductRepo: productRepo, TableRepo: tableRepo, ResRepo: resRepo,
	}
}

type CreateOrderIn struct {
	TableID       *uint  `json:"tableId"`
	ReservationID *uint  `json:"reservationId"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

// CreateFromCart converts the user's cart into an order. Order, items,
// reservation linkage, stock decrement and cart clearing commit together.
func (s *OrderService) CreateFromCart(userID uint, in *CreateOrderIn) (*entity.Order, error) {
	cart, err := s.CartRepo.GetWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.New(apperr.BadRequest, "cart is empty")
	}

	// dine-in ต้องมี reservation คู่กันเสมอ
	var reservation *entity.TableReservation
	if in.TableID != nil {
		if _, err := s.TableRepo.Get(*in.TableID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "table not found")
		} else if err != nil {
			return nil, err
		}
		if in.ReservationID == nil {
			return nil, apperr.New(apperr.BadRequest, "reservation is required for dine-in orders")
		}
		reservation, err = s.ResRepo.Get(*in.ReservationID)
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && reservation.TableID != *in.TableID) {
			return nil, apperr.New(apperr.NotFound, "reservation not found for this table")
		}
		if err != nil {
			return nil, err
		}
		if reservation.UserID != userID {
			return nil, apperr.New(apperr.Forbidden, "reservation belongs to another user")
		}
		if reservation.Status != entity.ReservationConfirmed && reservation.Status != entity.ReservationActive {
			return nil, apperr.New(apperr.BadRequest, "reservation is not in a valid state")
		}
	}

	var total int64
	for _, it := range cart.Items {
		total += it.PriceAtTime * int64(it.Quantity)
	}

	deliveryType := "pickup"
	if in.TableID != nil {
		deliveryType = "dine-in"
	}

	order := &entity.Order{
		Code:          uuid.NewString(),
		UserID:        userID,
		TableID:       in.TableID,
		TotalAmount:   total,
		Status:        entity.OrderPending,
		PaymentStatus: entity.PaymentUnpaid,
		PaymentMethod: in.PaymentMethod,
		DeliveryType:  deliveryType,
		Notes:         in.Notes,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// ตรวจสินค้าใหม่ตอนสั่งจริง ไม่เชื่อ snapshot ในตะกร้า
		// อ่านใน tx เดียวกับที่ตัดสต็อก จะได้เห็น row เดียวกัน
		for _, it := range cart.Items {
			p, err := s.ProductRepo.GetForUpdate(tx, it.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !p.IsAvailable) {
				return apperr.New(apperr.BadRequest,
					fmt.Sprintf("product %d is no longer available", it.ProductID))
			}
			if err != nil {
				return err
			}
			if p.StockTracked() && *p.Stock < it.Quantity {
				return apperr.New(apperr.BadRequest,
					fmt.Sprintf("not enough stock for %s, available: %d", p.Name, *p.Stock))
			}
		}

		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		for _, it := range cart.Items {
			oi := &entity.OrderItem{
				OrderID:     order.ID,
				ProductID:   it.ProductID,
				Quantity:    it.Quantity,
				PriceAtTime: it.PriceAtTime,
				Subtotal:    it.PriceAtTime * int64(it.Quantity),
			}
			if err := s.Repo.CreateItem(tx, oi); err != nil {
				return err
			}
		}

		if reservation != nil {
			if err := s.ResRepo.AttachOrder(tx, reservation.ID, order.ID); err != nil {
				return err
			}
			if err := s.TableRepo.UpdateStatus(tx, reservation.TableID, entity.TableReserved); err != nil {
				return err
			}
		}

		// ตัดสต็อกเฉพาะสินค้าที่นับสต็อก
		for _, it := range cart.Items {
			if err := s.ProductRepo.AdjustStock(tx, it.ProductID, -it.Quantity); err != nil {
				return err
			}
		}

		return s.CartRepo.Clear(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	full, err := s.Repo.Get(order.ID)
	if err != nil {
		return nil, err
	}
	s.notifyStatus(full, entity.OrderPending)
	s.publish(full)
	return full, nil
}

// UpdateStatus drives the order state machine; table, reservation, payment
// and stock effects follow the transition map in one transaction.
func (s *OrderService) UpdateStatus(orderID uint, target entity.OrderStatus) (*entity.Order, error) {
	order, err := s.Repo.Get(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.applyTransition(tx, order, target)
	})
	if err != nil {
		return nil, err
	}

	full, err := s.Repo.Get(orderID)
	if err != nil {
		return nil, err
	}
	s.notifyStatus(full, target)
	s.publish(full)
	return full, nil
}

// Cancel is the caller-facing wrapper around the cancelled transition.
func (s *OrderService) Cancel(orderID, requesterID uint, privileged bool) (*entity.Order, error) {
	order, err := s.Repo.Get(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID && !privileged {
		return nil, apperr.New(apperr.Forbidden, "not your order")
	}
	switch order.Status {
	case entity.OrderPending, entity.OrderConfirmed, entity.OrderPreparing:
	default:
		return nil, apperr.New(apperr.BadRequest, "order can no longer be cancelled")
	}
	return s.UpdateStatus(orderID, entity.OrderCancelled)
}

func (s *OrderService) ListForUser(userID uint, limit, offset int) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID, limit, offset)
}

func (s *OrderService) List(status entity.OrderStatus, limit, offset int) ([]entity.Order, error) {
	return s.Repo.List(status, limit, offset)
}

func (s *OrderService) Detail(orderID, requesterID uint, privileged bool) (*entity.Order, error) {
	order, err := s.Repo.Get(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID && !privileged {
		return nil, apperr.New(apperr.Forbidden, "not your order")
	}
	return order, nil
}

func (s *OrderService) publish(o *entity.Order) {
	if s.Feed != nil {
		s.Feed.PublishOrderStatus(o)
	}
}
