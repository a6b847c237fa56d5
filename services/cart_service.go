package services

import (
	"errors"
	"fmt"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/apperr"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

type AddToCartIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"min=1"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	return c, c.Subtotal(), nil
}

func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	p, err := s.ProductRepo.Get(in.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "product not found")
	}
	if err != nil {
		return err
	}
	if !p.IsAvailable {
		return apperr.New(apperr.BadRequest, "product is not available")
	}
	if p.StockTracked() && *p.Stock < in.Quantity {
		return apperr.New(apperr.BadRequest, fmt.Sprintf("not enough stock, available: %d", *p.Stock))
	}

	c, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}

	// snapshot ราคาตอนหยิบใส่ตะกร้า
	row := &entity.CartItem{
		ProductID:   p.ID,
		Quantity:    in.Quantity,
		PriceAtTime: p.Price,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, row)
	})
}

func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) error {
	if quantity < 1 {
		return apperr.New(apperr.BadRequest, "quantity must be at least 1")
	}

	c, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	it, err := s.CartRepo.GetItem(c.ID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "cart item not found")
	}
	if err != nil {
		return err
	}

	// เช็คสต็อกอีกครั้งตอนเปลี่ยนจำนวน
	p, err := s.ProductRepo.Get(it.ProductID)
	if err != nil {
		return err
	}
	if p.StockTracked() && *p.Stock < quantity {
		return apperr.New(apperr.BadRequest, fmt.Sprintf("not enough stock, available: %d", *p.Stock))
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateItemQuantity(tx, it.ID, quantity)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	c, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if _, err := s.CartRepo.GetItem(c.ID, itemID); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "cart item not found")
	} else if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, c.ID, itemID)
	})
}

// Clear ลบของทั้งหมดแต่คงแถว cart ไว้
func (s *CartService) Clear(userID uint) error {
	c, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, c.ID)
	})
}
