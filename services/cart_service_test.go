package services

import (
	"testing"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/apperr"
)

func TestCartAddUpsert(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "a@example.com")
	p := f.product(t, "Iced Coffee", 25000, nil)

	f.fillCart(t, u.ID, p.ID, 2)

	// ราคาขึ้นหลังจากหยิบใส่ตะกร้า — snapshot เดิมต้องคงอยู่
	p.Price = 30000
	if err := f.Products.Save(p); err != nil {
		t.Fatalf("save product: %v", err)
	}
	f.fillCart(t, u.ID, p.ID, 3)

	cart, subtotal, err := f.CartSvc.Get(u.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want 1 (merged)", len(cart.Items))
	}
	it := cart.Items[0]
	if it.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", it.Quantity)
	}
	if it.PriceAtTime != 25000 {
		t.Errorf("priceAtTime = %d, want original snapshot 25000", it.PriceAtTime)
	}
	if subtotal != 5*25000 {
		t.Errorf("subtotal = %d, want %d", subtotal, 5*25000)
	}
}

func TestCartAddValidation(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "a@example.com")

	if err := f.CartSvc.Add(u.ID, &AddToCartIn{ProductID: 999, Quantity: 1}); !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("missing product kind = %v, want NotFound", apperr.KindOf(err))
	}

	off := f.product(t, "Sold Out Tea", 10000, nil)
	off.IsAvailable = false
	if err := f.Products.Save(off); err != nil {
		t.Fatalf("save product: %v", err)
	}
	if err := f.CartSvc.Add(u.ID, &AddToCartIn{ProductID: off.ID, Quantity: 1}); !apperr.IsKind(err, apperr.BadRequest) {
		t.Errorf("unavailable product kind = %v, want BadRequest", apperr.KindOf(err))
	}

	low := f.product(t, "Last Sandwich", 20000, intPtr(1))
	if err := f.CartSvc.Add(u.ID, &AddToCartIn{ProductID: low.ID, Quantity: 2}); !apperr.IsKind(err, apperr.BadRequest) {
		t.Errorf("insufficient stock kind = %v, want BadRequest", apperr.KindOf(err))
	}

	// untracked stock ไม่จำกัดจำนวน
	free := f.product(t, "Water", 5000, nil)
	if err := f.CartSvc.Add(u.ID, &AddToCartIn{ProductID: free.ID, Quantity: 100}); err != nil {
		t.Errorf("untracked stock Add() error = %v, want nil", err)
	}
}

func TestCartItemOwnership(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, "a@example.com")
	b := f.user(t, "b@example.com")
	p := f.product(t, "Noodles", 35000, nil)

	f.fillCart(t, a.ID, p.ID, 1)
	cart, _, err := f.CartSvc.Get(a.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	itemID := cart.Items[0].ID

	// คนอื่นมาแก้/ลบ item ของเราไม่ได้
	if err := f.CartSvc.UpdateQuantity(b.ID, itemID, 3); !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("foreign UpdateQuantity() kind = %v, want NotFound", apperr.KindOf(err))
	}
	if err := f.CartSvc.RemoveItem(b.ID, itemID); !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("foreign RemoveItem() kind = %v, want NotFound", apperr.KindOf(err))
	}

	if err := f.CartSvc.UpdateQuantity(a.ID, itemID, 0); !apperr.IsKind(err, apperr.BadRequest) {
		t.Errorf("zero quantity kind = %v, want BadRequest", apperr.KindOf(err))
	}

	if err := f.CartSvc.UpdateQuantity(a.ID, itemID, 3); err != nil {
		t.Fatalf("UpdateQuantity() error: %v", err)
	}
	cart, _, _ = f.CartSvc.Get(a.ID)
	if cart.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", cart.Items[0].Quantity)
	}
}

func TestCartClearKeepsRow(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "a@example.com")
	p := f.product(t, "Rice", 30000, nil)

	f.fillCart(t, u.ID, p.ID, 2)
	cart, _, _ := f.CartSvc.Get(u.ID)
	cartID := cart.ID

	if err := f.CartSvc.Clear(u.ID); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	var again entity.Cart
	if err := f.db.First(&again, cartID).Error; err != nil {
		t.Fatalf("cart row should survive clear: %v", err)
	}
	var count int64
	f.db.Model(&entity.CartItem{}).Where("cart_id = ?", cartID).Count(&count)
	if count != 0 {
		t.Errorf("items after clear = %d, want 0", count)
	}
}

func TestCartGetOrCreateIdempotent(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "a@example.com")

	c1, err := f.Carts.GetOrCreate(u.ID)
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}
	c2, err := f.Carts.GetOrCreate(u.ID)
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}
	if c1.ID != c2.ID {
		t.Errorf("GetOrCreate() returned different carts: %d vs %d", c1.ID, c2.ID)
	}
}
