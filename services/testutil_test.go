package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database migrated with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Table{}, &entity.TableReservation{},
		&entity.Order{}, &entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fixture struct {
	db *gorm.DB

	Users    *repository.UserRepository
	Products *repository.ProductRepository
	Carts    *repository.CartRepository
	Tables   *repository.TableRepository
	Res      *repository.ReservationRepository
	Orders   *repository.OrderRepository

	CartSvc  *CartService
	ResSvc   *ReservationService
	OrderSvc *OrderService
	StatSvc  *TableStatusService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testDB(t)

	f := &fixture{
		db:       db,
		Users:    repository.NewUserRepository(db),
		Products: repository.NewProductRepository(db),
		Carts:    repository.NewCartRepository(db),
		Tables:   repository.NewTableRepository(db),
		Res:      repository.NewReservationRepository(db),
		Orders:   repository.NewOrderRepository(db),
	}
	f.CartSvc = NewCartService(db, f.Carts, f.Products)
	f.ResSvc = NewReservationService(db, f.Res, f.Tables)
	f.StatSvc = NewTableStatusService(f.Res)
	f.OrderSvc = NewOrderService(db, f.Orders, f.Carts, f.Products, f.Tables, f.Res)
	return f
}

func (f *fixture) user(t *testing.T, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", FullName: "Test User", Role: entity.RoleStudent, IsActive: true}
	if err := f.db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (f *fixture) product(t *testing.T, name string, price int64, stock *int) *entity.Product {
	t.Helper()
	cat := &entity.Category{Name: name + " cat", IsActive: true}
	if err := f.db.Create(cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	p := &entity.Product{Name: name, Price: price, CategoryID: cat.ID, IsAvailable: true, Stock: stock}
	if err := f.db.Create(p).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func (f *fixture) table(t *testing.T, number string) *entity.Table {
	t.Helper()
	tb := &entity.Table{TableNumber: number, Capacity: 4, IsActive: true, Status: entity.TableAvailable}
	if err := f.db.Create(tb).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return tb
}

func (f *fixture) reservation(t *testing.T, tableID, userID uint, start, end time.Time, status entity.ReservationStatus) *entity.TableReservation {
	t.Helper()
	r := &entity.TableReservation{
		TableID: tableID, UserID: userID,
		StartTime: start, EndTime: end,
		PartySize: 2, Status: status,
	}
	if err := f.db.Create(r).Error; err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	return r
}

func (f *fixture) fillCart(t *testing.T, userID, productID uint, quantity int) {
	t.Helper()
	if err := f.CartSvc.Add(userID, &AddToCartIn{ProductID: productID, Quantity: quantity}); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
}

func intPtr(v int) *int { return &v }
