package configs

import (
	"log"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		FullName: "Administrator",
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
	return db.Create(&admin).Error
}

// Seed หมวดอาหารกับโต๊ะเริ่มต้น ให้หน้าเว็บมีข้อมูลโชว์
func SeedLookups() error {
	db := DB()

	for i, name := range []string{"Coffee", "Tea", "Food", "Snacks"} {
		db.FirstOrCreate(&entity.Category{}, entity.Category{Name: name, SortOrder: i})
	}

	tables := []entity.Table{
		{TableNumber: "A1", Capacity: 2, Location: "Ground Floor"},
		{TableNumber: "A2", Capacity: 4, Location: "Ground Floor"},
		{TableNumber: "B1", Capacity: 4, Location: "2nd Floor"},
		{TableNumber: "B2", Capacity: 6, Location: "2nd Floor"},
	}
	for _, t := range tables {
		db.FirstOrCreate(&entity.Table{}, entity.Table{TableNumber: t.TableNumber, Capacity: t.Capacity, Location: t.Location})
	}

	return nil
}
