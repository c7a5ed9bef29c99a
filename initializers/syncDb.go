package initializers

import (
	"log"

	"github.com/vastramart/vastramart-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderedProduct{},
		&models.CarouselSlide{},
		&models.Announcement{},
	)
	if err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}
