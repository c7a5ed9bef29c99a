package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	CartID    int     `json:"cartId"`
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type Cart struct {
	gorm.Model
	UserID string     `json:"userId" gorm:"size:64;uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}
