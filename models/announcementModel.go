package models

import "gorm.io/gorm"

type Announcement struct {
	gorm.Model
	Message string `json:"message" binding:"required"`
	Active  bool   `json:"active"`
}
