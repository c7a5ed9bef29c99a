package models

import "gorm.io/gorm"

type CarouselSlide struct {
	gorm.Model
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	ImageUrl string `json:"imageUrl" binding:"required"`
	LinkUrl  string `json:"linkUrl"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}
