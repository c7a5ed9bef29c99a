package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/models"
	"gorm.io/gorm"
)

type CarouselController struct {
	db *gorm.DB
}

func NewCarouselController(db *gorm.DB) *CarouselController {
	return &CarouselController{db: db}
}

func (c *CarouselController) CreateSlide(ctx *gin.Context) {
	var slide models.CarouselSlide
	if err := ctx.ShouldBindJSON(&slide); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}

	if err := c.db.Create(&slide).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create carousel slide", err)
		return
	}

	ctx.JSON(http.StatusCreated, slide)
}

// GetSlides returns the active slides in display order for the storefront
// hero carousel.
func (c *CarouselController) GetSlides(ctx *gin.Context) {
	var slides []models.CarouselSlide
	if err := c.db.Where("active = ?", true).Order("position asc").Find(&slides).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch carousel slides", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"slides": slides})
}

func (c *CarouselController) UpdateSlide(ctx *gin.Context) {
	slideID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse slide id")
		return
	}

	var slide models.CarouselSlide
	if err := c.db.First(&slide, slideID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Carousel slide not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch carousel slide", err)
		}
		return
	}

	var updates models.CarouselSlide
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}

	if err := c.db.Model(&slide).Updates(map[string]any{
		"title":     updates.Title,
		"subtitle":  updates.Subtitle,
		"image_url": updates.ImageUrl,
		"link_url":  updates.LinkUrl,
		"position":  updates.Position,
		"active":    updates.Active,
	}).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update carousel slide", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"slide": slide})
}

func (c *CarouselController) DeleteSlide(ctx *gin.Context) {
	slideID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse slide id")
		return
	}

	if err := c.db.Delete(&models.CarouselSlide{}, slideID).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete carousel slide", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Carousel slide deleted successfully."})
}
