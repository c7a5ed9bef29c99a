package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/models"
	"gorm.io/gorm"
)

type AnnouncementController struct {
	db *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{db: db}
}

func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var announcement models.Announcement
	if err := ctx.ShouldBindJSON(&announcement); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}

	if err := c.db.Create(&announcement).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create announcement", err)
		return
	}

	ctx.JSON(http.StatusCreated, announcement)
}

// GetLatestAnnouncement returns the newest active announcement for the
// storefront banner, or an empty object when none is active.
func (c *AnnouncementController) GetLatestAnnouncement(ctx *gin.Context) {
	var announcement models.Announcement
	err := c.db.Where("active = ?", true).Order("created_at desc").First(&announcement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, gin.H{"announcement": nil})
			return
		}
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch announcement", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"announcement": announcement})
}

func (c *AnnouncementController) GetAnnouncements(ctx *gin.Context) {
	var announcements []models.Announcement
	if err := c.db.Order("created_at desc").Find(&announcements).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch announcements", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"announcements": announcements})
}

func (c *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	announcementID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse announcement id")
		return
	}

	var announcement models.Announcement
	if err := c.db.First(&announcement, announcementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Announcement not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch announcement", err)
		}
		return
	}

	var updates models.Announcement
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, err)
		return
	}

	if err := c.db.Model(&announcement).Updates(map[string]any{
		"message": updates.Message,
		"active":  updates.Active,
	}).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update announcement", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"announcement": announcement})
}

func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	announcementID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse announcement id")
		return
	}

	if err := c.db.Delete(&models.Announcement{}, announcementID).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete announcement", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Announcement deleted successfully."})
}
