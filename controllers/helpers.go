package controllers

import (
	"github.com/gin-gonic/gin"
)

const (
	// Standard response messages
	msgInvalidRequestBody    = "Invalid request body"
	msgAuthRequired          = "Authentication required"
	msgForbidden             = "You are not allowed to access this resource"
	msgInternalServerError   = "Internal server error"
	msgOrderPlaced           = "Order placed successfully."
	msgOrderNeedsProducts    = "Order must contain at least one product"
	msgOrderNotFound         = "Order not found"
	msgFailedToCreateOrder   = "Failed to create order"
	msgFailedToFetchOrders   = "Failed to fetch orders"
	msgFailedToFetchCart     = "Failed to fetch cart"
	msgFailedToSaveCart      = "Failed to save cart"
	msgFailedToInitiatePay   = "Failed to initiate payment"
	msgMissingCallbackParams = "Missing callback parameters"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondWithError includes the error detail alongside the message; used on
// admin endpoints where leaking detail to the caller is acceptable.
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}
