package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodadmin/internal/backend"
	"foodadmin/internal/dashboard"
	"foodadmin/internal/models"
)

func GetOrders(store *dashboard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Orders())
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus patches one order's status. Success answers with the
// status-specific dialog (none for pending); any backend failure answers
// with the one generic error dialog and leaves the store untouched.
func UpdateOrderStatus(store *dashboard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/orders/:id/status"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		dialog, err := store.ChangeStatus(c.Request.Context(), orderID, models.Status(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, dashboard.ErrUnknownStatus):
				respondWithError(c, http.StatusBadRequest, route, "unknown status")
			case errors.Is(err, backend.ErrOrderNotFound):
				respondWithError(c, http.StatusNotFound, route, "order not found")
			default:
				log.Printf("[%s] status update failed: %v", route, err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":  "db error",
					"dialog": dashboard.StatusErrorDialog,
				})
			}
			return
		}

		resp := gin.H{"message": "status updated"}
		if dialog.Title != "" {
			resp["dialog"] = dialog
		}
		c.JSON(http.StatusOK, resp)
	}
}

// DeleteOrder removes one order. The destructive call requires the explicit
// confirm flag the dashboard sets after its confirmation dialog; without it
// nothing is touched, backend included.
func DeleteOrder(store *dashboard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/orders/:id"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		confirmed := c.Query("confirm") == "true"
		dialog, err := store.Delete(c.Request.Context(), orderID, confirmed)
		if err != nil {
			switch {
			case errors.Is(err, dashboard.ErrNotConfirmed):
				log.Printf("[%s] delete without confirmation refused", route)
				c.JSON(http.StatusBadRequest, gin.H{
					"error":  "confirmation required",
					"dialog": dashboard.DeleteConfirmDialog,
				})
			case errors.Is(err, backend.ErrOrderNotFound):
				respondWithError(c, http.StatusNotFound, route, "order not found")
			default:
				log.Printf("[%s] delete failed: %v", route, err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":  "db error",
					"dialog": dashboard.DeleteErrorDialog,
				})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "order deleted", "dialog": dialog})
	}
}
