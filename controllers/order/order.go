package orderControllers

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nikhitha4605/storefront-api/auth"
	"github.com/nikhitha4605/storefront-api/middleware"
	"github.com/nikhitha4605/storefront-api/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// mapOrderStatus validates an inbound status string.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// GET /orders — the caller's own history, newest first. Guests have no
// history and get an empty list.
func GetMyOrders(identities *auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, guest, ok := middleware.RequestIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if guest {
			c.JSON(http.StatusOK, []models.Order{})
			return
		}
		user, err := identities.Current(userID)
		if err != nil {
			c.JSON(http.StatusOK, []models.Order{})
			return
		}
		orders := append([]models.Order(nil), user.Orders...)
		sort.Slice(orders, func(i, j int) bool {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		})
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders — every identity's history, newest first.
func GetAllOrders(identities *auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := allOrders(identities)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status — a real sink write: the customer's
// persisted record changes, not just an admin-side display.
func UpdateOrderStatus(identities *auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := identities.UpdateOrderStatus(orderID, newStatus); err != nil {
			if errors.Is(err, auth.ErrNoOrder) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

func allOrders(identities *auth.Provider) ([]models.Order, error) {
	users, err := identities.AllUsers()
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	for _, u := range users {
		orders = append(orders, u.Orders...)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
