package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanikdev/storefront-golang/internal/models"
)

type OrderItemInput struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" binding:"required,gte=1"`
}

type BankDetailsInput struct {
	AccountName  string `json:"accountName" binding:"required"`
	BankName     string `json:"bankName"`
	SelectedBank string `json:"selectedBank" binding:"required"`
}

type CreateOrderInput struct {
	Products    []OrderItemInput  `json:"products" binding:"required,min=1,dive"`
	Total       *float64          `json:"total" binding:"required,gte=0"`
	User        string            `json:"user"`
	BankDetails *BankDetailsInput `json:"bankDetails"`
}

type UpdateOrderInput struct {
	Status      *string           `json:"status"`
	BankDetails *BankDetailsInput `json:"bankDetails"`
}

func (in *BankDetailsInput) model() *models.BankDetails {
	return &models.BankDetails{
		AccountName:  in.AccountName,
		BankName:     in.BankName,
		SelectedBank: in.SelectedBank,
	}
}

// CreateOrder is the handler for POST /api/orders. The body's user field is
// accepted for contract compatibility but may not differ from the
// authenticated user unless the caller is an admin.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID := c.GetString("userID")
	if input.User != "" && input.User != userID {
		if !c.GetBool("isAdmin") {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		userID = input.User
	}

	items := make([]models.OrderItem, len(input.Products))
	for i, p := range input.Products {
		items[i] = models.OrderItem{
			ProductID: p.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Quantity:  p.Quantity,
		}
	}
	var bank *models.BankDetails
	if input.BankDetails != nil {
		bank = input.BankDetails.model()
	}

	order, err := h.Orders.Create(c, userID, items, *input.Total, bank)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetAllOrders is the handler for GET /api/orders (admin only).
func (h *Handlers) GetAllOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetMyOrders is the handler for GET /api/orders/my. The userId query
// parameter is honored for contract compatibility, but a non-admin can only
// ask for their own orders.
func (h *Handlers) GetMyOrders(c *gin.Context) {
	userID := c.GetString("userID")
	if q := c.Query("userId"); q != "" && q != userID {
		if !c.GetBool("isAdmin") {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		userID = q
	}

	orders, err := h.Orders.ListForUser(c, userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder is the handler for GET /api/orders/:id (owner or admin).
func (h *Handlers) GetOrder(c *gin.Context) {
	order, err := h.Orders.GetByID(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if order.UserID != c.GetString("userID") && !c.GetBool("isAdmin") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder is the handler for PUT /api/orders/:id (owner or admin). This
// is the path a buyer uses to attach bank-transfer details and move the
// order to verifying.
func (h *Handlers) UpdateOrder(c *gin.Context) {
	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := h.Orders.GetByID(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if order.UserID != c.GetString("userID") && !c.GetBool("isAdmin") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}

	var bank *models.BankDetails
	if input.BankDetails != nil {
		bank = input.BankDetails.model()
	}
	updated, err := h.Orders.Update(c, order.ID, input.Status, bank)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus is the handler for PUT /api/orders/:id/status (admin only).
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := h.Orders.SetStatus(c, c.Param("id"), input.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder is the handler for DELETE /api/orders/:id (admin only).
func (h *Handlers) DeleteOrder(c *gin.Context) {
	if err := h.Orders.Delete(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
