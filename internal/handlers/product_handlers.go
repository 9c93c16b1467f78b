package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanikdev/storefront-golang/internal/services"
)

// ProductInput is the request body for creating or updating a product.
// Price and stock are pointers so that a missing field fails validation
// instead of silently becoming zero; a non-numeric value fails at bind time.
type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Image       string   `json:"image"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
	Discount    float64  `json:"discount" binding:"gte=0,lte=100"`
}

func (in *ProductInput) fields() services.ProductFields {
	return services.ProductFields{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Image:       in.Image,
		Stock:       *in.Stock,
		Discount:    in.Discount,
	}
}

// ListProducts is the handler for GET /api/products (public).
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.Catalog.List(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct is the handler for POST /api/products (admin only).
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	product, err := h.Catalog.Create(c, input.fields())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct is the handler for PUT /api/products/:id (admin only).
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	product, err := h.Catalog.Update(c, c.Param("id"), input.fields())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct is the handler for DELETE /api/products/:id (admin only).
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if err := h.Catalog.Delete(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
