package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanikdev/storefront-golang/internal/services"
	"github.com/hanikdev/storefront-golang/internal/store"
)

// Handlers holds the services the HTTP layer delegates to.
type Handlers struct {
	Auth    *services.AuthService
	Catalog *services.CatalogService
	Orders  *services.OrderService
}

func New(s store.Store) *Handlers {
	return &Handlers{
		Auth:    &services.AuthService{Store: s},
		Catalog: &services.CatalogService{Store: s},
		Orders:  &services.OrderService{Store: s},
	}
}

// fail maps a service error to an HTTP status with a {"message": ...} body.
// Unexpected errors are logged and returned as a generic 500.
func fail(c *gin.Context, err error) {
	var ve services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Error()})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	default:
		log.Printf("internal error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
