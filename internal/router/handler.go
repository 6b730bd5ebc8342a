package router

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"julianmorley.ca/con-plar/shopvibe/pkg/catalog"
	"julianmorley.ca/con-plar/shopvibe/pkg/global"
	"julianmorley.ca/con-plar/shopvibe/pkg/models"
	"julianmorley.ca/con-plar/shopvibe/pkg/session"
	"julianmorley.ca/con-plar/shopvibe/pkg/view"
)

// Dependency is a backing service reported by the health check.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

// Handler carries what the routes need. Catalog is read statelessly for the
// product endpoints; Finder serves single products behind the optional
// ProductCache; Sessions owns per-shopper state.
type Handler struct {
	Catalog      catalog.Source
	Finder       catalog.Finder
	ProductCache catalog.ProductCache
	Sessions     *session.Store
	Dependencies []Dependency
	Log          logrus.FieldLogger
}

// HealthCheck reports catalog reachability and each dependency's status.
func (h *Handler) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	status := map[string]string{"status": "OK", "catalog": "Reachable"}
	healthy := true

	if _, err := h.Catalog.Products(ctx); err != nil {
		h.Log.WithError(err).Error("health check: catalog unreachable")
		status["catalog"] = "Unreachable"
		healthy = false
	}
	for _, dep := range h.Dependencies {
		if err := dep.Ping(ctx); err != nil {
			h.Log.WithError(err).WithField("dependency", dep.Name).Error("health check: dependency down")
			status[dep.Name] = "Disconnected"
			healthy = false
			continue
		}
		status[dep.Name] = "Connected"
	}

	if !healthy {
		status["status"] = "DEGRADED"
		c.JSON(http.StatusServiceUnavailable, global.APIResponse{Success: false, Data: status, Message: "Dependency check failed"})
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(status))
}

// GetAllCategories lists the category chips in display order.
func (h *Handler) GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(models.Categories()))
}

// GetProducts runs the catalog filter without a session. Missing category
// means All; unknown categories match nothing.
func (h *Handler) GetProducts(c *gin.Context) {
	selection, known := models.ParseCategory(c.DefaultQuery("category", string(models.CategoryAll)))
	if !known {
		h.Log.WithField("category", selection).Debug("filtering by unknown category")
	}

	products, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		h.catalogFailure(c, err)
		return
	}

	filtered := catalog.Filter(products, selection)
	c.Header("X-Total-Count", strconv.Itoa(len(filtered)))
	c.JSON(http.StatusOK, global.SuccessResponse(filtered))
}

// GetProductByID is the product quick view. The product cache is tried
// first; on a miss the origin is asked by id and the result cached.
func (h *Handler) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	// Try the product cache first
	if h.ProductCache != nil {
		product, ok, err := h.ProductCache.GetProduct(ctx, id)
		if err != nil {
			h.Log.WithError(err).WithField("product_id", id).Warn("product cache read failed")
		}
		if ok {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, global.SuccessResponse(view.NewProductCard(product, false)))
			return
		}
	}

	// Cache miss, ask the origin
	product, ok, err := h.Finder.ProductByID(ctx, id)
	if err != nil {
		h.catalogFailure(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
			{Field: "id", Message: "No product exists with this id", Code: "not_found"},
		}))
		return
	}

	if h.ProductCache != nil {
		if cacheErr := h.ProductCache.SetProduct(ctx, product); cacheErr != nil {
			// the response does not depend on the cache write
			h.Log.WithError(cacheErr).WithField("product_id", id).Warn("failed to cache product")
		}
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(view.NewProductCard(product, false)))
}

// CreateSession starts a new shopper session and returns its first page.
func (h *Handler) CreateSession(c *gin.Context) {
	controller := h.Sessions.Create()

	snap, err := controller.Snapshot(c.Request.Context())
	if err != nil {
		h.Sessions.Delete(controller.ID())
		h.intentFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, global.SuccessResponse(view.NewPage(snap)))
}

func (h *Handler) GetSession(c *gin.Context) {
	h.respond(c)(currentSession(c).Snapshot(c.Request.Context()))
}

func (h *Handler) SelectCategory(c *gin.Context) {
	var req models.SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "category", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	h.respond(c)(currentSession(c).SelectCategory(c.Request.Context(), models.Category(req.Category)))
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "product_id", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	h.respond(c)(currentSession(c).AddToCart(c.Request.Context(), req.ProductID))
}

// UpdateCartItem sets an absolute quantity. Zero or less removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "quantity", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	productID := c.Param("productId")
	h.respond(c)(currentSession(c).SetLineItemQuantity(c.Request.Context(), productID, *req.Quantity))
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	h.respond(c)(currentSession(c).RemoveLineItem(c.Request.Context(), c.Param("productId")))
}

func (h *Handler) OpenCart(c *gin.Context) {
	h.respond(c)(currentSession(c).OpenCart(c.Request.Context()))
}

func (h *Handler) CloseCart(c *gin.Context) {
	h.respond(c)(currentSession(c).CloseCart(c.Request.Context()))
}

func (h *Handler) ToggleWishlist(c *gin.Context) {
	h.respond(c)(currentSession(c).ToggleWishlist(c.Request.Context(), c.Param("productId")))
}

// Checkout hands the cart off and returns the order with the reset page.
func (h *Handler) Checkout(c *gin.Context) {
	order, snap, err := currentSession(c).Checkout(c.Request.Context())
	if err != nil {
		h.intentFailure(c, err)
		return
	}

	c.JSON(http.StatusCreated, global.SuccessMessage("Order placed", gin.H{
		"order": order,
		"page":  view.NewPage(snap),
	}))
}

// respond writes the page for a successful intent or maps its error.
func (h *Handler) respond(c *gin.Context) func(session.Snapshot, error) {
	return func(snap session.Snapshot, err error) {
		if err != nil {
			h.intentFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, global.SuccessResponse(view.NewPage(snap)))
	}
}

func (h *Handler) intentFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrProductNotFound):
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
			{Field: "product_id", Message: "No product exists with this id", Code: "not_found"},
		}))
	case errors.Is(err, session.ErrOutOfStock):
		c.JSON(http.StatusConflict, global.ErrorResponse("Product is out of stock", []global.ValidationError{
			{Field: "product_id", Message: "This product cannot be added to the cart", Code: "out_of_stock"},
		}))
	case errors.Is(err, session.ErrEmptyCart):
		c.JSON(http.StatusConflict, global.ErrorResponse("Cart is empty", []global.ValidationError{
			{Field: "cart", Message: "Add at least one item before checking out", Code: "empty_cart"},
		}))
	case errors.Is(err, session.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, global.ErrorResponse("Session not found", nil))
	default:
		h.catalogFailure(c, err)
	}
}

func (h *Handler) catalogFailure(c *gin.Context, err error) {
	_ = c.Error(err)
	h.Log.WithError(err).Error("catalog source failed")
	c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to load catalog", nil))
}
