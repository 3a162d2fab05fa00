package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "crm_records/internal/application/product"
	"crm_records/internal/domain/repository"
)

type ProductHandler struct {
	svc *app.Service
}

func NewProductHandler(svc *app.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var cmd app.CreateProductCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.svc.CreateProduct(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *ProductHandler) List(c *gin.Context) {
	filter := repository.ProductFilter{
		NameContains: c.Query("name"),
	}

	var err error
	if filter.PriceMin, err = parseDecimalParam(c, "price_min"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.PriceMax, err = parseDecimalParam(c, "price_max"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.StockMin, err = parseIntParam(c, "stock_min"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.StockMax, err = parseIntParam(c, "stock_max"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.svc.ListProducts(c.Request.Context(), filter, parseSort(c))
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSortKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}
