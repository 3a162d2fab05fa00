package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "crm_records/internal/application/customer"
	"crm_records/internal/domain/repository"
)

type CustomerHandler struct {
	svc *app.Service
}

func NewCustomerHandler(svc *app.Service) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var cmd app.CreateCustomerCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.svc.CreateCustomer(c.Request.Context(), cmd)
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

func (h *CustomerHandler) BulkCreate(c *gin.Context) {
	var req struct {
		Customers []app.CreateCustomerCommand `json:"customers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.svc.BulkCreateCustomers(c.Request.Context(), req.Customers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CustomerHandler) List(c *gin.Context) {
	filter := repository.CustomerFilter{
		NameContains:  c.Query("name"),
		EmailContains: c.Query("email"),
	}

	var err error
	if filter.CreatedFrom, err = parseTimeParam(c, "created_from"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.CreatedTo, err = parseTimeParam(c, "created_to"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customers, err := h.svc.ListCustomers(c.Request.Context(), filter, parseSort(c))
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSortKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
