package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/middleware"
	"github.com/sgdesh/bank-api/internal/models"
)

// CustomerCommander defines the write-side operations used by CustomerHandler.
type CustomerCommander interface {
	CreateCustomer(context.Context, cqrs.CreateCustomerCommand) (*models.Customer, error)
	UpdateCustomer(context.Context, cqrs.UpdateCustomerCommand) (*models.Customer, error)
	DeleteCustomer(context.Context, cqrs.DeleteCustomerCommand) error
}

// CustomerQuerier defines the read-side operations used by CustomerHandler.
type CustomerQuerier interface {
	GetCustomer(context.Context, cqrs.GetCustomerQuery) (*models.Customer, error)
	ListCustomers(context.Context) ([]models.Customer, error)
}

// CustomerHandler routes customer requests to the command or query service as appropriate.
type CustomerHandler struct {
	commands CustomerCommander
	queries  CustomerQuerier
}

type CreateCustomerRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	MobileNumber string `json:"mobileNumber" validate:"required,mobile"`
}

type UpdateCustomerRequest struct {
	FirstName    *string `json:"firstName" validate:"omitempty,min=1"`
	LastName     *string `json:"lastName" validate:"omitempty,min=1"`
	Email        *string `json:"email" validate:"omitempty,email"`
	MobileNumber *string `json:"mobileNumber" validate:"omitempty,mobile"`
}

func NewCustomerHandler(commands CustomerCommander, queries CustomerQuerier) *CustomerHandler {
	return &CustomerHandler{commands: commands, queries: queries}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	customer, err := h.commands.CreateCustomer(c.Request.Context(), cqrs.CreateCustomerCommand{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.queries.ListCustomers(c.Request.Context())
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.queries.GetCustomer(c.Request.Context(), cqrs.GetCustomerQuery{
		CustomerID: c.Param("id"),
	})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	customer, err := h.commands.UpdateCustomer(c.Request.Context(), cqrs.UpdateCustomerCommand{
		CustomerID:   c.Param("id"),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	err := h.commands.DeleteCustomer(c.Request.Context(), cqrs.DeleteCustomerCommand{
		CustomerID: c.Param("id"),
	})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
