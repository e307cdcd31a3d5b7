package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sgdesh/bank-api/internal/middleware"
)

type Handlers struct {
	Customers    *CustomerHandler
	Accounts     *AccountHandler
	Transactions *TransactionHandler
	Loans        *LoanHandler
}

// NewRouter builds the gin engine with every route of the API. Extra
// middleware runs after panic recovery and before the handlers.
func NewRouter(h Handlers, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(extra...)
	router.NoRoute(middleware.NotFoundHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is Up"})
	})

	customers := router.Group("/customers")
	{
		customers.POST("", h.Customers.CreateCustomer)
		customers.GET("", h.Customers.ListCustomers)
		customers.GET("/:id", h.Customers.GetCustomer)
		customers.PUT("/:id", h.Customers.UpdateCustomer)
		customers.DELETE("/:id", h.Customers.DeleteCustomer)
	}

	accounts := router.Group("/bank-accounts")
	{
		accounts.POST("", h.Accounts.CreateAccount)
		accounts.GET("/:customerId", h.Accounts.ListAccounts)
		accounts.GET("/account/:accountId", h.Accounts.GetAccount)
		accounts.PUT("/:accountId", h.Accounts.UpdateAccount)
		accounts.DELETE("/:accountId", h.Accounts.DeleteAccount)
	}

	transactions := router.Group("/transactions")
	{
		transactions.POST("", h.Transactions.CreateTransaction)
		transactions.GET("/:bankAccountId", h.Transactions.ListTransactions)
	}

	loans := router.Group("/loans")
	{
		loans.POST("/apply", h.Loans.ApplyLoan)
		loans.GET("/:loanAccountId", h.Loans.GetLoan)
		loans.POST("/payback/:loanAccountId", h.Loans.PaybackLoan)
	}

	return router
}
