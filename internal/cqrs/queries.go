package cqrs

// ---------- Customer queries ----------

// GetCustomerQuery fetches a single customer by ID.
type GetCustomerQuery struct {
	CustomerID string
}

// ---------- Account queries ----------

// GetAccountQuery fetches a single bank account by ID.
type GetAccountQuery struct {
	AccountID uint
}

// ListAccountsQuery fetches all bank accounts belonging to a customer.
type ListAccountsQuery struct {
	CustomerID string
}

// ---------- Transaction queries ----------

// ListTransactionsQuery fetches all transactions recorded against an account.
type ListTransactionsQuery struct {
	BankAccountID uint
}

// ---------- Loan queries ----------

type GetLoanQuery struct {
	LoanAccountID uint
}
