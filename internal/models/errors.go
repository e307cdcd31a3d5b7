package models

import "errors"

// ErrorKind classifies the failures a caller is expected to handle.
// Anything that is not a *Error is an internal failure.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindValidation
	KindConflict
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }
func Invalid(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

var (
	ErrCustomerNotFound    = NotFound("Customer not found")
	ErrAccountNotFound     = NotFound("Bank account not found")
	ErrLoanNotFound        = NotFound("Loan account not found")
	ErrInvalidMobileNumber = Invalid("Invalid mobile number format. It should be a 10-digit numeric value.")
	ErrDuplicateCustomer   = Conflict("Email address or mobile number already exists")
	ErrCustomerHasAccounts = Conflict("Cannot delete customer with existing bank accounts")
	ErrAccountHasLoans     = Conflict("Cannot delete bank account with open loan accounts")
)

// KindOf returns the kind of err, or 0 when err is not a domain error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
