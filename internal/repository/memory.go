package repository

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sgdesh/bank-api/internal/models"
)

// memoryData holds in-memory rows for every table.
type memoryData struct {
	customers    map[string]models.Customer
	accounts     map[uint]models.BankAccount
	transactions map[uint]models.Transaction
	loanRequests map[uint]models.LoanRequest
	loanAccounts map[uint]models.LoanAccount
	nextID       map[string]uint
}

func newMemoryData() *memoryData {
	return &memoryData{
		customers:    make(map[string]models.Customer),
		accounts:     make(map[uint]models.BankAccount),
		transactions: make(map[uint]models.Transaction),
		loanRequests: make(map[uint]models.LoanRequest),
		loanAccounts: make(map[uint]models.LoanAccount),
		nextID:       make(map[string]uint),
	}
}

func (d *memoryData) clone() *memoryData {
	return &memoryData{
		customers:    maps.Clone(d.customers),
		accounts:     maps.Clone(d.accounts),
		transactions: maps.Clone(d.transactions),
		loanRequests: maps.Clone(d.loanRequests),
		loanAccounts: maps.Clone(d.loanAccounts),
		nextID:       maps.Clone(d.nextID),
	}
}

func (d *memoryData) id(table string) uint {
	d.nextID[table]++
	return d.nextID[table]
}

// MemoryStore is a Store that keeps everything in process memory. A single
// mutex serialises all access; Atomic holds it for the whole unit and
// restores a snapshot when the unit fails.
type MemoryStore struct {
	mu   *sync.Mutex
	data **memoryData
	inTx bool
}

func NewMemoryStore() *MemoryStore {
	data := newMemoryData()
	return &MemoryStore{mu: &sync.Mutex{}, data: &data}
}

func (s *MemoryStore) do(fn func(d *memoryData) error) error {
	if !s.inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(*s.data)
}

func (s *MemoryStore) Atomic(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := (*s.data).clone()
	if err := fn(&MemoryStore{mu: s.mu, data: s.data, inTx: true}); err != nil {
		*s.data = snapshot
		return err
	}
	return nil
}

func (s *MemoryStore) Customers() CustomerRepository { return memoryCustomers{s} }
func (s *MemoryStore) Accounts() AccountRepository { return memoryAccounts{s} }
func (s *MemoryStore) Transactions() TransactionRepository { return memoryTransactions{s} }
func (s *MemoryStore) Loans() LoanRepository { return memoryLoans{s} }

type memoryCustomers struct{ s *MemoryStore }

func (r memoryCustomers) Create(_ context.Context, customer *models.Customer) error {
	return r.s.do(func(d *memoryData) error {
		if duplicateCustomer(d, customer) {
			return models.ErrDuplicateCustomer
		}
		now := time.Now().UTC()
		if customer.CreatedAt.IsZero() {
			customer.CreatedAt = now
		}
		if customer.UpdatedAt.IsZero() {
			customer.UpdatedAt = now
		}
		d.customers[customer.ID] = *customer
		return nil
	})
}

func (r memoryCustomers) List(_ context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := r.s.do(func(d *memoryData) error {
		for _, c := range d.customers {
			customers = append(customers, c)
		}
		return nil
	})
	slices.SortFunc(customers, func(a, b models.Customer) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return customers, err
}

func (r memoryCustomers) GetByID(_ context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.s.do(func(d *memoryData) error {
		c, ok := d.customers[id]
		if !ok {
			return models.ErrCustomerNotFound
		}
		customer = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r memoryCustomers) Update(_ context.Context, customer *models.Customer) error {
	return r.s.do(func(d *memoryData) error {
		existing, ok := d.customers[customer.ID]
		if !ok {
			return models.ErrCustomerNotFound
		}
		if duplicateCustomer(d, customer) {
			return models.ErrDuplicateCustomer
		}
		updated := *customer
		updated.CreatedAt = existing.CreatedAt
		d.customers[customer.ID] = updated
		return nil
	})
}

func (r memoryCustomers) Delete(_ context.Context, id string) error {
	return r.s.do(func(d *memoryData) error {
		if _, ok := d.customers[id]; !ok {
			return models.ErrCustomerNotFound
		}
		delete(d.customers, id)
		return nil
	})
}

// duplicateCustomer reports whether another customer already holds the
// email or mobile number of c.
func duplicateCustomer(d *memoryData, c *models.Customer) bool {
	for id, other := range d.customers {
		if id == c.ID {
			continue
		}
		if other.Email == c.Email || other.MobileNumber == c.MobileNumber {
			return true
		}
	}
	return false
}

type memoryAccounts struct{ s *MemoryStore }

func (r memoryAccounts) Create(_ context.Context, account *models.BankAccount) error {
	return r.s.do(func(d *memoryData) error {
		now := time.Now().UTC()
		account.ID = d.id("bank_accounts")
		account.CreatedAt, account.UpdatedAt = now, now
		d.accounts[account.ID] = *account
		return nil
	})
}

func (r memoryAccounts) GetByID(_ context.Context, id uint) (*models.BankAccount, error) {
	var account models.BankAccount
	err := r.s.do(func(d *memoryData) error {
		a, ok := d.accounts[id]
		if !ok {
			return models.ErrAccountNotFound
		}
		account = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetForUpdate needs no extra locking: the store mutex is already held for
// the whole Atomic unit.
func (r memoryAccounts) GetForUpdate(ctx context.Context, id uint) (*models.BankAccount, error) {
	return r.GetByID(ctx, id)
}

func (r memoryAccounts) ListByCustomerID(_ context.Context, customerID string) ([]models.BankAccount, error) {
	accounts := []models.BankAccount{}
	err := r.s.do(func(d *memoryData) error {
		for _, a := range d.accounts {
			if a.CustomerID == customerID {
				accounts = append(accounts, a)
			}
		}
		return nil
	})
	slices.SortFunc(accounts, func(a, b models.BankAccount) int { return int(a.ID) - int(b.ID) })
	return accounts, err
}

func (r memoryAccounts) CountByCustomerID(ctx context.Context, customerID string) (int64, error) {
	accounts, err := r.ListByCustomerID(ctx, customerID)
	return int64(len(accounts)), err
}

func (r memoryAccounts) UpdateBalance(_ context.Context, id uint, balance decimal.Decimal) error {
	return r.s.do(func(d *memoryData) error {
		a, ok := d.accounts[id]
		if !ok {
			return models.ErrAccountNotFound
		}
		a.Balance = balance
		a.UpdatedAt = time.Now().UTC()
		d.accounts[id] = a
		return nil
	})
}

func (r memoryAccounts) Delete(_ context.Context, id uint) error {
	return r.s.do(func(d *memoryData) error {
		if _, ok := d.accounts[id]; !ok {
			return models.ErrAccountNotFound
		}
		delete(d.accounts, id)
		return nil
	})
}

type memoryTransactions struct{ s *MemoryStore }

func (r memoryTransactions) Create(_ context.Context, transaction *models.Transaction) error {
	return r.s.do(func(d *memoryData) error {
		transaction.ID = d.id("transactions")
		transaction.CreatedAt = time.Now().UTC()
		d.transactions[transaction.ID] = *transaction
		return nil
	})
}

func (r memoryTransactions) ListByAccountID(_ context.Context, accountID uint) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	err := r.s.do(func(d *memoryData) error {
		for _, t := range d.transactions {
			if t.BankAccountID == accountID {
				transactions = append(transactions, t)
			}
		}
		return nil
	})
	slices.SortFunc(transactions, func(a, b models.Transaction) int { return int(a.ID) - int(b.ID) })
	return transactions, err
}

func (r memoryTransactions) DeleteByAccountID(_ context.Context, accountID uint) error {
	return r.s.do(func(d *memoryData) error {
		maps.DeleteFunc(d.transactions, func(_ uint, t models.Transaction) bool {
			return t.BankAccountID == accountID
		})
		return nil
	})
}

type memoryLoans struct{ s *MemoryStore }

func (r memoryLoans) CreateRequest(_ context.Context, request *models.LoanRequest) error {
	return r.s.do(func(d *memoryData) error {
		request.ID = d.id("loan_requests")
		request.CreatedAt = time.Now().UTC()
		d.loanRequests[request.ID] = *request
		return nil
	})
}

func (r memoryLoans) ListRequestsByAccountID(_ context.Context, accountID uint) ([]models.LoanRequest, error) {
	requests := []models.LoanRequest{}
	err := r.s.do(func(d *memoryData) error {
		for _, lr := range d.loanRequests {
			if lr.BankAccountID == accountID {
				requests = append(requests, lr)
			}
		}
		return nil
	})
	slices.SortFunc(requests, func(a, b models.LoanRequest) int { return int(a.ID) - int(b.ID) })
	return requests, err
}

func (r memoryLoans) DeleteRequestsByAccountID(_ context.Context, accountID uint) error {
	return r.s.do(func(d *memoryData) error {
		maps.DeleteFunc(d.loanRequests, func(_ uint, lr models.LoanRequest) bool {
			return lr.BankAccountID == accountID
		})
		return nil
	})
}

func (r memoryLoans) CreateAccount(_ context.Context, account *models.LoanAccount) error {
	return r.s.do(func(d *memoryData) error {
		account.ID = d.id("loan_accounts")
		account.CreatedAt = time.Now().UTC()
		d.loanAccounts[account.ID] = *account
		return nil
	})
}

func (r memoryLoans) GetAccount(_ context.Context, id uint) (*models.LoanAccount, error) {
	var account models.LoanAccount
	err := r.s.do(func(d *memoryData) error {
		la, ok := d.loanAccounts[id]
		if !ok {
			return models.ErrLoanNotFound
		}
		account = la
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r memoryLoans) CountAccountsByAccountID(_ context.Context, accountID uint) (int64, error) {
	var count int64
	err := r.s.do(func(d *memoryData) error {
		for _, la := range d.loanAccounts {
			if la.BankAccountID == accountID {
				count++
			}
		}
		return nil
	})
	return count, err
}
