package command

import (
	"context"
	"log"
	"math/rand"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/events"
	"github.com/sgdesh/bank-api/internal/models"
	"github.com/sgdesh/bank-api/internal/repository"
)

const (
	loanApprovedMessage = "Loan approved and account created successfully"
	loanRejectedMessage = "Loan request rejected"
	loanPaidBackMessage = "Loan paid back successfully"
)

// Approver makes the accept/reject decision for a loan application.
type Approver interface {
	Approve() bool
}

// ApproverFunc adapts a plain function to Approver.
type ApproverFunc func() bool

func (f ApproverFunc) Approve() bool { return f() }

// CoinFlip approves half of all applications at random, regardless of
// amount, interest or account history.
type CoinFlip struct{}

func (CoinFlip) Approve() bool { return rand.Float64() < 0.5 }

// LoanCommandService handles loan applications and paybacks.
type LoanCommandService struct {
	store     repository.Store
	readRepo  *repository.LoanReadRepository
	approver  Approver
	publisher EventPublisher
}

func NewLoanCommandService(
	store repository.Store,
	readRepo *repository.LoanReadRepository,
	approver Approver,
	publisher EventPublisher,
) *LoanCommandService {
	return &LoanCommandService{
		store:     store,
		readRepo:  readRepo,
		approver:  approver,
		publisher: publisher,
	}
}

// ApplyLoan records the application and, when approved, opens a loan account
// with the same terms. Both rows are written in one unit.
func (s *LoanCommandService) ApplyLoan(ctx context.Context, cmd cqrs.ApplyLoanCommand) (*models.LoanDecision, error) {
	if err := models.CheckMoney("amount", cmd.Amount); err != nil {
		return nil, err
	}
	if err := models.CheckInterest(cmd.Interest); err != nil {
		return nil, err
	}
	var decision models.LoanDecision
	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		if _, err := tx.Accounts().GetByID(ctx, cmd.BankAccountID); err != nil {
			return err
		}

		request := &models.LoanRequest{
			Amount:        cmd.Amount,
			Interest:      cmd.Interest,
			BankAccountID: cmd.BankAccountID,
			Status:        models.LoanRejected,
		}
		approved := s.approver.Approve()
		if approved {
			request.Status = models.LoanApproved
		}
		if err := tx.Loans().CreateRequest(ctx, request); err != nil {
			return err
		}
		if !approved {
			decision = models.LoanDecision{Message: loanRejectedMessage, LoanRequest: request}
			return nil
		}

		account := &models.LoanAccount{
			Amount:        request.Amount,
			Interest:      request.Interest,
			BankAccountID: request.BankAccountID,
			LoanRequestID: request.ID,
		}
		if err := tx.Loans().CreateAccount(ctx, account); err != nil {
			return err
		}
		decision = models.LoanDecision{Message: loanApprovedMessage, LoanAccount: account}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if decision.Approved() {
		s.readRepo.CacheLoanAccount(ctx, decision.LoanAccount)
		s.publishDecision(ctx, events.LoanApproved, events.LoanDecidedEvent{
			LoanRequestID: decision.LoanAccount.LoanRequestID,
			LoanAccountID: decision.LoanAccount.ID,
			BankAccountID: decision.LoanAccount.BankAccountID,
			Amount:        decision.LoanAccount.Amount,
			Interest:      decision.LoanAccount.Interest,
		})
	} else {
		s.publishDecision(ctx, events.LoanRejected, events.LoanDecidedEvent{
			LoanRequestID: decision.LoanRequest.ID,
			BankAccountID: decision.LoanRequest.BankAccountID,
			Amount:        decision.LoanRequest.Amount,
			Interest:      decision.LoanRequest.Interest,
		})
	}
	return &decision, nil
}

// PaybackLoan only confirms that the loan account exists. No money moves and
// the loan account is kept.
func (s *LoanCommandService) PaybackLoan(ctx context.Context, cmd cqrs.PaybackLoanCommand) (string, error) {
	if _, err := s.readRepo.GetAccount(ctx, cmd.LoanAccountID); err != nil {
		return "", err
	}
	return loanPaidBackMessage, nil
}

func (s *LoanCommandService) publishDecision(ctx context.Context, eventType string, data events.LoanDecidedEvent) {
	if err := s.publisher.Publish(ctx, events.LoanEventsStream, eventType, data); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
