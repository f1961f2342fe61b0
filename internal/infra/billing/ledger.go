// Package billing holds the credit ledger and the payment collaborator
// boundary. The simulated provider settles after a configured delay; a real
// gateway drops in behind the same interface.
package billing

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"nexus/internal/domain"
)

// Plan is one purchasable credit pack.
type Plan struct {
	ID       string
	Name     string
	Credits  int
	Price    int
	Popular  bool
	Features []string
}

// Plans returns the fixed plan table.
func Plans() []Plan {
	return []Plan{
		{ID: "micro", Name: "Micro", Credits: 100, Price: 100, Features: []string{"Valid for 7 days", "Basic Tool Access"}},
		{ID: "starter", Name: "Starter", Credits: 500, Price: 500, Features: []string{"Valid for 1 month", "Standard Support", "All Tools Access"}},
		{ID: "standard", Name: "Standard", Credits: 1000, Price: 1000, Popular: true, Features: []string{"Valid for 3 months", "Priority Processing", "GPT-4 Access"}},
		{ID: "enterprise", Name: "Power User", Credits: 5000, Price: 5000, Features: []string{"No Expiration", "Dedicated GPU", "API Access", "24/7 Support"}},
	}
}

// PlanByID looks a plan up in the fixed table.
func PlanByID(id string) (Plan, error) {
	for _, plan := range Plans() {
		if plan.ID == id {
			return plan, nil
		}
	}
	return Plan{}, domain.Wrap(domain.CodeNotFound, "billing.PlanByID", domain.ErrUnknownPlan)
}

// PaymentProvider charges for a plan. It either settles or returns an
// error; the ledger performs no retries.
type PaymentProvider interface {
	Charge(ctx context.Context, planID string, amount int) error
}

// SimulatedProvider fabricates a successful payment after a fixed delay.
type SimulatedProvider struct {
	delay time.Duration
}

func NewSimulatedProvider(delay time.Duration) *SimulatedProvider {
	return &SimulatedProvider{delay: delay}
}

func (p *SimulatedProvider) Charge(ctx context.Context, _ string, _ int) error {
	if p.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return domain.E(domain.CodeCanceled, "billing.Charge", "payment canceled", ctx.Err())
	}
}

var _ PaymentProvider = (*SimulatedProvider)(nil)

// Ledger tracks the credit balance. Credits are added only after the
// payment provider settles.
type Ledger struct {
	mu       sync.Mutex
	balance  int
	provider PaymentProvider
	logger   *zap.Logger
}

func NewLedger(initial int, provider PaymentProvider, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if initial < 0 {
		initial = 0
	}
	return &Ledger{balance: initial, provider: provider, logger: logger.Named("billing")}
}

func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Purchase charges the plan and credits the balance, returning the new
// balance. The charge happens outside the lock; a slow settle never blocks
// balance reads.
func (l *Ledger) Purchase(ctx context.Context, planID string) (int, error) {
	plan, err := PlanByID(planID)
	if err != nil {
		return l.Balance(), err
	}
	if err := l.provider.Charge(ctx, plan.ID, plan.Price); err != nil {
		return l.Balance(), err
	}

	l.mu.Lock()
	l.balance += plan.Credits
	balance := l.balance
	l.mu.Unlock()

	l.logger.Info("purchase settled",
		zap.String("plan", plan.ID),
		zap.Int("credits", plan.Credits),
		zap.Int("balance", balance),
	)
	return balance, nil
}

// Spend deducts credits, rejecting overdrafts.
func (l *Ledger) Spend(credits int) (int, error) {
	if credits < 0 {
		return l.Balance(), domain.E(domain.CodeInvalidArgument, "billing.Spend", "credits must be non-negative", nil)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if credits > l.balance {
		return l.balance, domain.Wrap(domain.CodeFailedPrecond, "billing.Spend", domain.ErrInsufficientCredits)
	}
	l.balance -= credits
	return l.balance, nil
}
