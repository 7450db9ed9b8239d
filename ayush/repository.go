package ayush

import (
	"context"
	"fmt"

	"travelflow/db"
)

// Repository is the persistence slice the AyushPay flows need.
type Repository interface {
	DuplicateCount(ctx context.Context, mobile, email string) (int64, error)
	InsertProposal(ctx context.Context, params InsertProposalParams) (db.Row, error)
	UpdateWallet(ctx context.Context, params WalletParams) (db.Row, error)
	Premium(ctx context.Context, agentID string) (db.Row, error)
}

// InsertProposalParams enumerates insertAyushProposal's positional arguments.
type InsertProposalParams struct {
	AgentID        string
	FirstName      string
	LastName       string
	Email          string
	Mobile         string
	PAN            string
	Pincode        string
	SubscriptionID string
	PlanName       string
	ApplicationID  string
	TransactionID  string
	PlanID         string
	Amount         string
	RawDetail      string
}

// WalletParams enumerates updateAyushProposalWallet's positional arguments.
// Empty strings cross the façade as NULL.
type WalletParams struct {
	AgentID         string
	AyushID         string
	PaymentMode     string
	PremiumAmount   string
	Premium         string
	GSTAmount       string
	CommissionAgent string
	TDSAmount       string
	PayoutPct       string
}

// ProcRepository calls the store's procedures through the façade.
type ProcRepository struct {
	caller db.Caller
}

func NewRepository(caller db.Caller) *ProcRepository {
	return &ProcRepository{caller: caller}
}

func (r *ProcRepository) DuplicateCount(ctx context.Context, mobile, email string) (int64, error) {
	sets, err := r.caller.Call(ctx, procCheckDuplicate, mobile, email)
	if err != nil {
		return 0, err
	}
	row := sets.FirstRow()
	if row == nil {
		return 0, fmt.Errorf("ayush: duplicate check returned no row")
	}
	return toInt64(row["DuplicateCount"]), nil
}

func (r *ProcRepository) InsertProposal(ctx context.Context, p InsertProposalParams) (db.Row, error) {
	sets, err := r.caller.Call(ctx, procInsertProposal,
		p.AgentID, p.FirstName, p.LastName, p.Email, p.Mobile, p.PAN, p.Pincode,
		p.SubscriptionID, p.PlanName, p.ApplicationID, p.TransactionID,
		p.PlanID, p.Amount, p.RawDetail,
	)
	if err != nil {
		return nil, err
	}
	return sets.FirstRow(), nil
}

func (r *ProcRepository) UpdateWallet(ctx context.Context, p WalletParams) (db.Row, error) {
	sets, err := r.caller.Call(ctx, procUpdateWallet,
		p.AgentID, p.AyushID, nullable(p.PaymentMode), nullable(p.PremiumAmount),
		nullable(p.Premium), nullable(p.GSTAmount), nullable(p.CommissionAgent),
		nullable(p.TDSAmount), nullable(p.PayoutPct),
	)
	if err != nil {
		return nil, err
	}
	return sets.FirstRow(), nil
}

func (r *ProcRepository) Premium(ctx context.Context, agentID string) (db.Row, error) {
	sets, err := r.caller.Call(ctx, procGetPremium, agentID)
	if err != nil {
		return nil, err
	}
	return sets.FirstRow(), nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}
