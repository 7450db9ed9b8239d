package ayush

import (
	"context"
	"fmt"

	"travelflow/db"
)

// UpdateWallet settles an issued proposal against the agent's wallet. The
// money fields pass through to the procedure exactly as received; fields the
// caller omits cross the façade as NULL and the store derives them (18% GST,
// payout% commission, 2% TDS of commission).
func (s *Service) UpdateWallet(ctx context.Context, req WalletRequest) (db.Row, error) {
	if req.AgentID == "" || req.AyushID == "" || req.PremiumAmount == "" {
		return nil, ErrMissingWalletFields
	}

	row, err := s.repo.UpdateWallet(ctx, WalletParams{
		AgentID:         req.AgentID,
		AyushID:         req.AyushID,
		PaymentMode:     req.PaymentMode,
		PremiumAmount:   req.PremiumAmount,
		Premium:         req.Premium,
		GSTAmount:       req.GSTAmount,
		CommissionAgent: req.CommissionAgent,
		TDSAmount:       req.TDSAmount,
		PayoutPct:       req.PayoutPct,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "ayush wallet settled",
		"agent_id", req.AgentID, "ayush_id", req.AyushID)

	return row, nil
}

// Premium returns the agent's premium summary row.
func (s *Service) Premium(ctx context.Context, agentID string) (db.Row, error) {
	if agentID == "" {
		return nil, fmt.Errorf("ayush: AgentId is required")
	}
	row, err := s.repo.Premium(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrPremiumNotFound
	}
	return row, nil
}
