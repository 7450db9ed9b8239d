package ayush

import (
	"context"
	"errors"
	"testing"
)

func TestUpdateWallet_PassesAmountsThroughUnchanged(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(nil, nil, repo, nil)

	_, err := svc.UpdateWallet(context.Background(), WalletRequest{
		AgentID:         "42",
		AyushID:         "7",
		PremiumAmount:   "5000",
		Premium:         "5000",
		GSTAmount:       "901",
		CommissionAgent: "499",
		TDSAmount:       "11",
		PayoutPct:       "10",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if len(repo.walletParams) != 1 {
		t.Fatalf("expected one wallet call, got %d", len(repo.walletParams))
	}
	p := repo.walletParams[0]
	if p.GSTAmount != "901" || p.CommissionAgent != "499" || p.TDSAmount != "11" {
		t.Errorf("expected caller values untouched, got %+v", p)
	}
}

func TestUpdateWallet_OmittedAmountsStayEmpty(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(nil, nil, repo, nil)

	_, err := svc.UpdateWallet(context.Background(), WalletRequest{
		AgentID:       "42",
		AyushID:       "7",
		PremiumAmount: "5000",
		PayoutPct:     "10",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	p := repo.walletParams[0]
	if p.GSTAmount != "" || p.CommissionAgent != "" || p.TDSAmount != "" {
		t.Errorf("expected omitted amounts to stay empty for the store to derive, got %+v", p)
	}
	if p.PayoutPct != "10" {
		t.Errorf("expected payout percentage forwarded, got %q", p.PayoutPct)
	}
}

func TestUpdateWallet_NonNumericPremiumPassesThrough(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(nil, nil, repo, nil)

	_, err := svc.UpdateWallet(context.Background(), WalletRequest{
		AgentID:       "42",
		AyushID:       "7",
		PremiumAmount: "not-a-number",
	})
	if err != nil {
		t.Fatalf("expected pass-through without local validation, got %v", err)
	}
	if repo.walletParams[0].PremiumAmount != "not-a-number" {
		t.Errorf("expected premium forwarded verbatim, got %q", repo.walletParams[0].PremiumAmount)
	}
}

func TestUpdateWallet_RequiresFields(t *testing.T) {
	svc := NewService(nil, nil, &fakeRepo{}, nil)

	_, err := svc.UpdateWallet(context.Background(), WalletRequest{AgentID: "42"})
	if !errors.Is(err, ErrMissingWalletFields) {
		t.Fatalf("expected ErrMissingWalletFields, got %v", err)
	}
}

func TestPremium_NotFound(t *testing.T) {
	svc := NewService(nil, nil, &fakeRepo{}, nil)

	_, err := svc.Premium(context.Background(), "42")
	if !errors.Is(err, ErrPremiumNotFound) {
		t.Fatalf("expected ErrPremiumNotFound, got %v", err)
	}
}
