package ayush

import (
	"encoding/json"

	"travelflow/db"
)

// Procedure names are a load-bearing contract with the store: the name and
// the position of every argument must match the procedure definitions.
const (
	procInsertProposal = "insertAyushProposal"
	procUpdateWallet   = "updateAyushProposalWallet"
	procCheckDuplicate = "checkAyushDuplicate"
	procGetPremium     = "getAyushPremium"
)

// ProposalRequest is the inbound body for the 7-step issuance workflow.
// Field tags mirror the UI contract; decoding is case-sensitive.
type ProposalRequest struct {
	AgentID   string `json:"AgentId"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	PANNumber string `json:"pan_number"`
	Pincode   string `json:"pincode"`
	PlanID    string `json:"Ayushpayplan_id"`
	PlanName  string `json:"Ayushpay_PlanName"`
	Amount    string `json:"amount"`
}

// ProposalResult bundles the local row with the externally minted identifiers.
type ProposalResult struct {
	Row            db.Row
	ApplicationID  string
	SubscriptionID string
	TransactionID  string
	Amount         string
	Details        json.RawMessage
}

// DuplicateCheckRequest is the precheck body.
type DuplicateCheckRequest struct {
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

// WalletRequest is the post-issuance settlement body. The money fields cross
// the persistence boundary as strings; missing derived fields are computed
// from Selected_PremiumAmount and payout_percentage.
type WalletRequest struct {
	AgentID         string `json:"AgentId"`
	AyushID         string `json:"Ayush_id"`
	PaymentMode     string `json:"Selected_Payment_Mode"`
	PremiumAmount   string `json:"Selected_PremiumAmount"`
	Premium         string `json:"premium_amount"`
	GSTAmount       string `json:"gst_amount"`
	CommissionAgent string `json:"commission_agent"`
	TDSAmount       string `json:"tds_amount"`
	PayoutPct       string `json:"payout_percentage"`
}
