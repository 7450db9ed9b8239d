package bajaj

import "encoding/json"

// Procedure names are a load-bearing contract with the store.
const (
	procSaveHeader    = "saveBajajHeader"
	procSaveTraveller = "saveBajajTraveller"
)

// Traveller is one insured person. Tags mirror the UI and provider contract.
type Traveller struct {
	BeforeTitle          string `json:"beforeTitle"`
	Gender               string `json:"gender"`
	FirstName            string `json:"firstName"`
	MiddleName           string `json:"middleName,omitempty"`
	LastName             string `json:"LastName"`
	DateOfBirth          string `json:"dateOfBirth"`
	RelationWithProposer string `json:"relationWithProposer"`
	PassportNumber       string `json:"passportNumber"`
	NomineeName          string `json:"nomineeName"`
	NomineeRelation      string `json:"nomineeRelation"`
	EmailID              string `json:"trvEmailId"`
	MobileNumber         string `json:"trvMobileNumber"`
	PreExistingDisease   string `json:"anyPreExistingDisease,omitempty"`
}

// Proposer is the single proposal-level person block.
type Proposer struct {
	BeforeTitle    string `json:"beforeTitle"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"LastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	EmailID        string `json:"emailId"`
	MobileNumber   string `json:"mobileNumber"`
	Gender         string `json:"gender"`
	Address        string `json:"Address"`
	City           string `json:"City"`
	State          string `json:"State"`
	Pincode        string `json:"Pincode"`
	PassportNumber string `json:"passportNumber"`
}

// PlanRequest is the shared inbound body of both phases. Dates arrive as
// dd/MM/yyyy and keep that format on the wire to Bajaj; only the store sees
// the converted form.
type PlanRequest struct {
	AgentID           string         `json:"AgentId"`
	QuoteNo           string         `json:"QuoteNo"`
	StartDate         string         `json:"StartDate"`
	EndDate           string         `json:"EndDate"`
	JourneyFromDate   string         `json:"JourneyFromDate"`
	JourneyToDate     string         `json:"JourneyToDate"`
	NoOfDays          json.Number    `json:"NoOfDays"`
	Plan              string         `json:"Plan"`
	GeographicalCover string         `json:"GeographicalCover"`
	CountryName       string         `json:"CountryName"`
	TravellerDetails  []Traveller    `json:"TravellerDetails"`
	ProposerDetails   Proposer       `json:"ProposerDetails"`
	TripType          map[string]any `json:"TripType"`
}

// CalcResult passes the quote envelope through to the caller unchanged.
type CalcResult struct {
	QuoteNo          string          `json:"pQuoteNo"`
	PremiumDtls      json.RawMessage `json:"pPremiumDtls"`
	PolicyData       json.RawMessage `json:"pPolicyData"`
	ApplicationError json.RawMessage `json:"applicationError"`
}

// IssueResult summarises a persisted issuance.
type IssueResult struct {
	AgentID      string `json:"AgentId"`
	PolicyNo     string `json:"PolicyNo"`
	StartDate    string `json:"StartDate"`
	EndDate      string `json:"EndDate"`
	BasePremium  string `json:"BasePremium"`
	FinalPremium string `json:"FinalPremium"`
	BajajID      any    `json:"dbId"`
}

// apiEnvelope is the provider response; the raw members are preserved
// verbatim for pass-through and persistence.
type apiEnvelope struct {
	QuoteNo          string          `json:"pQuoteNo"`
	PremiumDtls      json.RawMessage `json:"pPremiumDtls"`
	PolicyData       json.RawMessage `json:"pPolicyData"`
	ApplicationError json.RawMessage `json:"applicationError"`
}

type applicationError struct {
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

type premiumDtls struct {
	BasePrem     json.Number `json:"basePrem"`
	FinalPremium json.Number `json:"finalPremium"`
}

type policyData struct {
	PolicyNo string `json:"policy_no"`
}
