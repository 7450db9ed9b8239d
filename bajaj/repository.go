package bajaj

import (
	"context"
	"fmt"

	"travelflow/db"
)

// Repository is the persistence slice of the issue phase: one header row plus
// one row per traveller.
type Repository interface {
	SaveHeader(ctx context.Context, params HeaderParams) (any, error)
	SaveTraveller(ctx context.Context, params TravellerParams) error
}

// HeaderParams enumerates saveBajajHeader's 28 positional arguments. Date
// fields carry the store format (yyyy-MM-dd) or nil.
type HeaderParams struct {
	AgentID           string
	ServiceMode       string
	QuoteNo           string
	PolicyNo          string
	Plan              string
	GeographicalCover string
	CountryName       string
	StartDate         any
	EndDate           any
	JourneyFromDate   any
	JourneyToDate     any
	NoOfDays          string
	BasePremium       string
	FinalPremium      string
	RawRequest        string
	RawResponse       string

	Proposer            Proposer
	ProposerDateOfBirth any
}

// TravellerParams enumerates saveBajajTraveller's positional arguments.
type TravellerParams struct {
	BajajID     any
	AgentID     string
	Traveller   Traveller
	DateOfBirth any
}

type ProcRepository struct {
	caller db.Caller
}

func NewRepository(caller db.Caller) *ProcRepository {
	return &ProcRepository{caller: caller}
}

func (r *ProcRepository) SaveHeader(ctx context.Context, p HeaderParams) (any, error) {
	sets, err := r.caller.Call(ctx, procSaveHeader,
		p.AgentID, p.ServiceMode, p.QuoteNo, p.PolicyNo,
		p.Plan, p.GeographicalCover, p.CountryName,
		p.StartDate, p.EndDate, p.JourneyFromDate, p.JourneyToDate, p.NoOfDays,
		p.BasePremium, p.FinalPremium,
		p.RawRequest, p.RawResponse,
		p.Proposer.BeforeTitle, p.Proposer.FirstName, p.Proposer.LastName,
		p.ProposerDateOfBirth, p.Proposer.EmailID, p.Proposer.MobileNumber,
		p.Proposer.Gender, p.Proposer.Address, p.Proposer.City, p.Proposer.State,
		p.Proposer.Pincode, p.Proposer.PassportNumber,
	)
	if err != nil {
		return nil, err
	}
	row := sets.FirstRow()
	if row == nil {
		return nil, fmt.Errorf("bajaj: header insert returned no row")
	}
	id, ok := row["BajajId"]
	if !ok {
		return nil, fmt.Errorf("bajaj: header insert returned no BajajId")
	}
	return id, nil
}

func (r *ProcRepository) SaveTraveller(ctx context.Context, p TravellerParams) error {
	t := p.Traveller
	_, err := r.caller.Call(ctx, procSaveTraveller,
		p.BajajID, p.AgentID,
		t.BeforeTitle, t.Gender, t.FirstName, t.MiddleName, t.LastName,
		p.DateOfBirth, t.RelationWithProposer, t.PassportNumber,
		t.NomineeName, t.NomineeRelation, t.EmailID, t.MobileNumber,
		preExistingOrDefault(t.PreExistingDisease),
	)
	return err
}

func preExistingOrDefault(v string) string {
	if v == "" {
		return "No"
	}
	return v
}
