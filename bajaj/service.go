package bajaj

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"travelflow/config"
	"travelflow/db"
	"travelflow/provider"
)

// ErrMissingIssueFields signals AgentId or QuoteNo was absent.
var ErrMissingIssueFields = errors.New("bajaj: AgentId and QuoteNo are required")

// Service drives the two SaveMasterplan phases: CALC_PREM quotes without
// persistence, ISSUE_POLICY issues and persists header plus travellers.
type Service struct {
	client *provider.Client
	repo   Repository
	cfg    config.ProviderConfig
	log    *slog.Logger

	// fanout bounds the concurrent traveller inserts to pool size minus
	// one, keeping a connection free for other requests' header rows.
	fanout int
}

func NewService(client *provider.Client, repo Repository, cfg config.ProviderConfig, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		client: client,
		repo:   repo,
		cfg:    cfg,
		log:    log,
		fanout: db.PoolSize - 1,
	}
}

// CalcPremium posts the quote request and returns the provider envelope
// members unchanged. Nothing is persisted.
func (s *Service) CalcPremium(ctx context.Context, req PlanRequest) (CalcResult, error) {
	payload := buildPayload(s.cfg, req, serviceModeCalc, "")

	envelope, _, err := s.post(ctx, "calc-premium", payload)
	if err != nil {
		return CalcResult{}, err
	}

	return CalcResult{
		QuoteNo:          envelope.QuoteNo,
		PremiumDtls:      envelope.PremiumDtls,
		PolicyData:       envelope.PolicyData,
		ApplicationError: envelope.ApplicationError,
	}, nil
}

// IssuePolicy posts the issue request with the caller's quote number and, on
// provider success, persists the header row and every traveller row. The
// provider call happens exactly once; a persistence failure after it surfaces
// as post-commit-persistence-failed carrying the provider identifiers.
func (s *Service) IssuePolicy(ctx context.Context, req PlanRequest) (IssueResult, error) {
	if req.AgentID == "" || req.QuoteNo == "" {
		return IssueResult{}, ErrMissingIssueFields
	}

	payload := buildPayload(s.cfg, req, serviceModeIssue, req.QuoteNo)

	envelope, raw, err := s.post(ctx, "issue-policy", payload)
	if err != nil {
		return IssueResult{}, err
	}

	policyNo := "PENDING"
	var pd policyData
	if len(envelope.PolicyData) > 0 && json.Unmarshal(envelope.PolicyData, &pd) == nil && pd.PolicyNo != "" {
		policyNo = pd.PolicyNo
	}

	basePrem, finalPrem := "0", "0"
	var prem premiumDtls
	if len(envelope.PremiumDtls) > 0 && json.Unmarshal(envelope.PremiumDtls, &prem) == nil {
		if prem.BasePrem.String() != "" {
			basePrem = prem.BasePrem.String()
		}
		if prem.FinalPremium.String() != "" {
			finalPrem = prem.FinalPremium.String()
		}
	}

	rawRequest, err := json.Marshal(payload)
	if err != nil {
		return IssueResult{}, s.postCommitError("persist-header", err, req.QuoteNo, policyNo)
	}

	bajajID, err := s.repo.SaveHeader(ctx, HeaderParams{
		AgentID:             req.AgentID,
		ServiceMode:         serviceModeIssue,
		QuoteNo:             req.QuoteNo,
		PolicyNo:            policyNo,
		Plan:                req.Plan,
		GeographicalCover:   req.GeographicalCover,
		CountryName:         req.CountryName,
		StartDate:           ToDBDate(req.StartDate),
		EndDate:             ToDBDate(req.EndDate),
		JourneyFromDate:     ToDBDate(req.JourneyFromDate),
		JourneyToDate:       ToDBDate(req.JourneyToDate),
		NoOfDays:            req.NoOfDays.String(),
		BasePremium:         basePrem,
		FinalPremium:        finalPrem,
		RawRequest:          string(rawRequest),
		RawResponse:         string(raw),
		Proposer:            req.ProposerDetails,
		ProposerDateOfBirth: ToDBDate(req.ProposerDetails.DateOfBirth),
	})
	if err != nil {
		return IssueResult{}, s.postCommitError("persist-header", err, req.QuoteNo, policyNo)
	}

	if err := s.saveTravellers(ctx, bajajID, req); err != nil {
		// Rows that made it stay; the header remains the anchor for
		// manual reconciliation.
		return IssueResult{}, s.postCommitError("persist-travellers", err, req.QuoteNo, policyNo)
	}

	s.log.InfoContext(ctx, "bajaj policy issued",
		"agent_id", req.AgentID,
		"policy_no", policyNo,
		"quote_no", req.QuoteNo,
		"travellers", len(req.TravellerDetails))

	return IssueResult{
		AgentID:      req.AgentID,
		PolicyNo:     policyNo,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BasePremium:  basePrem,
		FinalPremium: finalPrem,
		BajajID:      bajajID,
	}, nil
}

// post executes one SaveMasterplan call and applies the taxonomy: transport
// and status mapping first, then the envelope's applicationError check.
func (s *Service) post(ctx context.Context, step string, payload map[string]any) (apiEnvelope, []byte, error) {
	resp, err := s.client.Post(ctx, "", payload, nil)
	if e := provider.Map(step, resp, err); e != nil {
		return apiEnvelope{}, nil, e
	}

	var envelope apiEnvelope
	if err := resp.Decode(&envelope); err != nil {
		return apiEnvelope{}, nil, provider.NewError(provider.KindEnvelopeMalformed, step, "undecodable provider envelope").Wrap(err)
	}

	// applicationError is a required envelope member; only errorCode "0"
	// means success. A 2xx body without it is malformed, not a success.
	if len(envelope.ApplicationError) == 0 {
		return apiEnvelope{}, nil, provider.NewError(provider.KindEnvelopeMalformed, step, "applicationError missing from envelope")
	}
	var appErr applicationError
	if err := json.Unmarshal(envelope.ApplicationError, &appErr); err != nil {
		return apiEnvelope{}, nil, provider.NewError(provider.KindEnvelopeMalformed, step, "undecodable applicationError")
	}
	if appErr.ErrorCode == "" {
		return apiEnvelope{}, nil, provider.NewError(provider.KindEnvelopeMalformed, step, "applicationError.errorCode missing from envelope")
	}
	if appErr.ErrorCode != "0" {
		message := appErr.ErrorDescription
		if message == "" {
			message = "provider rejected the request"
		}
		return apiEnvelope{}, nil, provider.NewError(provider.KindApplicationError, step, message).
			WithPayload(map[string]any{"errorCode": appErr.ErrorCode, "errorDescription": appErr.ErrorDescription})
	}

	return envelope, resp.Body, nil
}

func (s *Service) saveTravellers(ctx context.Context, bajajID any, req PlanRequest) error {
	if len(req.TravellerDetails) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)
	for _, t := range req.TravellerDetails {
		g.Go(func() error {
			return s.repo.SaveTraveller(gctx, TravellerParams{
				BajajID:     bajajID,
				AgentID:     req.AgentID,
				Traveller:   t,
				DateOfBirth: ToDBDate(t.DateOfBirth),
			})
		})
	}
	return g.Wait()
}

func (s *Service) postCommitError(step string, cause error, quoteNo, policyNo string) *provider.Error {
	return provider.NewError(provider.KindPostCommitPersistence, step, cause.Error()).
		Wrap(cause).
		WithPayload(map[string]any{
			"QuoteNo":  quoteNo,
			"PolicyNo": policyNo,
		})
}
