package ayush

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"travelflow/provider"
	"travelflow/workflow"
)

var (
	// ErrMissingFields signals required proposal fields were absent.
	ErrMissingFields = errors.New("ayush: missing required fields")
	// ErrMissingWalletFields signals required wallet fields were absent.
	ErrMissingWalletFields = errors.New("ayush: AgentId, Ayush_id and Selected_PremiumAmount are required")
	// ErrMissingDuplicateFields signals the precheck body was incomplete.
	ErrMissingDuplicateFields = errors.New("ayush: mobile and email are required")
	// ErrPremiumNotFound signals no premium row exists for the agent.
	ErrPremiumNotFound = errors.New("ayush: no premium details for agent")
)

// Service runs the AyushPay subscription-issuance workflow and its sibling
// flows against one configured client.
type Service struct {
	client  *provider.Client
	tokens  *provider.TokenCache
	repo    Repository
	log     *slog.Logger
	mintTxn func() string
}

func NewService(client *provider.Client, tokens *provider.TokenCache, repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		client:  client,
		tokens:  tokens,
		repo:    repo,
		log:     log,
		mintTxn: MintTransactionID,
	}
}

// CheckDuplicate runs the precheck procedure. It never contacts the provider.
func (s *Service) CheckDuplicate(ctx context.Context, req DuplicateCheckRequest) (int64, error) {
	if req.Mobile == "" || req.Email == "" {
		return 0, ErrMissingDuplicateFields
	}
	return s.repo.DuplicateCount(ctx, req.Mobile, req.Email)
}

// CreateProposal executes the seven ordered steps against AyushPay and, on
// success of the last provider step, commits the correlation row. Side-effect
// steps run at most once; nothing is retried and nothing is rolled back.
func (s *Service) CreateProposal(ctx context.Context, req ProposalRequest) (ProposalResult, error) {
	if req.AgentID == "" || req.Mobile == "" || req.FirstName == "" || req.PANNumber == "" || req.Email == "" {
		return ProposalResult{}, ErrMissingFields
	}

	wc, err := workflow.Run(ctx, s.proposalSteps(req))
	if err != nil {
		if provider.KindOf(err) == provider.KindAuthFailed {
			s.tokens.Invalidate()
		}
		return ProposalResult{}, err
	}

	result := ProposalResult{
		ApplicationID:  wc.String("applicationId"),
		SubscriptionID: wc.String("subscriptionId"),
		TransactionID:  wc.String("txtid"),
		Amount:         req.Amount,
	}
	if raw, ok := wc.Get("detail"); ok {
		result.Details = raw.(json.RawMessage)
	}

	row, err := s.repo.InsertProposal(ctx, InsertProposalParams{
		AgentID:        req.AgentID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Mobile:         req.Mobile,
		PAN:            req.PANNumber,
		Pincode:        req.Pincode,
		SubscriptionID: result.SubscriptionID,
		PlanName:       req.PlanName,
		ApplicationID:  result.ApplicationID,
		TransactionID:  result.TransactionID,
		PlanID:         req.PlanID,
		Amount:         req.Amount,
		RawDetail:      string(result.Details),
	})
	if err != nil {
		// The subscription is live on the provider side; surface the
		// correlation ids so an operator can reconcile manually.
		return ProposalResult{}, provider.NewError(provider.KindPostCommitPersistence, "persist-proposal", err.Error()).
			Wrap(err).
			WithPayload(map[string]any{
				"Ayush_ApplicationId": result.ApplicationID,
				"SubscriptionId":      result.SubscriptionID,
				"TransactionId":       result.TransactionID,
			})
	}
	result.Row = row

	s.log.InfoContext(ctx, "ayush proposal issued",
		"agent_id", req.AgentID,
		"application_id", result.ApplicationID,
		"txtid", result.TransactionID)

	return result, nil
}

func (s *Service) proposalSteps(req ProposalRequest) []workflow.Step {
	return []workflow.Step{
		{Name: "generate-token", Run: func(ctx context.Context, wc *workflow.Context) error {
			tok, err := s.tokens.Get(ctx)
			if err != nil {
				return err
			}
			wc.Set("token", tok.Value)
			return nil
		}},
		{Name: "register-application", Run: func(ctx context.Context, wc *workflow.Context) error {
			resp, err := s.client.Post(ctx, "/v3/apis/webapi/application/register/",
				map[string]string{"mobile": req.Mobile}, s.bearer(wc))
			if e := provider.Map("register-application", resp, err); e != nil {
				return e
			}
			var envelope struct {
				Msg struct {
					ID json.Number `json:"id"`
				} `json:"msg"`
			}
			if err := resp.Decode(&envelope); err != nil || envelope.Msg.ID.String() == "" {
				return provider.NewError(provider.KindEnvelopeMalformed, "register-application", "application id missing from envelope")
			}
			wc.Set("applicationId", envelope.Msg.ID.String())
			return nil
		}},
		{Name: "personal-detail", Run: func(ctx context.Context, wc *workflow.Context) error {
			path := fmt.Sprintf("/apis/infin/v2/applications/%s/personal-detail/", wc.String("applicationId"))
			body := map[string]string{
				"first_name": req.FirstName,
				"last_name":  req.LastName,
				"pan_number": req.PANNumber,
				"email":      req.Email,
				"pincode":    req.Pincode,
			}
			resp, err := s.client.Post(ctx, path, body, s.bearer(wc))
			if e := provider.Map("personal-detail", resp, err); e != nil {
				return e
			}
			// Response body is irrelevant on success.
			return nil
		}},
		{Name: "list-subscriptions", Run: func(ctx context.Context, wc *workflow.Context) error {
			path := fmt.Sprintf("/v3/apis/webapi/v4/applications/%s/subscriptions/", wc.String("applicationId"))
			resp, err := s.client.Get(ctx, path, s.bearer(wc))
			if e := provider.Map("list-subscriptions", resp, err); e != nil {
				return e
			}
			var envelope struct {
				Msg struct {
					Items []struct {
						Subscription struct {
							ID json.Number `json:"id"`
						} `json:"subscription"`
					} `json:"items"`
				} `json:"msg"`
			}
			if err := resp.Decode(&envelope); err != nil {
				return provider.NewError(provider.KindEnvelopeMalformed, "list-subscriptions", "undecodable subscription list")
			}
			if len(envelope.Msg.Items) == 0 {
				return provider.NewError(provider.KindNoSubscription, "list-subscriptions", "no subscription plans available for this user")
			}
			id := envelope.Msg.Items[0].Subscription.ID
			if id.String() == "" {
				return provider.NewError(provider.KindInvalidSubscription, "list-subscriptions", "subscription object missing id")
			}
			wc.Set("subscriptionId", id.String())
			return nil
		}},
		{Name: "mint-transaction-id", Run: func(ctx context.Context, wc *workflow.Context) error {
			wc.Set("txtid", s.mintTxn())
			return nil
		}},
		{Name: "apply-subscription", Run: func(ctx context.Context, wc *workflow.Context) error {
			path := fmt.Sprintf("/v3/apis/webapi/v4/applications/%s/apply-subscription/", wc.String("applicationId"))
			body := map[string]string{
				"subscription_id": wc.String("subscriptionId"),
				"txtid":           wc.String("txtid"),
			}
			resp, err := s.client.Post(ctx, path, body, s.bearer(wc))
			if e := provider.Map("apply-subscription", resp, err); e != nil {
				return e
			}
			return nil
		}},
		{Name: "subscription-detail", Run: func(ctx context.Context, wc *workflow.Context) error {
			path := fmt.Sprintf("/apis/infin/v2/applications/%s/subscription-detail/", wc.String("applicationId"))
			resp, err := s.client.Get(ctx, path, s.bearer(wc))
			if e := provider.Map("subscription-detail", resp, err); e != nil {
				return e
			}
			// Captured verbatim into the persisted payload.
			wc.Set("detail", json.RawMessage(resp.Body))
			return nil
		}},
	}
}

func (s *Service) bearer(wc *workflow.Context) map[string]string {
	return map[string]string{"Authorization": "Bearer " + wc.String("token")}
}
