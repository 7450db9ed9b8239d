package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// procedureSuite is the store contract the repositories call through the
// procedure façade: tables plus one set-returning function per procedure.
// Argument positions must match the repository call sites exactly.
const procedureSuite = `
CREATE TABLE IF NOT EXISTS ayush_proposals (
	id bigserial PRIMARY KEY,
	agent_id text NOT NULL,
	first_name text, last_name text, email text, mobile text,
	pan_number text, pincode text,
	subscription_id text, plan_name text, application_id text,
	transaction_id text, plan_id text, amount text,
	detail_json text,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS ayush_wallet (
	id bigserial PRIMARY KEY,
	agent_id text NOT NULL,
	ayush_id text NOT NULL,
	payment_mode text, premium_amount text, premium text,
	gst_amount text, commission_agent text, tds_amount text,
	payout_percentage text,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bajaj_policies (
	id bigserial PRIMARY KEY,
	agent_id text NOT NULL,
	service_mode text, quote_no text, policy_no text,
	plan text, geographical_cover text, country_name text,
	start_date date, end_date date, journey_from date, journey_to date,
	no_of_days text, base_premium text, final_premium text,
	raw_request text, raw_response text,
	proposer_title text, proposer_first_name text, proposer_last_name text,
	proposer_dob date, proposer_email text, proposer_mobile text,
	proposer_gender text, proposer_address text, proposer_city text,
	proposer_state text, proposer_pincode text, proposer_passport text,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bajaj_travellers (
	id bigserial PRIMARY KEY,
	bajaj_id bigint NOT NULL REFERENCES bajaj_policies(id),
	agent_id text,
	before_title text, gender text, first_name text, middle_name text,
	last_name text, date_of_birth date, relation text, passport_number text,
	nominee_name text, nominee_relation text, email text, mobile text,
	pre_existing_disease text
);

CREATE TABLE IF NOT EXISTS logins (
	uid text PRIMARY KEY,
	agent_id text, agent_code text, full_name text,
	email text, mobile text UNIQUE, emp_type text,
	password_hash text, gender text, admin_approved text,
	payout text, payment_mode text
);

CREATE OR REPLACE FUNCTION checkAyushDuplicate(p_mobile text, p_email text)
RETURNS TABLE("DuplicateCount" bigint) AS $$
	SELECT count(*) FROM ayush_proposals
	WHERE mobile = p_mobile OR email = p_email
$$ LANGUAGE sql;

CREATE OR REPLACE FUNCTION insertAyushProposal(
	p_agent_id text, p_first_name text, p_last_name text, p_email text,
	p_mobile text, p_pan text, p_pincode text, p_subscription_id text,
	p_plan_name text, p_application_id text, p_transaction_id text,
	p_plan_id text, p_amount text, p_detail text)
RETURNS TABLE("AyushId" bigint) AS $$
	INSERT INTO ayush_proposals (agent_id, first_name, last_name, email,
		mobile, pan_number, pincode, subscription_id, plan_name,
		application_id, transaction_id, plan_id, amount, detail_json)
	VALUES (p_agent_id, p_first_name, p_last_name, p_email, p_mobile, p_pan,
		p_pincode, p_subscription_id, p_plan_name, p_application_id,
		p_transaction_id, p_plan_id, p_amount, p_detail)
	RETURNING id
$$ LANGUAGE sql;

-- The caller passes settlement amounts through verbatim; the store derives
-- any it receives as NULL: 18% GST on the premium, commission as the agent's
-- payout percentage of the premium, 2% TDS on the commission.
CREATE OR REPLACE FUNCTION updateAyushProposalWallet(
	p_agent_id text, p_ayush_id text, p_payment_mode text,
	p_premium_amount text, p_premium text, p_gst text, p_commission text,
	p_tds text, p_payout_pct text)
RETURNS TABLE("message" text) AS $$
	INSERT INTO ayush_wallet (agent_id, ayush_id, payment_mode,
		premium_amount, premium, gst_amount, commission_agent, tds_amount,
		payout_percentage)
	SELECT p_agent_id, p_ayush_id, p_payment_mode, p_premium_amount,
		p_premium,
		COALESCE(p_gst, round(p_premium_amount::numeric * 0.18)::text),
		d.commission,
		COALESCE(p_tds, round(d.commission::numeric * 0.02)::text),
		p_payout_pct
	FROM (SELECT COALESCE(p_commission,
		round(p_premium_amount::numeric * p_payout_pct::numeric / 100)::text)
		AS commission) d;
	SELECT 'Wallet payment processed successfully.'::text
$$ LANGUAGE sql;

CREATE OR REPLACE FUNCTION getAyushPremium(p_agent_id text)
RETURNS TABLE("AgentId" text, "TotalPremium" text, "ProposalCount" bigint) AS $$
	SELECT p_agent_id, COALESCE(sum(amount::numeric), 0)::text, count(*)
	FROM ayush_proposals
	WHERE agent_id = p_agent_id
	HAVING count(*) > 0
$$ LANGUAGE sql;

CREATE OR REPLACE FUNCTION getLoginUser(p_mobile text)
RETURNS TABLE("UId" text, "AgentId" text, "Agent_Code" text, "FullName" text,
	"EmailID" text, "MobileNumber" text, "EMPType" text, "PasswordHash" text,
	"Gender" text, "Admin_Approved" text, "Payout" text, "Paymentmode" text) AS $$
	SELECT uid, agent_id, agent_code, full_name, email, mobile, emp_type,
		password_hash, gender, admin_approved, payout, payment_mode
	FROM logins WHERE mobile = p_mobile
$$ LANGUAGE sql;

CREATE OR REPLACE FUNCTION saveBajajHeader(
	p_agent_id text, p_service_mode text, p_quote_no text, p_policy_no text,
	p_plan text, p_geo_cover text, p_country text,
	p_start_date text, p_end_date text, p_journey_from text, p_journey_to text,
	p_no_of_days text, p_base_premium text, p_final_premium text,
	p_raw_request text, p_raw_response text,
	p_title text, p_first_name text, p_last_name text, p_dob text,
	p_email text, p_mobile text, p_gender text, p_address text, p_city text,
	p_state text, p_pincode text, p_passport text)
RETURNS TABLE("BajajId" bigint) AS $$
	INSERT INTO bajaj_policies (agent_id, service_mode, quote_no, policy_no,
		plan, geographical_cover, country_name, start_date, end_date,
		journey_from, journey_to, no_of_days, base_premium, final_premium,
		raw_request, raw_response, proposer_title, proposer_first_name,
		proposer_last_name, proposer_dob, proposer_email, proposer_mobile,
		proposer_gender, proposer_address, proposer_city, proposer_state,
		proposer_pincode, proposer_passport)
	VALUES (p_agent_id, p_service_mode, p_quote_no, p_policy_no, p_plan,
		p_geo_cover, p_country, p_start_date::date, p_end_date::date,
		p_journey_from::date, p_journey_to::date, p_no_of_days,
		p_base_premium, p_final_premium, p_raw_request, p_raw_response,
		p_title, p_first_name, p_last_name, p_dob::date, p_email, p_mobile,
		p_gender, p_address, p_city, p_state, p_pincode, p_passport)
	RETURNING id
$$ LANGUAGE sql;

CREATE OR REPLACE FUNCTION saveBajajTraveller(
	p_bajaj_id bigint, p_agent_id text,
	p_title text, p_gender text, p_first_name text, p_middle_name text,
	p_last_name text, p_dob text, p_relation text, p_passport text,
	p_nominee_name text, p_nominee_relation text, p_email text,
	p_mobile text, p_pre_existing text)
RETURNS TABLE("TravellerId" bigint) AS $$
	INSERT INTO bajaj_travellers (bajaj_id, agent_id, before_title, gender,
		first_name, middle_name, last_name, date_of_birth, relation,
		passport_number, nominee_name, nominee_relation, email, mobile,
		pre_existing_disease)
	VALUES (p_bajaj_id, p_agent_id, p_title, p_gender, p_first_name,
		p_middle_name, p_last_name, p_dob::date, p_relation, p_passport,
		p_nominee_name, p_nominee_relation, p_email, p_mobile,
		p_pre_existing)
	RETURNING id
$$ LANGUAGE sql;
`

// InstallProcedures connects to the DSN and installs the procedure suite.
// When isolate is true, a per-run schema is created and dropped via the
// returned teardown func, so a shared database stays clean.
func InstallProcedures(ctx context.Context, dsn string, isolate bool) (*pgxpool.Pool, func(context.Context) error, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("parse pool config: %w", err)
	}

	cleanup := func(context.Context) error { return nil }

	if isolate {
		schema := fmt.Sprintf("travelflow_run_%d", time.Now().UnixNano())
		ident := pgx.Identifier{schema}.Sanitize()

		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("connect for schema: %w", err)
		}
		if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE SCHEMA %s", ident)); err != nil {
			conn.Close(ctx)
			return nil, nil, fmt.Errorf("create schema %s: %w", schema, err)
		}
		conn.Close(ctx)

		setPath := fmt.Sprintf("SET search_path TO %s", ident)
		cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
			_, err := conn.Exec(ctx, setPath)
			return err
		}

		cleanup = func(ctx context.Context) error {
			dropConn, err := pgx.Connect(ctx, dsn)
			if err != nil {
				return err
			}
			defer dropConn.Close(ctx)
			_, err = dropConn.Exec(ctx, fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", ident))
			return err
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect pool: %w", err)
	}

	if _, err := pool.Exec(ctx, procedureSuite); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("install procedures: %w", err)
	}

	return pool, cleanup, nil
}
