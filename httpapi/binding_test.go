package httpapi

import (
	"net/http/httptest"
	"strings"
	"testing"

	"travelflow/ayush"
	"travelflow/bajaj"
)

func bindBody(t *testing.T, body string, out any) error {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	return bindJSON(req, out)
}

func TestBindJSON_ExactKeysBind(t *testing.T) {
	var req ayush.ProposalRequest
	if err := bindBody(t, `{"AgentId":"42","first_name":"Asha"}`, &req); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if req.AgentID != "42" || req.FirstName != "Asha" {
		t.Errorf("expected exact keys bound, got %+v", req)
	}
}

func TestBindJSON_MiscasedKeysAreDropped(t *testing.T) {
	var req ayush.ProposalRequest
	if err := bindBody(t, `{"agentid":"42","First_Name":"Asha"}`, &req); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if req.AgentID != "" || req.FirstName != "" {
		t.Errorf("expected mis-cased keys dropped, got %+v", req)
	}
}

func TestBindJSON_NestedKeysMatchExactly(t *testing.T) {
	body := `{
		"AgentId": "42",
		"NoOfDays": 15,
		"TravellerDetails": [{"firstname": "Wrong", "firstName": "Right"}],
		"TripType": {"tripType": "Single"}
	}`
	var req bajaj.PlanRequest
	if err := bindBody(t, body, &req); err != nil {
		t.Fatalf("bind: %v", err)
	}

	if len(req.TravellerDetails) != 1 || req.TravellerDetails[0].FirstName != "Right" {
		t.Errorf("expected only the exact nested key bound, got %+v", req.TravellerDetails)
	}
	if req.NoOfDays.String() != "15" {
		t.Errorf("expected numeric NoOfDays preserved, got %q", req.NoOfDays)
	}
	if req.TripType["tripType"] != "Single" {
		t.Errorf("expected map member preserved, got %+v", req.TripType)
	}
}

func TestBindJSON_MalformedBodyIsAnError(t *testing.T) {
	var req ayush.ProposalRequest
	if err := bindBody(t, `{"AgentId":`, &req); err == nil {
		t.Fatalf("expected error for malformed body")
	}
}
