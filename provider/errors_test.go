package provider

import (
	"errors"
	"testing"
)

func TestMap_StatusTable(t *testing.T) {
	cases := []struct {
		status int
		want   Kind
	}{
		{401, KindAuthFailed},
		{403, KindAuthFailed},
		{400, KindBadRequest},
		{404, KindNotFound},
		{500, KindUnavailable},
		{503, KindUnavailable},
	}

	for _, tc := range cases {
		e := Map("step", &Response{Status: tc.status, Body: []byte("detail")}, nil)
		if e == nil || e.Kind != tc.want {
			t.Errorf("status %d: expected %s, got %+v", tc.status, tc.want, e)
		}
	}
}

func TestMap_SuccessIsNil(t *testing.T) {
	if e := Map("step", &Response{Status: 200}, nil); e != nil {
		t.Fatalf("expected nil for 2xx, got %+v", e)
	}
	if e := Map("step", &Response{Status: 201}, nil); e != nil {
		t.Fatalf("expected nil for 2xx, got %+v", e)
	}
}

func TestMap_TransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	e := Map("step", nil, cause)
	if e == nil || e.Kind != KindNetwork {
		t.Fatalf("expected provider-network, got %+v", e)
	}
	if !errors.Is(e, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestMap_PreservesProviderBody(t *testing.T) {
	e := Map("calc-premium", &Response{Status: 400, Body: []byte(`{"error":"bad plan"}`)}, nil)
	if e.Message != `{"error":"bad plan"}` {
		t.Fatalf("expected provider body verbatim, got %q", e.Message)
	}
}

func TestKindOf(t *testing.T) {
	err := NewError(KindApplicationError, "issue-policy", "rejected")
	if KindOf(err) != KindApplicationError {
		t.Fatalf("expected kind extraction")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("expected empty kind for untyped error")
	}
}
