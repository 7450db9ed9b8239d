package ayush

import (
	"context"
	"encoding/json"

	"travelflow/provider"
)

const tokenPath = "/v3/apis/webapi/token/generate-token/"

// TokenAPI mints bearer tokens from the AyushPay login endpoint. Any failure,
// whether transport, non-2xx, or an envelope without msg.token, surfaces as
// provider-auth-failed.
type TokenAPI struct {
	client   *provider.Client
	username string
	password string
}

func NewTokenAPI(client *provider.Client, username, password string) *TokenAPI {
	return &TokenAPI{client: client, username: username, password: password}
}

func (t *TokenAPI) Token(ctx context.Context) (string, error) {
	body := map[string]string{
		"username": t.username,
		"password": t.password,
	}
	resp, err := t.client.Post(ctx, tokenPath, body, nil)
	if err != nil {
		return "", provider.NewError(provider.KindAuthFailed, "generate-token", err.Error()).Wrap(err)
	}
	if !resp.OK() {
		return "", provider.NewError(provider.KindAuthFailed, "generate-token", string(resp.Body))
	}

	var envelope struct {
		Msg struct {
			Token string `json:"token"`
		} `json:"msg"`
	}
	if err := json.Unmarshal(resp.Body, &envelope); err != nil || envelope.Msg.Token == "" {
		return "", provider.NewError(provider.KindAuthFailed, "generate-token", "token missing from envelope")
	}

	return envelope.Msg.Token, nil
}
