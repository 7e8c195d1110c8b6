package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"homeserve/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

type firebaseProvider struct {
	apiKey     string
	authClient *auth.Client
	httpClient *http.Client
}

// NewFirebaseProvider returns a Provider backed by Firebase Authentication.
// Account creation and sign-out go through the admin SDK; password sign-in
// uses the Identity Toolkit REST endpoint, which the admin SDK does not
// expose.
func NewFirebaseProvider(ctx context.Context) (Provider, error) {
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseServiceAccountPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Auth client: %w", err)
	}
	return &firebaseProvider{
		apiKey:     config.AppConfig.FirebaseAPIKey,
		authClient: client,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (p *firebaseProvider) CreateAccount(ctx context.Context, email, password string) error {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	if _, err := p.authClient.CreateUser(ctx, params); err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return NewError(CodeEmailInUse, "an account already exists for "+email)
		}
		return NewError(CodeVisibilityUnavailable, err.Error())
	}
	return nil
}

func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return err
	}

	url := signInEndpoint + "?key=" + p.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// Transport-level failure: the service could not be reached.
		return NewError(CodeVisibilityUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return NewError(CodeVisibilityUnavailable, fmt.Sprintf("unexpected response %d", resp.StatusCode))
	}

	switch payload.Error.Message {
	case "EMAIL_NOT_FOUND":
		return NewError(CodeUserNotFound, "no account found for "+email)
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return NewError(CodeInvalidCredentials, "invalid email or password")
	default:
		return NewError(payload.Error.Message, "sign-in rejected")
	}
}

func (p *firebaseProvider) SignOut(ctx context.Context, email string) error {
	user, err := p.authClient.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil
		}
		return err
	}
	return p.authClient.RevokeRefreshTokens(ctx, user.UID)
}
