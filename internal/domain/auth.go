package domain

import "time"

// APIClient is a caller allowed to request tokens for the prediction API.
type APIClient struct {
	ID         string
	SecretHash string
}

// Token represents issued authentication token metadata.
type Token struct {
	Value     string
	ClientID  string
	ExpiresAt time.Time
}
