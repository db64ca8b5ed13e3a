package auth

import "github.com/heartmarshall/tourcrew-backend/internal/domain"

// OAuthIdentity is a profile vouched for by an OAuth provider. ProviderID is
// stable per provider account; the other fields may change between logins.
type OAuthIdentity struct {
	Provider   string
	ProviderID string
	Email      string
	Name       string
	AvatarURL  *string
}

// DisplayName is the provider's name for the account, or the email's local
// part when the provider sent none.
func (i *OAuthIdentity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return domain.NameFromEmail(i.Email)
}
