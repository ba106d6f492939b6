package usecase

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"chat-session-manager/internal/chat"
)

// ensureValidCredential returns a currently-valid credential, logging
// in with the fallback identity when the cached one is missing or no
// longer verifies. Runs before any history mutation; a failure here
// aborts the whole send with the history untouched. Callers hold mu.
func (uc *implUseCase) ensureValidCredential(ctx context.Context) (*oauth2.Token, error) {
	if uc.cred != nil {
		ok, err := uc.provider.Verify(ctx, uc.cred)
		if err == nil && ok {
			return uc.cred, nil
		}
		if err != nil {
			uc.l.Warnf(ctx, "chat usecase: credential verification failed, re-acquiring: %v", err)
		} else {
			uc.l.Infof(ctx, "chat usecase: cached credential no longer valid, re-acquiring")
		}
	}

	token, err := uc.provider.Login(ctx, uc.fallback)
	if err != nil {
		uc.cred = nil
		return nil, fmt.Errorf("%w: %v", chat.ErrCredentialAcquisition, err)
	}

	uc.cred = token
	return token, nil
}
