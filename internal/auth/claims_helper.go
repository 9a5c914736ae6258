package auth

import (
	"context"
	"fmt"

	"flightline/opsdeck/internal/db/repositories"
)

// MakeClaimsFromAPIKey resolves the user behind a validated API key into
// request claims.
func MakeClaimsFromAPIKey(ctx context.Context, repo *repositories.UserRepository, userID string) (*APIKeyClaims, error) {

	user, err := repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve API key user: %w", err)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("user %s is deactivated", userID)
	}

	return &APIKeyClaims{
		UserUUID:  user.ID,
		RoleValue: user.Role,
		EmailVal:  user.Email,
	}, nil
}
