package repository

import (
	"context"

	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
)

// AccountRepository persists the single donor account and its blood profile
// over the flat key-value namespace. Multi-field saves are independent writes
// with no atomicity across keys; a crash mid-save leaves a partial record.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account *entity.Account) error
	GetAccount(ctx context.Context) (*entity.Account, bool, error)

	// SaveBloodProfile writes the discrete profile keys and the composite
	// registration blob. age is the derived value at submission time; it is
	// recorded only inside the blob, never as an independent key.
	SaveBloodProfile(ctx context.Context, profile *entity.BloodProfile, age int) error
	GetBloodProfile(ctx context.Context) (*entity.BloodProfile, bool, error)

	SetProfileImage(ctx context.Context, ref string) error
	ProfileImage(ctx context.Context) (string, bool, error)
	ClearProfileImage(ctx context.Context) error
}
