package devices

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=devices

import (
	"context"

	"referral-guard/internal/store"

	"github.com/google/uuid"
)

// DeviceStore defines the store operations required by the device registry
type DeviceStore interface {
	UpsertDeviceFingerprint(ctx context.Context, fingerprintHash string) (store.DeviceFingerprint, error)
	UpsertDeviceFingerprintAccount(ctx context.Context, fingerprintID, accountID uuid.UUID) error
	RefreshDeviceFingerprintTotalAccounts(ctx context.Context, fingerprintID uuid.UUID) (int, error)
	GetAccountIDsByFingerprintHash(ctx context.Context, fingerprintHash string) ([]uuid.UUID, error)
	CountFingerprintAccountsAmong(ctx context.Context, fingerprintHash string, accountIDs []uuid.UUID) (int, error)
}
