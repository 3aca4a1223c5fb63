package source

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgertree/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validLedgers drops tenant ledgers that fail struct validation. Dropped
// records are logged, never returned as errors.
func validLedgers(in []model.TenantLedger, log *zap.Logger) []model.TenantLedger {
	out := make([]model.TenantLedger, 0, len(in))
	for i, l := range in {
		if err := validate.Struct(l); err != nil {
			log.Warn("dropping invalid tenant ledger",
				zap.Int("index", i),
				zap.Int64("ledger_id", l.ID),
				zap.Error(err),
			)
			continue
		}
		out = append(out, l)
	}
	return out
}

func validateNewLedger(n model.NewLedger) error {
	if err := validate.Struct(n); err != nil {
		return fmt.Errorf("validating ledger: %w", err)
	}
	return nil
}
