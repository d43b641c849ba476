package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Library.LoanPeriodDays <= 0 {
		return fmt.Errorf("library.loan_period_days must be > 0 (got %d)", c.Library.LoanPeriodDays)
	}

	if c.Library.MinPublishedYear <= 0 {
		return fmt.Errorf("library.min_published_year must be > 0 (got %d)", c.Library.MinPublishedYear)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 when enabled (got %d)", c.RateLimit.RequestsPerMin)
	}

	return nil
}
