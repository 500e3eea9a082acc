//go:build unit || integration

// Package builder provides fluent fixtures for tests. Every builder starts
// from a valid default and is adjusted through With or the named setters.
package builder

import (
	"time"

	"lending-core/internal/pkg/password"

	"golang.org/x/crypto/bcrypt"
)

// Base is the reference instant fixtures are laid out around.
var Base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func init() {
	password.Cost = bcrypt.MinCost
}

func Day(n int) time.Time {
	return Base.AddDate(0, 0, n)
}
