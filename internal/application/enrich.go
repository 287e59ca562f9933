package application

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/sunspire/solar-crm/internal/repository"
)

var allDigits = regexp.MustCompile(`^[0-9]+$`)

// looksLikeIdentifier classifies a stored display name as a raw id rather
// than a human name. Only these are substituted during enrichment; anything
// else may be intentional free text from an anonymous quote request and is
// preserved verbatim.
func looksLikeIdentifier(name string) bool {
	if name == "" {
		return false
	}
	if allDigits.MatchString(name) {
		return true
	}
	_, err := uuid.Parse(name)
	return err == nil
}

// enrichCustomerName substitutes the linked user's full name when the stored
// value is identifier-shaped. Lookup failures leave the stored value alone.
func enrichCustomerName(users repository.UserRepo, customerID *uint, stored string) string {
	if customerID == nil || !looksLikeIdentifier(stored) {
		return stored
	}
	u, err := users.GetUserByID(*customerID)
	if err != nil {
		return stored
	}
	if full := u.FullName(); full != "" {
		return full
	}
	return stored
}
