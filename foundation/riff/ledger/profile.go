package ledger

import (
	"fmt"

	"github.com/riffworks/riff/foundation/riff/account"
)

// RegisterProfile creates the profile record for the specified account.
func (l *Ledger) RegisterProfile(accountID account.AccountID, name string, bio string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.profiles[accountID]; exists {
		return fmt.Errorf("account %s: %w", accountID, ErrAlreadyRegistered)
	}

	l.profiles[accountID] = Profile{
		Name: name,
		Bio:  bio,
	}

	return nil
}

// UpdateProfile overwrites the profile record for the specified account.
func (l *Ledger) UpdateProfile(accountID account.AccountID, name string, bio string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.profiles[accountID]; !exists {
		return fmt.Errorf("account %s: %w", accountID, ErrNotRegistered)
	}

	l.profiles[accountID] = Profile{
		Name: name,
		Bio:  bio,
	}

	return nil
}

// QueryProfile returns the profile for the specified account. A zero
// value profile with an empty name means the account never registered.
func (l *Ledger) QueryProfile(accountID account.AccountID) Profile {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.profiles[accountID]
}

// IsRegistered reports whether the specified account has a profile.
func (l *Ledger) IsRegistered(accountID account.AccountID) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, exists := l.profiles[accountID]
	return exists
}
