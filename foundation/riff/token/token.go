// Package token maintains the fungible-token ledger the settlement
// engine charges against. It supports direct transfers, pull transfers
// through approvals, and per-account nonces for signed call replay
// protection.
package token

import (
	"errors"
	"fmt"
	"sync"

	"github.com/riffworks/riff/foundation/riff/account"
)

// Set of token errors surfaced to the settlement engine unchanged.
var (
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrInvalidNonce          = errors.New("invalid nonce")
)

// Info represents the token information stored for an individual account.
type Info struct {
	Balance uint64
	Nonce   uint64
}

// Token manages balances, approvals, and nonces for all accounts that
// transact on the ledger.
type Token struct {
	mu         sync.RWMutex
	accounts   map[account.AccountID]Info
	allowances map[account.AccountID]map[account.AccountID]uint64
}

// New constructs a token ledger seeded with the genesis balances.
func New(balances map[string]uint64) (*Token, error) {
	tkn := Token{
		accounts:   make(map[account.AccountID]Info),
		allowances: make(map[account.AccountID]map[account.AccountID]uint64),
	}

	for accountStr, balance := range balances {
		accountID, err := account.ToAccountID(accountStr)
		if err != nil {
			return nil, err
		}
		tkn.accounts[accountID] = Info{Balance: balance}
	}

	return &tkn, nil
}

// BalanceOf returns the current balance for the specified account.
func (t *Token) BalanceOf(accountID account.AccountID) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.accounts[accountID].Balance
}

// NonceOf returns the nonce of the last accepted call for the
// specified account.
func (t *Token) NonceOf(accountID account.AccountID) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.accounts[accountID].Nonce
}

// ValidateNonce checks the specified nonce is the next nonce expected
// for the account.
func (t *Token) ValidateNonce(accountID account.AccountID, nonce uint64) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if expected := t.accounts[accountID].Nonce + 1; nonce != expected {
		return fmt.Errorf("got %d, expected %d: %w", nonce, expected, ErrInvalidNonce)
	}

	return nil
}

// BumpNonce records the account's nonce after a call is accepted.
func (t *Token) BumpNonce(accountID account.AccountID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	info := t.accounts[accountID]
	info.Nonce++
	t.accounts[accountID] = info
}

// Approve grants the spender the right to pull up to amount tokens from
// the owner's balance. A second approval overwrites the first.
func (t *Token) Approve(owner account.AccountID, spender account.AccountID, amount uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	spenders, exists := t.allowances[owner]
	if !exists {
		spenders = make(map[account.AccountID]uint64)
		t.allowances[owner] = spenders
	}

	spenders[spender] = amount
}

// Allowance returns the amount the spender may still pull from the
// owner's balance.
func (t *Token) Allowance(owner account.AccountID, spender account.AccountID) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.allowances[owner][spender]
}

// CheckTransferFrom validates a pull transfer would succeed without
// moving any tokens. The settlement engine uses this to validate a
// settlement completely before mutating any state.
func (t *Token) CheckTransferFrom(owner account.AccountID, spender account.AccountID, amount uint64) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.checkTransferFrom(owner, spender, amount)
}

// TransferFrom pulls tokens from the owner's balance into the to
// account using the spender's allowance.
func (t *Token) TransferFrom(owner account.AccountID, spender account.AccountID, to account.AccountID, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkTransferFrom(owner, spender, amount); err != nil {
		return err
	}

	t.allowances[owner][spender] -= amount

	ownerInfo := t.accounts[owner]
	ownerInfo.Balance -= amount
	t.accounts[owner] = ownerInfo

	toInfo := t.accounts[to]
	toInfo.Balance += amount
	t.accounts[to] = toInfo

	return nil
}

// Transfer moves tokens directly between two accounts.
func (t *Token) Transfer(from account.AccountID, to account.AccountID, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fromInfo := t.accounts[from]
	if fromInfo.Balance < amount {
		return fmt.Errorf("account %s balance %d, need %d: %w", from, fromInfo.Balance, amount, ErrInsufficientFunds)
	}

	fromInfo.Balance -= amount
	t.accounts[from] = fromInfo

	toInfo := t.accounts[to]
	toInfo.Balance += amount
	t.accounts[to] = toInfo

	return nil
}

// Copy makes a copy of the current token information for all accounts.
func (t *Token) Copy() map[account.AccountID]Info {
	t.mu.RLock()
	defer t.mu.RUnlock()

	accounts := make(map[account.AccountID]Info, len(t.accounts))
	for accountID, info := range t.accounts {
		accounts[accountID] = info
	}

	return accounts
}

// Query returns a copy of the token information for the specified account.
func (t *Token) Query(accountID account.AccountID) Info {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.accounts[accountID]
}

// =============================================================================

// checkTransferFrom must be called with at least a read lock held.
func (t *Token) checkTransferFrom(owner account.AccountID, spender account.AccountID, amount uint64) error {
	if allowance := t.allowances[owner][spender]; allowance < amount {
		return fmt.Errorf("allowance %d, need %d: %w", allowance, amount, ErrInsufficientAllowance)
	}

	if balance := t.accounts[owner].Balance; balance < amount {
		return fmt.Errorf("account %s balance %d, need %d: %w", owner, balance, amount, ErrInsufficientFunds)
	}

	return nil
}
