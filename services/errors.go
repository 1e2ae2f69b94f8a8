package services

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInsufficientFunds   = errors.New("insufficient balance")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserInactive        = errors.New("user is inactive or blocked")
	ErrSelfReferral        = errors.New("cannot apply your own referral code")
	ErrAlreadyReferred     = errors.New("a referral code was already applied for this account")
	ErrInvalidReferralCode = errors.New("invalid referral code")
	ErrReferrerInactive    = errors.New("referrer is inactive or blocked")
	ErrItemNotFound        = errors.New("store item not found")
	ErrItemInactive        = errors.New("store item is not available")
)
