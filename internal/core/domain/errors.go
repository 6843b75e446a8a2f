package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("user not authenticated")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrForbidden          = errors.New("access forbidden")

	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("user already exists")
	ErrClientNotFound = errors.New("client not found")
	ErrClientExists   = errors.New("client already exists")

	ErrExpenseNotFound  = errors.New("expense not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrAbsenceNotFound  = errors.New("absence not found")
	ErrSettingsNotFound = errors.New("settings not found")

	ErrResetTokenInvalid = errors.New("invalid or expired reset token")
	ErrResetThrottled    = errors.New("password reset already requested")
	ErrMailDelivery      = errors.New("failed to send reset email")
)
