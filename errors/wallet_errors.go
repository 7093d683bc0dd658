package errors

import (
	"errors"

	"walletbot/jsonx"
)

// WalletErrorCode represents standardized error codes for wallet operations
type WalletErrorCode string

const (
	// General errors
	ErrCodeInternal WalletErrorCode = "internal_error"

	// Key lifecycle errors
	ErrCodeKeyNotFound   WalletErrorCode = "key_not_found"
	ErrCodeAlreadyExists WalletErrorCode = "already_exists"
	ErrCodeKeyDecode     WalletErrorCode = "key_decode_error"
	ErrCodeStorage       WalletErrorCode = "storage_error"

	// Scheme routing errors
	ErrCodeUnknownScheme  WalletErrorCode = "unknown_scheme"
	ErrCodeSchemeMismatch WalletErrorCode = "scheme_mismatch"

	// Conversation input errors - recoverable, absorbed by the dialog layer
	ErrCodeInvalidInput WalletErrorCode = "invalid_input"
)

// WalletError represents a standardized wallet error
type WalletError struct {
	Code    WalletErrorCode `json:"code"`
	Message string          `json:"message"`
}

// Error implements the error interface
func (e *WalletError) Error() string {
	err, _ := jsonx.Marshal(WalletError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(err)
}

// Error message constants - user-friendly and concise
const (
	ErrMsgKeyNotFound    = "No wallet exists for this user"
	ErrMsgAlreadyExists  = "A wallet already exists for this user"
	ErrMsgKeyDecode      = "Stored key material is corrupted"
	ErrMsgStorage        = "Key storage is unavailable, please try again"
	ErrMsgUnknownScheme  = "Signature scheme is not supported"
	ErrMsgSchemeMismatch = "Requested scheme does not match the stored wallet"
	ErrMsgInternal       = "Server error, please try again"
)

// NewError creates a new WalletError and returns it as error interface
func NewError(code WalletErrorCode, message string) error {
	return &WalletError{
		Code:    code,
		Message: message,
	}
}

// Wrap annotates err with a wallet error code, keeping the original text
func Wrap(code WalletErrorCode, err error) error {
	if err == nil {
		return nil
	}
	return &WalletError{
		Code:    code,
		Message: err.Error(),
	}
}

// CodeOf extracts the wallet error code from err, or ErrCodeInternal
// when err carries no code
func CodeOf(err error) WalletErrorCode {
	var we *WalletError
	if errors.As(err, &we) {
		return we.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given wallet error code
func IsCode(err error, code WalletErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
