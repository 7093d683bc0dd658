package errors

import (
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	err := NewError(ErrCodeKeyNotFound, ErrMsgKeyNotFound)
	if CodeOf(err) != ErrCodeKeyNotFound {
		t.Errorf("CodeOf = %s, want %s", CodeOf(err), ErrCodeKeyNotFound)
	}

	if CodeOf(fmt.Errorf("plain")) != ErrCodeInternal {
		t.Error("uncoded error should map to internal_error")
	}
	if CodeOf(nil) != ErrCodeInternal {
		t.Error("nil should map to internal_error")
	}
}

func TestIsCode(t *testing.T) {
	err := NewError(ErrCodeStorage, ErrMsgStorage)
	if !IsCode(err, ErrCodeStorage) {
		t.Error("IsCode should match the carried code")
	}
	if IsCode(err, ErrCodeKeyNotFound) {
		t.Error("IsCode should not match a different code")
	}
	if IsCode(nil, ErrCodeStorage) {
		t.Error("IsCode of nil must be false")
	}
}

func TestWrapKeepsText(t *testing.T) {
	inner := fmt.Errorf("disk fell off")
	err := Wrap(ErrCodeStorage, inner)
	if !IsCode(err, ErrCodeStorage) {
		t.Errorf("wrapped code = %s", CodeOf(err))
	}
	we, ok := err.(*WalletError)
	if !ok || we.Message != "disk fell off" {
		t.Errorf("wrapped message = %+v", err)
	}

	if Wrap(ErrCodeStorage, nil) != nil {
		t.Error("wrapping nil must stay nil")
	}
}

func TestErrorIsJSON(t *testing.T) {
	err := NewError(ErrCodeUnknownScheme, ErrMsgUnknownScheme)
	want := `{"code":"unknown_scheme","message":"Signature scheme is not supported"}`
	if err.Error() != want {
		t.Errorf("Error() = %s, want %s", err.Error(), want)
	}
}
