package services

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		want     error
	}{
		{password: "StrongPass1"},
		{password: "Пароль2024x"},
		{password: "Short1", want: ErrWeakPassword},
		{password: "alllowercase1", want: ErrWeakPassword},
		{password: "ALLUPPERCASE1", want: ErrWeakPassword},
		{password: "NoDigitsHere", want: ErrWeakPassword},
		{password: "Aa1" + strings.Repeat("x", 70), want: ErrPasswordTooLong},
	}

	for _, test := range tests {
		err := ValidatePasswordStrength(test.password)
		if test.want == nil {
			if err != nil {
				t.Fatalf("ValidatePasswordStrength(%q) = %v, want nil", test.password, err)
			}
			continue
		}
		if !errors.Is(err, test.want) {
			t.Fatalf("ValidatePasswordStrength(%q) = %v, want %v", test.password, err, test.want)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected %q to classify as invalid input, got %v", test.password, err)
		}
	}
}
