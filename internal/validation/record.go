// Package validation holds field rules shared by the client and the record service.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/medkeeper/internal/models"
)

const (
	// MaxNameLen максимальная длина названия лекарства в символах
	MaxNameLen = 200
	// MaxFieldLen максимальная длина dose и form
	MaxFieldLen = 100
)

var (
	// ErrUserIDRequired userId отсутствует или не положителен
	ErrUserIDRequired = errors.New("userId must be a positive integer")
	// ErrNameRequired название пустое
	ErrNameRequired = errors.New("name is required")
	// ErrTooLong значение длиннее допустимого
	ErrTooLong = errors.New("value is too long")
)

// ValidateUserID проверяет, что id пользователя положителен
func ValidateUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDRequired
	}
	return nil
}

// ValidateName проверяет название: не пустое после trim, не длиннее MaxNameLen
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters: %w", MaxNameLen, ErrTooLong)
	}
	return nil
}

// ValidateShort проверяет необязательные короткие поля (dose, form)
func ValidateShort(field, value string) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > MaxFieldLen {
		return fmt.Errorf("%s must not exceed %d characters: %w", field, MaxFieldLen, ErrTooLong)
	}
	return nil
}

// ValidateExpiry принимает пустую строку, YYYY-MM-DD или YYYY-MM
func ValidateExpiry(expiry string) error {
	if s := strings.TrimSpace(expiry); s != "" && !models.ValidExpiry(s) {
		return fmt.Errorf("expiry %q must be YYYY-MM-DD or YYYY-MM", s)
	}
	return nil
}

// ValidatePhotoURI принимает пустую строку или абсолютный http(s) URL
func ValidatePhotoURI(uri string) error {
	if s := strings.TrimSpace(uri); s != "" && !models.IsNetworkURL(s) {
		return fmt.Errorf("photoUri %q must be an absolute http(s) URL", s)
	}
	return nil
}

// ValidateFields проверяет запись целиком так, как ее примет сервис
func ValidateFields(f models.Fields) error {
	if err := ValidateName(f.Name); err != nil {
		return err
	}
	if err := ValidateShort("dose", f.Dose); err != nil {
		return err
	}
	if err := ValidateShort("form", f.Form); err != nil {
		return err
	}
	if err := ValidateExpiry(f.Expiry); err != nil {
		return err
	}
	return ValidatePhotoURI(f.PhotoURI)
}
