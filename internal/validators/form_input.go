package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/okugula/work-kg-admin/models"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldSalary      = "salary"
	FieldPhone       = "phone"
	FieldCompany     = "company"
	FieldEmail       = "email"
	FieldPassword    = "password"
)

// Maximum field lengths in runes.
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 5000
	MaxSalaryLen      = 100
	MaxPhoneLen       = 50
	MaxCompanyLen     = 200
)

// FormInputValidator validates the job form ([models.JobInput]) and the
// login form ([models.LoginRequest]).
type FormInputValidator struct{}

func NewFormInputValidator() Validator {
	return &FormInputValidator{}
}

func (v *FormInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.JobInput:
		return v.validateJobInput(ctx, value, fields...)
	case *models.JobInput:
		return v.validateJobInput(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateJobInput checks only the fields that are set, except the title,
// which a job cannot be saved without.
func (v *FormInputValidator) validateJobInput(_ context.Context, in models.JobInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldSalary, FieldPhone, FieldCompany}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
				return ErrEmptyTitle
			}
			if err := checkLen(FieldTitle, *in.Title, MaxTitleLen); err != nil {
				return err
			}
		case FieldDescription:
			if in.Description != nil {
				if err := checkLen(FieldDescription, *in.Description, MaxDescriptionLen); err != nil {
					return err
				}
			}
		case FieldSalary:
			if in.Salary != nil {
				if err := checkLen(FieldSalary, *in.Salary, MaxSalaryLen); err != nil {
					return err
				}
			}
		case FieldPhone:
			if in.Phone != nil {
				if err := checkLen(FieldPhone, *in.Phone, MaxPhoneLen); err != nil {
					return err
				}
				if !isPhone(*in.Phone) {
					return ErrInvalidPhone
				}
			}
		case FieldCompany:
			if in.Company != nil {
				if err := checkLen(FieldCompany, *in.Company, MaxCompanyLen); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormInputValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(req.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkLen(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%s: %w (max %d)", field, ErrFieldTooLong, limit)
	}
	return nil
}

// isPhone accepts an empty value or digits with the usual separators and an
// optional leading plus.
func isPhone(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}

	digits := 0
	for i, r := range v {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '(', r == ')':
		default:
			return false
		}
	}
	return digits >= 5
}
