package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	domain "user-store/internal/domain/user"
	apperrors "user-store/pkg/errors"
)

// emailRule accepts any address containing both "@" and ".".
const emailRule = "contains=@,contains=."

var validate = newValidator()

// createUserInput carries the fields CreateUser checks, in the order they are checked.
type createUserInput struct {
	Name  string `validate:"notblank"`
	Email string `validate:"contains=@,contains=."`
}

// fieldMessages maps a failing struct field to the message reported to callers.
var fieldMessages = map[string]string{
	"Name":  "Name cannot be empty",
	"Email": "Invalid email format",
}

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank rejects strings that are empty once surrounding whitespace is trimmed.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	return v
}

// formatValidationError converts validator.ValidationErrors into a typed validation error
// for the first failing field.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	field := strings.ToLower(e.Field())
	if msg, ok := fieldMessages[e.Field()]; ok {
		return apperrors.NewValidationError(field, msg)
	}
	return apperrors.NewValidationError(field, fmt.Sprintf("%s is invalid", e.Field()))
}

// ValidateEmail reports whether email contains both "@" and ".", in any position.
func ValidateEmail(email string) bool {
	return validate.Var(email, emailRule) == nil
}

// CreateUser builds an active user from name and email without storing it.
// The name must not be blank and the email must pass ValidateEmail. The returned
// user keeps name exactly as given and has ID 0, to be assigned on save.
func CreateUser(name, email string) (domain.User, error) {
	if err := validate.Struct(createUserInput{Name: name, Email: email}); err != nil {
		return domain.User{}, formatValidationError(err)
	}

	return domain.User{
		ID:     0,
		Name:   name,
		Email:  email,
		Active: true,
	}, nil
}
