package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/errs"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/model"
)

// validate is safe for concurrent use once its rules are registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// loose_email accepts anything IsEmail accepts. The built-in "email"
	// tag is stricter and would reject addresses the form has always let through.
	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})

	return v
}

// ruleMessages maps a failing field to the message the client receives.
// Struct fields are validated in declaration order, so Name is checked
// before Email and the first failure wins.
var ruleMessages = map[string]string{
	"Name":  errs.MessageMissingName,
	"Email": errs.MessageInvalidEmail,
}

// ValidateSubmission applies the submission rules. It returns nil or a 400
// *errs.HTTPError describing the first broken rule.
func ValidateSubmission(sub model.Submission) error {
	err := validate.Struct(sub)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errs.NewServerError(err)
	}

	first := validationErrors[0]
	if msg, ok := ruleMessages[first.StructField()]; ok {
		return errs.NewBadRequestError(msg).WithCause(err)
	}

	return errs.NewBadRequestError("Validation failed: " + first.Error())
}
