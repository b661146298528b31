package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	usecasecontract "github.com/roshan-1001/credence-realtor-sub001/internal/usecase/contract"
)

// AppValidator implements the usecase IValidator contract.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase IValidator contract.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateSlug checks that a lookup slug is present and sane.
func (av *AppValidator) ValidateSlug(slug string) error {
	if err := av.validate.Var(slug, "required,min=1,max=200,excludesall= "); err != nil {
		return &entity.ValidationError{Reason: "slug is required"}
	}
	return nil
}
