package usecasecontract

// IValidator validates required identifiers at the usecase boundary.
type IValidator interface {
	ValidateSlug(slug string) error
}
