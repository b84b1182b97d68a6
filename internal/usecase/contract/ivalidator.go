package usecasecontract

// IValidator validates individual input values.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePhone(phone string) error
	ValidatePasswordStrength(password string) error
}
