package data

// ModelValidationErr reports invariant violations caught at the model layer,
// keyed by field, in the same shape the validator produces.
type ModelValidationErr struct {
	Errors map[string]string
}

func (e ModelValidationErr) Error() string {
	return "model validation unsuccessful"
}

func NewModelValidationErr(key string, value string) ModelValidationErr {
	return ModelValidationErr{Errors: map[string]string{
		key: value,
	}}
}

func (e ModelValidationErr) AddError(key string, value string) {
	if _, exists := e.Errors[key]; !exists {
		e.Errors[key] = value
	}
}
