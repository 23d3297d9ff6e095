package literrors

// unwrapInterface is what errors.Unwrap looks for; the errors package does not export it.
type unwrapInterface interface {
	Unwrap() error
}
