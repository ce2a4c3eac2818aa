package usecases

const (
	// ShopCodeMaxAttempts bounds the collision probe so adversarial
	// collision density degrades into a reportable failure instead of
	// an unbounded loop
	ShopCodeMaxAttempts = 10

	shopCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// DefaultOtpCodeLength is the length of codes issued by providers
	// that let us choose
	DefaultOtpCodeLength = 6

	shopMediaFolder = "shops"
)
