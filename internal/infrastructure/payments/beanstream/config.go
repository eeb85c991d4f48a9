package beanstream

import "errors"

var (
	ErrMissingMerchantID      = errors.New("missing beanstream merchant id")
	ErrMissingProfilePasscode = errors.New("missing beanstream secure profile passcode")
	ErrMissingPasscode        = errors.New("missing beanstream recurring passcode")
)

// Config carries the merchant credentials for the three gateway APIs.
//
// Only MerchantID is required for basic transactions. Username and Password
// are needed once the merchant account enables username/password validation
// (required for capture, refund and void). Passcode authenticates against
// the recurring-billing API, ProfilePasscode against the secure-profile API.
//
// Config is immutable after construction and is passed explicitly into
// every request build; the gateway holds no other state.
type Config struct {
	MerchantID      string
	Username        string
	Password        string
	Passcode        string
	ProfilePasscode string
	TestMode        bool
}

func (c Config) validate() error {
	if c.MerchantID == "" {
		return ErrMissingMerchantID
	}
	return nil
}
