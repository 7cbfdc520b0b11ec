package client

import (
	"errors"
	"fmt"
)

// operationDescribeVehicle is the SOAP operation invoked for every lookup.
const operationDescribeVehicle = "describeVehicle"

var (
	// ErrInvalidVIN is returned when a VIN fails the local check digit
	// test before any network call is made.
	ErrInvalidVIN = errors.New("invalid vin")
	// ErrMissingCredentials is returned by Build when no Authenticator
	// was supplied, and by CredentialsFromEnv when the environment is
	// incomplete.
	ErrMissingCredentials = errors.New("missing account credentials")
	// ErrServiceFailure is the sentinel error wrapped by [ServiceError].
	ErrServiceFailure = errors.New("service failure")
)

// ServiceError is returned when the description service answers with a
// response status other than Successful.
type ServiceError struct {
	Code        string
	Description string
	Err         error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%v: %s, description: %s", e.Err, e.Code, e.Description)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
