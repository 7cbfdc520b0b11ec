// Package describe exposes the vehicle description client builder.
package describe

import (
	"github.com/autofacts/describe/client"
)

// NewClient instantiates a new *Client with the provided options.
// Account credentials via client.WithAuthenticator are required;
// everything else has sensible defaults.
func NewClient(opts ...client.Option) (*client.Client, error) {
	return client.Build(opts...)
}
