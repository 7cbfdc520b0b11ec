// Package client provides the core implementation of the vehicle
// description SOAP client.
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options. Account
// credentials are the only required input:
//
//	creds, err := client.CredentialsFromEnv()
//	c, err := client.Build(
//		client.WithAuthenticator(creds),
//		client.WithTimeout(15 * time.Second),
//		client.WithThrottle(5, 2),
//	)
//
// # Describing a Vehicle
//
// [Client.Describe] validates the VIN's check digit locally, assembles
// the merged parameter payload, invokes the describeVehicle operation,
// and wraps the answer in a typed [VehicleDescription]:
//
//	desc, err := c.Describe(ctx, "1M8GDM9AXKP042788")
//	if errors.Is(err, client.ErrInvalidVIN) { ... } // no network call was made
//	fmt.Println(desc.BestMake(), desc.ModelYear())
//
// # Async and Batch Lookups
//
// [Client.DescribeAsync] returns a [pool.Result] handle immediately:
//
//	r, err := c.DescribeAsync(ctx, vin1)
//	// ... do other work ...
//	desc, err := r.Value()
//
// Several async calls can share one concurrency-limited queue with
// [InQueue], and [Client.DescribeBatch] wraps the whole pattern for a
// slice of VINs:
//
//	items, err := c.DescribeBatch(ctx, vins, 4)
//
// # Error Handling
//
// Sentinel errors are wrapped into everything the package returns;
// check them with errors.Is:
//
//   - [ErrInvalidVIN]: the VIN failed the local check digit test.
//   - [ErrMissingCredentials]: no Authenticator was configured.
//   - [ErrServiceFailure]: the service answered with a non-successful
//     response status; the full verdict is in the [ServiceError].
//
// For lower-level control of async execution see the
// [github.com/autofacts/describe/client/pool] package.
package client
