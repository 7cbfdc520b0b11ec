package describe_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/autofacts/describe"
	"github.com/autofacts/describe/client"
	"github.com/autofacts/describe/vin"
)

func ExampleNewClient() {
	c, err := describe.NewClient(
		client.WithAuthenticator(client.Credentials{Number: "123456", Secret: "s3cret"}),
		client.WithTimeout(15*time.Second),
		client.WithThrottle(5, 2),
	)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	desc, err := c.Describe(context.Background(), "1M8GDM9AXKP042788")
	if errors.Is(err, client.ErrInvalidVIN) {
		// Rejected locally, no network call was made.
		return
	}
	if err != nil {
		fmt.Println("describe error:", err)
		return
	}

	fmt.Println(desc.BestMake(), desc.ModelYear())
}

// The VIN validator is usable on its own to screen input before it
// ever reaches a client.
func ExampleNewClient_screening() {
	candidates := []string{"1M8GDM9AXKP042788", "1M8GDM9AAKP042788"}

	for _, v := range candidates {
		fmt.Println(v, vin.IsValid(v))
	}
	// Output:
	// 1M8GDM9AXKP042788 true
	// 1M8GDM9AAKP042788 false
}
