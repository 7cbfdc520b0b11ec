package client_test

import (
	"context"
	"fmt"
	"time"

	"github.com/autofacts/describe/client"
	"github.com/autofacts/describe/client/pool"
)

// Building a client against the live service requires account
// credentials; these examples are illustrative and not executed.

func ExampleBuild() {
	creds, err := client.CredentialsFromEnv()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c, err := client.Build(
		client.WithAuthenticator(creds),
		client.WithTimeout(15*time.Second),
		client.WithThrottle(5, 2),
		client.WithUserAgent("fleet-importer/2.3"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c
}

func ExampleClient_Describe() {
	c, err := client.Build(
		client.WithAuthenticator(client.Credentials{Number: "123456", Secret: "s3cret"}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	desc, err := c.Describe(context.Background(), "1M8GDM9AXKP042788",
		client.WithSwitch(client.SwitchIncludeDefinitions),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(desc.BestMake(), desc.BestModel(), desc.ModelYear())
}

func ExampleClient_DescribeAsync() {
	c, err := client.Build(
		client.WithAuthenticator(client.Credentials{Number: "123456", Secret: "s3cret"}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Share one queue so at most two lookups are in flight at once.
	q := pool.NewQueue[*client.VehicleDescription](2)

	vins := []string{"1M8GDM9AXKP042788", "5GZCZ43D13S812715", "1HGCM82633A004352"}
	for _, v := range vins {
		if _, err := c.DescribeAsync(context.Background(), v, client.InQueue(q)); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	if err := q.Wait(); err != nil {
		fmt.Println("error:", err)
	}
}

func ExampleClient_DescribeBatch() {
	c, err := client.Build(
		client.WithAuthenticator(client.Credentials{Number: "123456", Secret: "s3cret"}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	items, _ := c.DescribeBatch(context.Background(), []string{
		"1M8GDM9AXKP042788",
		"5GZCZ43D13S812715",
	}, 4)

	for _, item := range items {
		if item.Err != nil {
			fmt.Println(item.VIN, "failed:", item.Err)
			continue
		}
		fmt.Println(item.VIN, item.Description.BestMake())
	}
}
