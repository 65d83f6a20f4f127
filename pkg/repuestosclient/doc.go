/*
Package repuestosclient builds a repuestos.Client from a repuestos.Config.

	cli, err := repuestosclient.New(&repuestos.Config{
		APIEndpoint: "api.example.com/api",
		RetryMax:    2,
	})
	if err != nil {
		return err
	}

	ventas, err := cli.Ventas().ListWithDetails(ctx)

Clients are plain values: build one per API endpoint and share it between
goroutines. There is no package-level default client.
*/
package repuestosclient
