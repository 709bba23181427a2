/*
Package demosdk provides a small client SDK for the demopass service along
with the request/response types the service itself serializes.

Create a Client to drive any of the public endpoints:

	client := demosdk.NewClient("http://localhost:8080")

	// Probes
	health, err := client.GetLiveness(ctx)
	ready, err := client.GetReadiness(ctx)

	// Demo metadata
	info, err := client.GetInfo(ctx)
	deployment, err := client.GetDeployment(ctx)

	// Generate credentials
	resp, err := client.Generate(ctx, demosdk.GenerateRequest{Length: 16, Count: 3})

Every endpoint is public; there is no authentication surface. Errors returned
by the service are decoded into *APIError so callers can switch on the error
code:

	_, err := client.Generate(ctx, demosdk.GenerateRequest{Length: 2})
	var apiErr *demosdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == demosdk.ErrorCodeInvalidLength {
		// requested length below the four-class minimum
	}
*/
package demosdk
