package testutil

import (
	"context"
	"net"
	"net/url"
	"os"
	"testing"
)

// LocalRegion is the region used for DynamoDB Local tests.
const LocalRegion = "us-east-1"

// RequireDynamoDB skips the test if DynamoDB Local is not running.
// It checks the DYNAMODB_ENDPOINT environment variable, verifies
// connectivity and returns the endpoint.
func RequireDynamoDB(t *testing.T) string {
	t.Helper()

	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	if endpoint == "" {
		t.Skip("DYNAMODB_ENDPOINT not set; skipping DynamoDB Local test")
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		t.Skipf("DYNAMODB_ENDPOINT %q is not a valid URL", endpoint)
	}

	var d net.Dialer
	conn, err := d.DialContext(context.Background(), "tcp", u.Host)
	if err != nil {
		t.Skipf("DynamoDB Local not reachable at %s: %v", u.Host, err)
	}
	_ = conn.Close()

	return endpoint
}
