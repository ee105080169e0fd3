package observability

import (
	"net/http"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// InstrumentHTTPClient returns client wrapped so that every outbound call is
// recorded as an X-Ray subsegment of the current request. Calls made outside
// a traced context are logged by the SDK and otherwise unaffected.
func InstrumentHTTPClient(client *http.Client) *http.Client {
	if client == nil {
		client = &http.Client{}
	}
	return xray.Client(client)
}
