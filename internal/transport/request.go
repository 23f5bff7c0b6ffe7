package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/agentstation/champdiff/pkg/constants"
	"github.com/agentstation/champdiff/pkg/errors"
)

// maxErrorBody caps how much of a failed response ends up in an error message.
const maxErrorBody = 512

// DecodeResponse checks the status, then decodes the JSON body into target.
// The body is always closed. source names the data source in errors.
func DecodeResponse(resp *http.Response, source string, target any) error {
	defer func() {
		_ = resp.Body.Close()
	}()

	endpoint := ""
	if resp.Request != nil && resp.Request.URL != nil {
		endpoint = resp.Request.URL.String()
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBytes))
	if err != nil {
		return errors.WrapNetwork("read", endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &errors.APIError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, body),
			Endpoint:   endpoint,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", endpoint, err)
	}

	return nil
}

// errorMessage picks a short human-readable message for a failed response.
func errorMessage(status int, body []byte) string {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return http.StatusText(status)
	}
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody] + "..."
	}
	return msg
}
