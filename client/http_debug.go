package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport provides detailed HTTP request/response logging for debugging client issues.
//
// Purpose:
//   - Troubleshoot API communication problems (timeouts, malformed requests, unexpected responses)
//   - Debug authentication issues by inspecting the Authorization header and 401 bodies
//   - Validate multipart uploads for pest detection
//
// When to use:
//   - Set AGRISMART_DEBUG=true or DEBUG=true environment variable
//   - Pass WithDebugLogging(true) to New
//   - Run the CLI with --debug
//
// Security considerations:
//   - Logs full request/response dumps including bearer tokens and profile data
//   - Only enable in development environments
//
// Example usage:
//
//	export AGRISMART_DEBUG=true
//	agrismart soil health  # Client will now log all HTTP traffic
type debugTransport struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Multipart bodies can be large images; dump headers only.
	dumpReqBody := req.Header.Get("Content-Type") == "application/json"
	if reqDump, err := httputil.DumpRequestOut(req, dumpReqBody); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - AGRISMART_DEBUG=true (SDK-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
//
// Returns true if either environment variable is set to "true" (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("AGRISMART_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
