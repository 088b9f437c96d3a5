// Package httpclient provides a small configurable HTTP client focused on
// JSON APIs. It wraps net/http with a value-based request/response model,
// typed generic decoding, and a structured error taxonomy that separates
// transport failures from decode failures.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/posts/1",
//	})
//
// # Typed Decoding
//
//	post, err := httpclient.Get[Post](ctx, client, "/posts/1")
//
// The client does not inspect response status codes: the raw status is
// returned on Response (and on decode errors), and deciding what a non-2xx
// status means is left to the caller.
package httpclient
