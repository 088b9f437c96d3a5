// Package posts provides a typed client for a JSONPlaceholder-style posts
// resource. It exposes two operations: fetch the whole collection, or fetch
// one post by id.
//
//	client, err := posts.New(posts.Config{})
//	if err != nil {
//	    return err
//	}
//
//	all, err := client.FetchAll(ctx)
//	one, err := client.Fetch(ctx, 1)
//
// The client is an explicitly constructed value: build it once at startup and
// pass it to call sites. It holds no per-call state and is safe for
// concurrent use. Failures classify via httpclient.IsTransport and
// httpclient.IsDecode.
package posts
