// Package bento provides a Go client SDK for the Bento marketing and
// email platform API: subscriber management, subscriber commands, event
// tracking, transactional email, broadcasts, tags, fields, statistics,
// and the experimental utility endpoints.
//
// Basic usage:
//
//	client, err := bento.New(publishableKey, secretKey, siteUUID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	subscriber, err := client.CreateSubscriber(ctx, "user@example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Subscriber:", subscriber.Attributes.UUID)
//
// All inputs are validated before any network call; validation failures
// match the package's sentinel errors via errors.Is. Rate-limited and
// transient failures are retried with exponential backoff before being
// surfaced.
//
// The transactional email send is dispatched without retries because the
// API does not guarantee deduplication of repeated sends. A send that
// times out may still have been accepted server-side; callers needing
// exactly-once behavior must reconcile out of band.
package bento
