// Package api implements the low-level HTTP transport for the Bento API:
// request construction, credential attachment, status-code mapping, and
// retry with exponential backoff. The public bento package wraps it with
// typed resources and client-side validation.
package api
