// Package nlp provides the language model boundary for response synthesis.
//
// The Client interface is intentionally small: one chat completion call.
// Production wiring layers a RetryClient over the OpenAI implementation,
// and optionally a CircuitBreakerClient over that.
//
// # Retry policy
//
// The synthesis call is the one place the pipeline retries. Transient
// failures (rate limiting, connection errors, unknown errors) sleep and
// retry with per-class backoff: rate limits and connection failures back
// off longer than generic transient errors. Permanent failures (malformed
// requests) are never retried. Each attempt runs under its own timeout so
// a hung call is abandoned without ending the outer retry loop.
package nlp
