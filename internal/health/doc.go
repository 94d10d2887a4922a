// Package health probes Rice service reachability.
//
// A probe is one GET to the service's /health endpoint with the configured
// token as a bearer credential, bounded by a timeout. The outcome is
// classified as Reachable (2xx), Rejected (any other response), or
// Unreachable (network failure); disabled services are Skipped. Whether a
// non-healthy outcome is fatal is the caller's policy, not this package's.
package health
