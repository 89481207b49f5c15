// Package seedfetch supplies seed sentences for creature generation.
//
// A Source never fails: whatever goes wrong (network error, bad status,
// malformed body, cancelled context, exhausted rate limit) it logs the cause
// and returns Fallback, so generation always has a valid sentence to work on.
//
// Sources:
//
//	HTTPSource  — GETs a random fact as JSON {"id": ..., "text": ...}
//	Static      — always returns the same caller-supplied sentence
//	SourceFunc  — adapts a plain function
package seedfetch
