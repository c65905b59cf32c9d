// Package timezone centralizes time handling so every timestamp the service
// produces is in the configured application timezone.
package timezone
