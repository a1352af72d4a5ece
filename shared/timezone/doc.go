// Package timezone converts timestamps to the application timezone for display.
//
// Stored timestamps stay in UTC; form timestamps shown to clients go through
// Format so they read in local time:
//
//	capturedAt := timezone.Format(form.CapturedAt, constant.DateFormat)
//
// The zone comes from APP_TIMEZONE and must be an IANA name such as "UTC" or
// "Asia/Jakarta". It is loaded when the package is imported.
package timezone
