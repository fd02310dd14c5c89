// Package ecode defines the business error codes returned by the API and the
// typed errors that carry them through the repository and service layers.
//
// # Error Code Convention
//
//   - 0: Success (OK)
//   - -100 to -199: Authentication/authorization errors
//   - -400 to -499: Request and resource errors
//   - -500+: Server errors
//
// # Typed Errors
//
// Lower layers return *Error values built with New or Wrap:
//
//	return ecode.New(ecode.NotFound, "No job: 7")
//	return ecode.Wrap(ecode.ServerErr, "query jobs", err)
//
// Callers wrap them freely with fmt.Errorf("...: %w", err); the HTTP boundary
// recovers the code with CodeOf and the status with ToHTTPStatus:
//
//	code := ecode.CodeOf(err)          // ecode.NotFound
//	status := ecode.ToHTTPStatus(code) // 404
//
// # Getting Error Messages
//
//	message := ecode.Text(ecode.NoLogin)
//	// Returns: "Unauthorized"
package ecode
