// Package resp provides the JSON response helpers used by every handler.
//
// # Success Responses
//
// The payload is written as the response body unchanged:
//
//	resp.Success(w, map[string]any{"jobs": jobs})
//	resp.WithStatusCode(w, http.StatusCreated, map[string]any{"job": job})
//
// # Error Responses
//
// Failures share one envelope:
//
//	{
//	  "code": -404,            // Business error code
//	  "message": "not found",  // Human-readable message
//	  "errors": {...}          // Field errors, when present
//	}
//
//	resp.Fail(w, resp.NotFound("job does not exist"))
//	resp.Fail(w, resp.BadRequest("invalid payload", fieldErrors))
//	resp.Fail(w, resp.FromError(err))
//
// Business error codes are defined in the ecode package.
package resp
