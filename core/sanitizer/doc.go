// Package sanitizer normalizes request input before validation.
//
// Struct fields opt in with a `sanitize` tag:
//
//	type LoginRequest struct {
//		Email string `json:"email" sanitize:"email"`
//		Note  string `json:"description" sanitize:"text,max:500"`
//	}
//
//	_ = sanitizer.SanitizeStruct(&req)
//
// Available names: trim, lower, email, whitespace, no_control, text and max:N.
// Custom sanitizers are added with RegisterSanitizer.
package sanitizer
