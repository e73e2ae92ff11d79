// Package validator checks request structs against `validate` struct tags.
//
//	type SignupRequest struct {
//		Email    string `json:"email" validate:"required;email"`
//		Password string `json:"password" validate:"required;min:8"`
//		Nickname string `json:"nickname" validate:"required;between:1,50"`
//	}
//
//	if err := validator.ValidateStruct(&req); err != nil {
//		details := validator.ExtractValidationErrors(err) // {"email": "must be a valid email address"}
//	}
//
// Built-in rules: required, min, max, between, email, in, positive. String lengths
// are counted in runes. Custom rules are added with RegisterRule.
package validator
