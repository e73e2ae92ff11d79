// Package api serves the vocabulary HTTP API: account signup and login,
// the shared word catalog and each user's personal word list.
//
// Every request passes through request ID assignment, body replay and request
// logging. Account and word routes additionally require a bearer token issued by
// the jwt service whose subject is the account e-mail:
//
//	POST   /auth/signup
//	POST   /auth/login
//	GET    /me
//	GET    /me/words
//	POST   /me/words
//	PATCH  /me/words/{id}
//	DELETE /me/words/{id}
//	GET    /words?limit=20&offset=0
//	POST   /words
//	GET    /words/{id}
//	PUT    /words/{id}
//	DELETE /words/{id}
//
// Errors are JSON objects with code, message and optional details.
package api
