package api

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/response"
	"github.com/chanseok/rememberme/integration/database/pg"
	"github.com/chanseok/rememberme/internal/repository"
	"github.com/chanseok/rememberme/middleware"
)

type signupRequest struct {
	Email    string `json:"email" sanitize:"email" validate:"required;email"`
	Password string `json:"password" validate:"required;min:8;max:72"`
	Nickname string `json:"nickname" sanitize:"text" validate:"required;between:1,50"`
}

type loginRequest struct {
	Email    string `json:"email" sanitize:"email" validate:"required;email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type authResponse struct {
	User  repository.User `json:"user"`
	Token tokenResponse   `json:"token"`
}

func (a *API) signup(ctx *Context) handler.Response {
	var req signupRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.cfg.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return validationError("password", "max", "must be at most 72 bytes")
	}
	if err != nil {
		return a.internalError(ctx, "signup", err)
	}

	user, err := a.repo.CreateUser(ctx, repository.CreateUserParams{
		Email:        req.Email,
		PasswordHash: hash,
		Nickname:     req.Nickname,
	})
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return response.Error(response.ErrConflict.WithMessage("Email already registered"))
		}
		return a.internalError(ctx, "signup", err)
	}

	token, err := a.issueToken(user)
	if err != nil {
		return a.internalError(ctx, "signup", err)
	}
	return response.Created(authResponse{User: user, Token: token})
}

func (a *API) login(ctx *Context) handler.Response {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}

	invalid := response.Error(response.ErrUnauthorized.WithMessage("Invalid credentials"))

	user, err := a.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return invalid
		}
		return a.internalError(ctx, "login", err)
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return invalid
	}

	token, err := a.issueToken(user)
	if err != nil {
		return a.internalError(ctx, "login", err)
	}
	return response.JSON(authResponse{User: user, Token: token})
}

func (a *API) me(ctx *Context) handler.Response {
	user, ok := ctx.User()
	if !ok {
		return response.Error(response.ErrUnauthorized)
	}
	return response.JSON(user)
}

func (a *API) issueToken(user repository.User) (tokenResponse, error) {
	token, err := a.tokens.Issue(user.Email)
	if err != nil {
		return tokenResponse{}, err
	}
	return tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(a.tokens.Lifetime().Seconds()),
	}, nil
}

type userSlotKey struct{}

// userSlot carries the account loaded while resolving the token subject to the handler.
type userSlot struct {
	user repository.User
	set  bool
}

// authenticate returns the middleware protecting account routes: a slot for the
// resolved user followed by JWT verification against the account's e-mail.
func (a *API) authenticate() []handler.Middleware[*Context] {
	provideSlot := func(next handler.HandlerFunc[*Context]) handler.HandlerFunc[*Context] {
		return func(ctx *Context) handler.Response {
			ctx.SetValue(userSlotKey{}, &userSlot{})
			return next(ctx)
		}
	}

	return []handler.Middleware[*Context]{
		provideSlot,
		middleware.JWTWithConfig[*Context](middleware.JWTConfig{
			Service:         a.tokens,
			SubjectResolver: a.resolveSubject,
			ErrorHandler: func(ctx handler.Context, err error) handler.Response {
				if errors.Is(err, errUserLookup) {
					return a.internalError(ctx, "authenticate", err)
				}
				return middleware.DefaultJWTErrorHandler(ctx, err)
			},
		}),
	}
}

// resolveSubject loads the account named by the token and returns its e-mail as the
// subject the token must carry.
func (a *API) resolveSubject(ctx context.Context, subject string) (string, error) {
	user, err := a.repo.GetUserByEmail(ctx, subject)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return "", fmt.Errorf("%w: %s", errUnknownSubject, subject)
		}
		return "", fmt.Errorf("%w: %v", errUserLookup, err)
	}
	if slot, ok := ctx.Value(userSlotKey{}).(*userSlot); ok {
		slot.user, slot.set = user, true
	}
	return user.Email, nil
}
