package api

import (
	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/response"
	"github.com/chanseok/rememberme/integration/database/pg"
	"github.com/chanseok/rememberme/internal/repository"
)

type addUserWordRequest struct {
	WordID      int64  `json:"word_id" validate:"required;positive"`
	Description string `json:"description" sanitize:"text" validate:"max:500"`
}

type updateUserWordRequest struct {
	Status      *string `json:"status" sanitize:"trim" validate:"in:L,M"`
	Description *string `json:"description" sanitize:"text" validate:"max:500"`
}

type userWordListResponse struct {
	Items []repository.UserWordDetail `json:"items"`
}

var errUserWordNotFound = response.ErrNotFound.WithMessage("Word is not in your list")

func (a *API) listUserWords(ctx *Context) handler.Response {
	user, ok := ctx.User()
	if !ok {
		return response.Error(response.ErrUnauthorized)
	}

	items, err := a.repo.ListUserWords(ctx, user.ID)
	if err != nil {
		return a.internalError(ctx, "list_user_words", err)
	}
	if items == nil {
		items = []repository.UserWordDetail{}
	}
	return response.JSON(userWordListResponse{Items: items})
}

func (a *API) addUserWord(ctx *Context) handler.Response {
	user, ok := ctx.User()
	if !ok {
		return response.Error(response.ErrUnauthorized)
	}

	var req addUserWordRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}

	uw, err := a.repo.AddUserWord(ctx, repository.AddUserWordParams{
		UserID:      user.ID,
		WordID:      req.WordID,
		Status:      repository.StatusLearning,
		Description: req.Description,
	})
	switch {
	case err == nil:
		return response.Created(uw)
	case pg.IsDuplicateKeyError(err):
		return response.Error(response.ErrConflict.WithMessage("Word already in your list"))
	case pg.IsForeignKeyViolationError(err):
		return response.Error(errWordNotFound)
	default:
		return a.internalError(ctx, "add_user_word", err)
	}
}

func (a *API) updateUserWord(ctx *Context) handler.Response {
	user, ok := ctx.User()
	if !ok {
		return response.Error(response.ErrUnauthorized)
	}
	id, ok := ctx.IDParam("id")
	if !ok {
		return invalidID()
	}

	var req updateUserWordRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}
	if req.Status == nil && req.Description == nil {
		return response.Error(response.ErrBadRequest.WithMessage("Nothing to update"))
	}

	params := repository.UpdateUserWordParams{ID: id, UserID: user.ID, Description: req.Description}
	if req.Status != nil {
		status := repository.WordStatus(*req.Status)
		if !status.Valid() {
			return validationError("status", "in", "must be one of: L, M")
		}
		params.Status = &status
	}

	uw, err := a.repo.UpdateUserWord(ctx, params)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return response.Error(errUserWordNotFound)
		}
		return a.internalError(ctx, "update_user_word", err)
	}
	return response.JSON(uw)
}

func (a *API) deleteUserWord(ctx *Context) handler.Response {
	user, ok := ctx.User()
	if !ok {
		return response.Error(response.ErrUnauthorized)
	}
	id, ok := ctx.IDParam("id")
	if !ok {
		return invalidID()
	}

	err := a.repo.DeleteUserWord(ctx, repository.DeleteUserWordParams{ID: id, UserID: user.ID})
	if err != nil {
		if pg.IsNotFoundError(err) {
			return response.Error(errUserWordNotFound)
		}
		return a.internalError(ctx, "delete_user_word", err)
	}
	return response.NoContent()
}
