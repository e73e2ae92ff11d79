package api

import (
	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/logger"
	"github.com/chanseok/rememberme/core/response"
	"github.com/chanseok/rememberme/integration/database/pg"
	"github.com/chanseok/rememberme/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type wordRequest struct {
	Word          string `json:"word" sanitize:"text" validate:"required;max:100"`
	Meaning       string `json:"meaning" sanitize:"text" validate:"required;max:500"`
	Pronunciation string `json:"pronunciation" sanitize:"text" validate:"max:100"`
}

type wordListResponse struct {
	Items  []repository.Word `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

var (
	errWordNotFound  = response.ErrNotFound.WithMessage("Word not found")
	errWordDuplicate = response.ErrConflict.WithMessage("Word already exists")
)

func (a *API) listWords(ctx *Context) handler.Response {
	limit, err := ctx.QueryInt("limit", defaultPageSize)
	if err != nil || limit < 1 {
		return validationError("limit", "positive", "must be a positive integer")
	}
	limit = min(limit, maxPageSize)

	offset, err := ctx.QueryInt("offset", 0)
	if err != nil || offset < 0 {
		return validationError("offset", "min", "must be a non-negative integer")
	}

	words, err := a.repo.ListWords(ctx, repository.ListWordsParams{Limit: int32(limit), Offset: int32(offset)})
	if err != nil {
		return a.internalError(ctx, "list_words", err)
	}
	total, err := a.repo.CountWords(ctx)
	if err != nil {
		return a.internalError(ctx, "list_words", err)
	}
	if words == nil {
		words = []repository.Word{}
	}

	return response.JSON(wordListResponse{Items: words, Total: total, Limit: limit, Offset: offset})
}

func (a *API) createWord(ctx *Context) handler.Response {
	var req wordRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}

	word, err := a.repo.CreateWord(ctx, repository.CreateWordParams{
		Word:          req.Word,
		Meaning:       req.Meaning,
		Pronunciation: req.Pronunciation,
	})
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return response.Error(errWordDuplicate)
		}
		return a.internalError(ctx, "create_word", err)
	}

	a.log.InfoContext(ctx, "word created",
		logger.Component("api"),
		logger.WordID(word.ID),
		logger.Key("word", word.Word),
	)
	return response.Created(word)
}

func (a *API) getWord(ctx *Context) handler.Response {
	id, ok := ctx.IDParam("id")
	if !ok {
		return invalidID()
	}

	word, err := a.repo.GetWordByID(ctx, id)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return response.Error(errWordNotFound)
		}
		return a.internalError(ctx, "get_word", err)
	}
	return response.JSON(word)
}

func (a *API) updateWord(ctx *Context) handler.Response {
	id, ok := ctx.IDParam("id")
	if !ok {
		return invalidID()
	}

	var req wordRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}

	word, err := a.repo.UpdateWord(ctx, repository.UpdateWordParams{
		ID:            id,
		Word:          req.Word,
		Meaning:       req.Meaning,
		Pronunciation: req.Pronunciation,
	})
	switch {
	case err == nil:
		return response.JSON(word)
	case pg.IsNotFoundError(err):
		return response.Error(errWordNotFound)
	case pg.IsDuplicateKeyError(err):
		return response.Error(errWordDuplicate)
	default:
		return a.internalError(ctx, "update_word", err)
	}
}

func (a *API) deleteWord(ctx *Context) handler.Response {
	id, ok := ctx.IDParam("id")
	if !ok {
		return invalidID()
	}

	if err := a.repo.DeleteWord(ctx, id); err != nil {
		if pg.IsNotFoundError(err) {
			return response.Error(errWordNotFound)
		}
		return a.internalError(ctx, "delete_word", err)
	}

	a.log.InfoContext(ctx, "word deleted", logger.Component("api"), logger.WordID(id))
	return response.NoContent()
}
