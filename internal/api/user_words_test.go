package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chanseok/rememberme/internal/repository"
)

func TestListUserWords(t *testing.T) {
	t.Parallel()

	t.Run("joined with the word", func(t *testing.T) {
		env := newEnv(t)
		auth := env.authorize(t)
		env.repo.On("ListUserWords", mock.Anything, alice.ID).Return([]repository.UserWordDetail{{
			UserWord: repository.UserWord{ID: 3, UserID: alice.ID, WordID: apple.ID, Status: repository.StatusLearning},
			Word:     apple,
		}}, nil).Once()

		w := env.do(http.MethodGet, "/me/words", auth, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decode[struct {
			Items []repository.UserWordDetail `json:"items"`
		}](t, w)
		require.Len(t, body.Items, 1)
		assert.Equal(t, repository.StatusLearning, body.Items[0].Status)
		assert.Equal(t, "apple", body.Items[0].Word.Word)
	})

	t.Run("empty list", func(t *testing.T) {
		env := newEnv(t)
		auth := env.authorize(t)
		env.repo.On("ListUserWords", mock.Anything, alice.ID).Return([]repository.UserWordDetail(nil), nil).Once()

		w := env.do(http.MethodGet, "/me/words", auth, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[]}`, w.Body.String())
	})
}

func TestAddUserWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "added as learning", wantStatus: http.StatusCreated},
		{name: "already in the list", err: errDuplicate, wantStatus: http.StatusConflict},
		{name: "unknown word", err: errForeignKey, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t)
			auth := env.authorize(t)
			env.repo.On("AddUserWord", mock.Anything, repository.AddUserWordParams{
				UserID:      alice.ID,
				WordID:      apple.ID,
				Status:      repository.StatusLearning,
				Description: "fruit",
			}).Return(repository.UserWord{ID: 3, UserID: alice.ID, WordID: apple.ID, Status: repository.StatusLearning}, tt.err).Once()

			w := env.do(http.MethodPost, "/me/words", auth, map[string]any{"word_id": apple.ID, "description": "fruit"})
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}

	t.Run("word id is required", func(t *testing.T) {
		env := newEnv(t)

		w := env.do(http.MethodPost, "/me/words", env.authorize(t), map[string]any{"word_id": -1})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, fieldErrors(t, w), "word_id")
	})
}

func TestUpdateUserWord(t *testing.T) {
	t.Parallel()

	t.Run("marks the word memorized", func(t *testing.T) {
		env := newEnv(t)
		auth := env.authorize(t)
		env.repo.On("UpdateUserWord", mock.Anything, mock.MatchedBy(func(p repository.UpdateUserWordParams) bool {
			return p.ID == 3 && p.UserID == alice.ID &&
				p.Status != nil && *p.Status == repository.StatusMemorized && p.Description == nil
		})).Return(repository.UserWord{ID: 3, Status: repository.StatusMemorized}, nil).Once()

		w := env.do(http.MethodPatch, "/me/words/3", auth, map[string]string{"status": "M"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "M", decode[map[string]any](t, w)["status"])
	})

	t.Run("changes only the description", func(t *testing.T) {
		env := newEnv(t)
		auth := env.authorize(t)
		env.repo.On("UpdateUserWord", mock.Anything, mock.MatchedBy(func(p repository.UpdateUserWordParams) bool {
			return p.Status == nil && p.Description != nil && *p.Description == "red fruit"
		})).Return(repository.UserWord{ID: 3}, nil).Once()

		w := env.do(http.MethodPatch, "/me/words/3", auth, map[string]string{"description": "red fruit"})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("unknown status", func(t *testing.T) {
		env := newEnv(t)

		w := env.do(http.MethodPatch, "/me/words/3", env.authorize(t), map[string]string{"status": "X"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, fieldErrors(t, w), "status")
	})

	t.Run("empty status", func(t *testing.T) {
		env := newEnv(t)

		w := env.do(http.MethodPatch, "/me/words/3", env.authorize(t), map[string]string{"status": ""})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, fieldErrors(t, w), "status")
	})

	t.Run("nothing to update", func(t *testing.T) {
		env := newEnv(t)

		w := env.do(http.MethodPatch, "/me/words/3", env.authorize(t), map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Nothing to update", decode[errorBody](t, w).Message)
	})

	t.Run("not in the list", func(t *testing.T) {
		env := newEnv(t)
		auth := env.authorize(t)
		env.repo.On("UpdateUserWord", mock.Anything, mock.Anything).Return(repository.UserWord{}, notFound()).Once()

		w := env.do(http.MethodPatch, "/me/words/3", auth, map[string]string{"status": "L"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteUserWord(t *testing.T) {
	t.Parallel()

	t.Run("removed", func(t *testing.T) {
		env := newEnv(t)
		auth := env.authorize(t)
		env.repo.On("DeleteUserWord", mock.Anything, repository.DeleteUserWordParams{ID: 3, UserID: alice.ID}).Return(nil).Once()

		w := env.do(http.MethodDelete, "/me/words/3", auth, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("another user's entry", func(t *testing.T) {
		env := newEnv(t)
		auth := env.authorize(t)
		env.repo.On("DeleteUserWord", mock.Anything, repository.DeleteUserWordParams{ID: 3, UserID: alice.ID}).Return(notFound()).Once()

		w := env.do(http.MethodDelete, "/me/words/3", auth, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
