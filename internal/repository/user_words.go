package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const userWordColumns = `id, user_id, word_id, status, description, created_at`

const addUserWord = `INSERT INTO user_words (user_id, word_id, status, description)
VALUES ($1, $2, $3, $4)
RETURNING ` + userWordColumns

func (q *Queries) AddUserWord(ctx context.Context, arg AddUserWordParams) (UserWord, error) {
	status := arg.Status
	if status == "" {
		status = StatusLearning
	}
	row := q.conn(ctx).QueryRow(ctx, addUserWord, arg.UserID, arg.WordID, string(status), arg.Description)
	return scanUserWord(row)
}

const listUserWords = `SELECT uw.id, uw.user_id, uw.word_id, uw.status, uw.description, uw.created_at,
	w.id, w.word, w.meaning, w.pronunciation, w.created_at, w.updated_at
FROM user_words uw
JOIN words w ON w.id = uw.word_id
WHERE uw.user_id = $1
ORDER BY uw.id`

func (q *Queries) ListUserWords(ctx context.Context, userID int64) ([]UserWordDetail, error) {
	rows, err := q.conn(ctx).Query(ctx, listUserWords, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (UserWordDetail, error) {
		var d UserWordDetail
		var status string
		err := row.Scan(
			&d.ID, &d.UserID, &d.WordID, &status, &d.Description, &d.CreatedAt,
			&d.Word.ID, &d.Word.Word, &d.Word.Meaning, &d.Word.Pronunciation, &d.Word.CreatedAt, &d.Word.UpdatedAt,
		)
		d.Status = WordStatus(status)
		return d, err
	})
}

const updateUserWord = `UPDATE user_words
SET status = COALESCE($3, status), description = COALESCE($4, description)
WHERE id = $1 AND user_id = $2
RETURNING ` + userWordColumns

func (q *Queries) UpdateUserWord(ctx context.Context, arg UpdateUserWordParams) (UserWord, error) {
	var status *string
	if arg.Status != nil {
		s := string(*arg.Status)
		status = &s
	}
	row := q.conn(ctx).QueryRow(ctx, updateUserWord, arg.ID, arg.UserID, status, arg.Description)
	return scanUserWord(row)
}

const deleteUserWord = `DELETE FROM user_words WHERE id = $1 AND user_id = $2`

func (q *Queries) DeleteUserWord(ctx context.Context, arg DeleteUserWordParams) error {
	tag, err := q.conn(ctx).Exec(ctx, deleteUserWord, arg.ID, arg.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanUserWord(row scanner) (UserWord, error) {
	var uw UserWord
	var status string
	err := row.Scan(&uw.ID, &uw.UserID, &uw.WordID, &status, &uw.Description, &uw.CreatedAt)
	uw.Status = WordStatus(status)
	return uw, err
}
