package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const wordColumns = `id, word, meaning, pronunciation, created_at, updated_at`

const createWord = `INSERT INTO words (word, meaning, pronunciation)
VALUES ($1, $2, $3)
RETURNING ` + wordColumns

func (q *Queries) CreateWord(ctx context.Context, arg CreateWordParams) (Word, error) {
	return scanWord(q.conn(ctx).QueryRow(ctx, createWord, arg.Word, arg.Meaning, arg.Pronunciation))
}

const getWordByID = `SELECT ` + wordColumns + ` FROM words WHERE id = $1`

func (q *Queries) GetWordByID(ctx context.Context, id int64) (Word, error) {
	return scanWord(q.conn(ctx).QueryRow(ctx, getWordByID, id))
}

const listWords = `SELECT ` + wordColumns + ` FROM words
ORDER BY id
LIMIT $1 OFFSET $2`

func (q *Queries) ListWords(ctx context.Context, arg ListWordsParams) ([]Word, error) {
	rows, err := q.conn(ctx).Query(ctx, listWords, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Word, error) {
		return scanWord(row)
	})
}

const countWords = `SELECT count(*) FROM words`

func (q *Queries) CountWords(ctx context.Context) (int64, error) {
	var n int64
	err := q.conn(ctx).QueryRow(ctx, countWords).Scan(&n)
	return n, err
}

const updateWord = `UPDATE words
SET word = $2, meaning = $3, pronunciation = $4, updated_at = now()
WHERE id = $1
RETURNING ` + wordColumns

func (q *Queries) UpdateWord(ctx context.Context, arg UpdateWordParams) (Word, error) {
	return scanWord(q.conn(ctx).QueryRow(ctx, updateWord, arg.ID, arg.Word, arg.Meaning, arg.Pronunciation))
}

const deleteWord = `DELETE FROM words WHERE id = $1`

// DeleteWord removes the word and, through the foreign key, every user's entry for it.
func (q *Queries) DeleteWord(ctx context.Context, id int64) error {
	tag, err := q.conn(ctx).Exec(ctx, deleteWord, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanWord(row scanner) (Word, error) {
	var w Word
	err := row.Scan(&w.ID, &w.Word, &w.Meaning, &w.Pronunciation, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}
