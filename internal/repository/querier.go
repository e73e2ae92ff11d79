package repository

import "context"

// Querier is the persistence surface used by the API.
//
// Lookups of missing rows return pgx.ErrNoRows (check with pg.IsNotFoundError).
// Unique and foreign key violations surface as *pgconn.PgError.
type Querier interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)

	CreateWord(ctx context.Context, arg CreateWordParams) (Word, error)
	GetWordByID(ctx context.Context, id int64) (Word, error)
	ListWords(ctx context.Context, arg ListWordsParams) ([]Word, error)
	CountWords(ctx context.Context) (int64, error)
	UpdateWord(ctx context.Context, arg UpdateWordParams) (Word, error)
	DeleteWord(ctx context.Context, id int64) error

	AddUserWord(ctx context.Context, arg AddUserWordParams) (UserWord, error)
	ListUserWords(ctx context.Context, userID int64) ([]UserWordDetail, error)
	UpdateUserWord(ctx context.Context, arg UpdateUserWordParams) (UserWord, error)
	DeleteUserWord(ctx context.Context, arg DeleteUserWordParams) error
}

type CreateUserParams struct {
	Email        string
	PasswordHash []byte
	Nickname     string
}

type CreateWordParams struct {
	Word          string
	Meaning       string
	Pronunciation string
}

type ListWordsParams struct {
	Limit  int32
	Offset int32
}

type UpdateWordParams struct {
	ID            int64
	Word          string
	Meaning       string
	Pronunciation string
}

type AddUserWordParams struct {
	UserID      int64
	WordID      int64
	Status      WordStatus
	Description string
}

// UpdateUserWordParams changes only the non-nil fields.
type UpdateUserWordParams struct {
	ID          int64
	UserID      int64
	Status      *WordStatus
	Description *string
}

type DeleteUserWordParams struct {
	ID     int64
	UserID int64
}
