package repository

import "time"

// WordStatus is a user's learning state for a word.
type WordStatus string

const (
	StatusLearning  WordStatus = "L"
	StatusMemorized WordStatus = "M"
)

// Valid reports whether s is a known status.
func (s WordStatus) Valid() bool {
	return s == StatusLearning || s == StatusMemorized
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	Nickname     string    `json:"nickname"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Word struct {
	ID            int64     `json:"id"`
	Word          string    `json:"word"`
	Meaning       string    `json:"meaning"`
	Pronunciation string    `json:"pronunciation"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type UserWord struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	WordID      int64      `json:"word_id"`
	Status      WordStatus `json:"status"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UserWordDetail is a UserWord joined with its word.
type UserWordDetail struct {
	UserWord
	Word Word `json:"word"`
}
