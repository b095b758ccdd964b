package lead

import "strings"

// ColumnSet is the raw operator input: one newline-delimited text blob per
// field. Only Usernames is required; the rest align to it by line index.
type ColumnSet struct {
	Usernames   string
	Followers   string
	Following   string
	Posts       string
	FullNames   string
	Bios        string
	ProfileURLs string
}

// Lead is one assembled import row. Optional fields are nil when the aligned
// column had no entry, or, for counts, when the entry was not numeric.
type Lead struct {
	Username       string
	FollowersCount *int64
	FollowingCount *int64
	PostsCount     *int64
	FullName       *string
	Bio            *string
	ProfileURL     *string
}

func (l Lead) Validate() error {
	if strings.TrimSpace(l.Username) == "" {
		return ErrEmptyUsername
	}
	return nil
}

// ValidationError describes a structural problem with a single assembled row,
// detected before any insert is attempted.
type ValidationError struct {
	RowIndex int    `json:"row_index"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}
