package lead

import (
	"strconv"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

// AssembleRows zips the parsed columns into rows by positional index. The
// username column is authoritative: its length determines the row count.
// Optional columns shorter than that yield nil for the missing positions;
// longer columns have their trailing entries ignored.
func AssembleRows(columns domain.ColumnSet) []domain.Lead {
	usernames := ParseColumn(columns.Usernames)
	if len(usernames) == 0 {
		return nil
	}

	followers := ParseColumn(columns.Followers)
	following := ParseColumn(columns.Following)
	posts := ParseColumn(columns.Posts)
	fullNames := ParseColumn(columns.FullNames)
	bios := ParseColumn(columns.Bios)
	profileURLs := ParseColumn(columns.ProfileURLs)

	rows := make([]domain.Lead, 0, len(usernames))
	for i, username := range usernames {
		rows = append(rows, domain.Lead{
			Username:       username,
			FollowersCount: countAt(followers, i),
			FollowingCount: countAt(following, i),
			PostsCount:     countAt(posts, i),
			FullName:       textAt(fullNames, i),
			Bio:            textAt(bios, i),
			ProfileURL:     textAt(profileURLs, i),
		})
	}
	return rows
}

// countAt coerces the aligned entry to an integer count. A non-numeric entry
// becomes nil rather than an error; numeric validity is not a hard failure
// at this stage.
func countAt(column []string, i int) *int64 {
	if i >= len(column) {
		return nil
	}
	n, err := strconv.ParseInt(column[i], 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func textAt(column []string, i int) *string {
	if i >= len(column) {
		return nil
	}
	return &column[i]
}
