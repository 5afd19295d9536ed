package repository

import (
	"fmt"
	"strings"
)

// FilterAll is the sentinel filter value meaning "no filter applied".
const FilterAll = "all"

const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortAZ     = "a-z"
	SortZA     = "z-a"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// JobFilter is the client-supplied parameter bag for the job list. The zero
// value of every field means "unfiltered"; Page and Limit are coerced to
// positive values before use.
type JobFilter struct {
	OwnerID string
	Search  string
	Status  string
	Type    string
	Sort    string
	Page    int
	Limit   int
}

// Normalized coerces the page and limit to positive values, applying the
// defaults for anything absent or nonsensical.
func (f JobFilter) Normalized() JobFilter {
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	return f
}

var sortClauses = map[string]string{
	SortNewest: "created_at DESC",
	SortOldest: "created_at ASC",
	SortAZ:     "position ASC",
	SortZA:     "position DESC",
}

func (f JobFilter) orderBy() string {
	if clause, ok := sortClauses[f.Sort]; ok {
		return clause
	}
	return sortClauses[SortNewest]
}

// whereClause composes the ownership-scoped filter. The owner predicate is
// always first; search matches position or company case-insensitively; the
// "all" sentinel on status/type is equivalent to omitting the filter.
func (f JobFilter) whereClause() (string, []any) {
	conds := []string{"created_by = $1"}
	args := []any{f.OwnerID}

	if f.Search != "" {
		// The search term is not escaped, so a literal % or _ acts as a
		// pattern wildcard inside the substring match.
		pattern := "%" + f.Search + "%"
		conds = append(conds, fmt.Sprintf("(position ILIKE $%d OR company ILIKE $%d)", len(args)+1, len(args)+2))
		args = append(args, pattern, pattern)
	}
	if f.Status != "" && f.Status != FilterAll {
		conds = append(conds, fmt.Sprintf("job_status = $%d", len(args)+1))
		args = append(args, f.Status)
	}
	if f.Type != "" && f.Type != FilterAll {
		conds = append(conds, fmt.Sprintf("job_type = $%d", len(args)+1))
		args = append(args, f.Type)
	}

	return strings.Join(conds, " AND "), args
}

func (f JobFilter) listQuery() (string, []any) {
	where, args := f.whereClause()
	query := fmt.Sprintf(
		`SELECT %s FROM jobs WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		jobColumns, where, f.orderBy(), len(args)+1, len(args)+2,
	)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	return query, args
}

func (f JobFilter) countQuery() (string, []any) {
	where, args := f.whereClause()
	return fmt.Sprintf(`SELECT COUNT(*) FROM jobs WHERE %s`, where), args
}

// NumPages is the page count for a total under the given limit; zero when
// there are no matching jobs.
func NumPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
