package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhereClauseAlwaysScopedToOwner(t *testing.T) {
	where, args := JobFilter{OwnerID: "u1"}.whereClause()
	require.Equal(t, "created_by = $1", where)
	require.Equal(t, []any{"u1"}, args)
}

func TestWhereClauseSearchMatchesPositionOrCompany(t *testing.T) {
	where, args := JobFilter{OwnerID: "u1", Search: "engineer"}.whereClause()
	require.Equal(t, "created_by = $1 AND (position ILIKE $2 OR company ILIKE $3)", where)
	require.Equal(t, []any{"u1", "%engineer%", "%engineer%"}, args)
}

func TestWhereClauseSearchKeepsWildcardCharacters(t *testing.T) {
	_, args := JobFilter{OwnerID: "u1", Search: "100%"}.whereClause()
	require.Equal(t, []any{"u1", "%100%%", "%100%%"}, args)
}

func TestWhereClauseAllSentinelEqualsOmitted(t *testing.T) {
	omitted, omittedArgs := JobFilter{OwnerID: "u1"}.whereClause()
	all, allArgs := JobFilter{OwnerID: "u1", Status: FilterAll, Type: FilterAll}.whereClause()

	require.Equal(t, omitted, all)
	require.Equal(t, omittedArgs, allArgs)
}

func TestWhereClauseStatusAndTypeFilters(t *testing.T) {
	where, args := JobFilter{
		OwnerID: "u1",
		Search:  "go",
		Status:  "interview",
		Type:    "part-time",
	}.whereClause()

	require.Equal(t,
		"created_by = $1 AND (position ILIKE $2 OR company ILIKE $3) AND job_status = $4 AND job_type = $5",
		where)
	require.Equal(t, []any{"u1", "%go%", "%go%", "interview", "part-time"}, args)
}

func TestOrderByMapping(t *testing.T) {
	cases := map[string]string{
		SortNewest: "created_at DESC",
		SortOldest: "created_at ASC",
		SortAZ:     "position ASC",
		SortZA:     "position DESC",
		"bogus":    "created_at DESC",
		"":         "created_at DESC",
	}
	for sort, want := range cases {
		require.Equal(t, want, JobFilter{Sort: sort}.orderBy(), "sort %q", sort)
	}
}

func TestNormalizedCoercesPageAndLimit(t *testing.T) {
	norm := JobFilter{}.Normalized()
	require.Equal(t, 1, norm.Page)
	require.Equal(t, 10, norm.Limit)

	norm = JobFilter{Page: -3, Limit: 0}.Normalized()
	require.Equal(t, 1, norm.Page)
	require.Equal(t, 10, norm.Limit)

	norm = JobFilter{Page: 4, Limit: 25}.Normalized()
	require.Equal(t, 4, norm.Page)
	require.Equal(t, 25, norm.Limit)
}

func TestListQueryPagination(t *testing.T) {
	filter := JobFilter{OwnerID: "u1", Page: 3, Limit: 10}.Normalized()
	query, args := filter.listQuery()

	require.Contains(t, query, "LIMIT $2 OFFSET $3")
	require.Equal(t, []any{"u1", 10, 20}, args)
}

func TestCountQueryMatchesListFilter(t *testing.T) {
	filter := JobFilter{OwnerID: "u1", Search: "dev", Status: "pending", Page: 7, Limit: 5}.Normalized()

	listQuery, listArgs := filter.listQuery()
	countQuery, countArgs := filter.countQuery()

	// The count sees the same predicate but never the page window.
	require.Equal(t, listArgs[:len(listArgs)-2], countArgs)
	require.NotContains(t, countQuery, "LIMIT")
	require.Contains(t, listQuery, "LIMIT")
}

func TestNumPages(t *testing.T) {
	require.Equal(t, 0, NumPages(0, 10))
	require.Equal(t, 1, NumPages(1, 10))
	require.Equal(t, 1, NumPages(10, 10))
	require.Equal(t, 2, NumPages(11, 10))
	require.Equal(t, 4, NumPages(100, 30))
	require.Equal(t, 0, NumPages(5, 0))
}
