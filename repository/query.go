package repository

import "strings"

// CarQuery describes a catalog listing: filter text, sort key and pagination
// window. Only this package translates it into SQL, so the service stays free
// of store-specific query types.
type CarQuery struct {
	// FilterBy matches cars whose brand name or registration timestamp
	// (string form) contains the text, case-insensitively. Empty means no
	// filter.
	FilterBy string
	// OrderBy is "brand" or "registration", ascending by default and
	// descending with a "-" prefix. Unrecognized keys apply no sort; that
	// is a documented quirk of the API, not an error.
	OrderBy string
	// Page is 1-based. Pagination applies only when Page >= 1 and
	// Size >= 0; callers enforce those bounds at the ingress layer.
	Page int
	Size int
}

// orderClause resolves the sort key to a SQL clause. The second return is
// false for unrecognized keys.
func (q CarQuery) orderClause() (string, bool) {
	key := q.OrderBy
	desc := strings.HasPrefix(key, "-")
	key = strings.TrimPrefix(key, "-")

	var column string
	switch key {
	case "brand":
		column = "brands.name"
	case "registration":
		column = "cars.registration"
	default:
		return "", false
	}
	if desc {
		return column + " DESC", true
	}
	return column + " ASC", true
}
