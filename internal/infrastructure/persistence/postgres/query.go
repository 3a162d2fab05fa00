package postgres

import (
	"strings"

	"crm_records/internal/domain/repository"
)

// whereClause joins AND-composed filter conditions.
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// sortClause turns an optional Sort into an ORDER BY fragment, mapping
// the caller-facing key through the entity's column whitelist. Unknown
// keys fail with repository.ErrInvalidSortKey before any SQL runs.
func sortClause(sort *repository.Sort, columns map[string]string) (string, error) {
	if sort == nil || sort.Key == "" {
		return "", nil
	}
	col, ok := columns[sort.Key]
	if !ok {
		return "", repository.ErrInvalidSortKey
	}
	if sort.Desc {
		return " ORDER BY " + col + " DESC", nil
	}
	return " ORDER BY " + col + " ASC", nil
}
