// AngelaMos | 2026
// ids.go

package graph

import (
	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"
)

// canonicalID lower-cases a UUID argument so it compares equal to stored
// keys and token subjects. Text that does not parse is passed on unchanged
// and fails its lookup as not found.
func canonicalID(id graphql.ID) string {
	parsed, err := uuid.Parse(string(id))
	if err != nil {
		return string(id)
	}
	return parsed.String()
}
