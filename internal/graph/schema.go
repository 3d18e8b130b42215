// AngelaMos | 2026
// schema.go

package graph

import (
	_ "embed"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	gqlotel "github.com/graph-gophers/graphql-go/trace/otel"
)

//go:embed schema.graphql
var schemaSDL string

func NewSchema(resolver *Resolver, maxDepth int) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{
		graphql.Tracer(gqlotel.DefaultTracer()),
	}
	if maxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(maxDepth))
	}

	schema, err := graphql.ParseSchema(schemaSDL, resolver, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}

	return schema, nil
}
