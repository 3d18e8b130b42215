// AngelaMos | 2026
// scalars.go

package graph

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateTimeLayout = "2006-01-02T15:04:05.000Z07:00"

var dateTimeInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateTime is serialized as an ISO-8601 UTC timestamp with millisecond
// precision. Inputs also accept a bare date or a timestamp without offset,
// both read as UTC.
type DateTime struct {
	time.Time
}

func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

func (t *DateTime) UnmarshalGraphQL(input any) error {
	switch v := input.(type) {
	case time.Time:
		t.Time = v
		return nil
	case string:
		parsed, err := parseDateTime(v)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	default:
		return fmt.Errorf("DateTime must be a string, got %T", input)
	}
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(dateTimeLayout))
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeInputLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid DateTime %q", s)
}

// NullActivityType distinguishes an omitted typeActivite from an explicit
// null in partial updates.
type NullActivityType struct {
	Value *string
	Set   bool
}

func (NullActivityType) ImplementsGraphQLType(name string) bool {
	return name == "UserActivityType"
}

func (n *NullActivityType) UnmarshalGraphQL(input any) error {
	n.Set = true
	if input == nil {
		return nil
	}

	s, ok := input.(string)
	if !ok {
		return fmt.Errorf("UserActivityType must be a string, got %T", input)
	}
	n.Value = &s
	return nil
}

func (n *NullActivityType) Nullable() {}
