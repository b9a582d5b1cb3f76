package rows

import (
	"fmt"
	"strings"

	"masterlist/common"
)

// SchemaError reports sheet which lacks one or both required columns.
type SchemaError struct {
	Sheet string
	Want  []string
	Found []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet %q must contain columns %s, found columns: [%s]",
		e.Sheet, quoteAll(e.Want), strings.Join(quoteList(e.Found), ", "))
}

// Is makes SchemaError match common.ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == common.ErrSchema
}

func quoteList(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}

func quoteAll(list []string) string {
	return strings.Join(quoteList(list), " and ")
}
