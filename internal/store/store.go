// Package store provides access to the two pre-joined reporting views. Rows
// cross this boundary as flat field-name to value mappings; typing happens
// later, at the report sanitation step.
package store

import "context"

// View names, as exposed by the upstream database.
const (
	CampaignView = "all_influencer_campaigns"
	TargetView   = "all_market_targets"
)

type Row = map[string]any

type Op string

const (
	OpEq    Op = "eq"
	OpIn    Op = "in"
	OpILike Op = "ilike"
)

// Filter is one server-side predicate over a view column. Column names come
// from the service layer only, never from request input.
type Filter struct {
	Column string
	Op     Op
	Value  any
	Values []string
}

func Eq(col string, v any) Filter        { return Filter{Column: col, Op: OpEq, Value: v} }
func In(col string, vs ...string) Filter { return Filter{Column: col, Op: OpIn, Values: vs} }
func ILike(col, substr string) Filter    { return Filter{Column: col, Op: OpILike, Value: substr} }

// ViewStore is the data-source collaborator. Implementations must be safe
// for concurrent use; every call returns a fresh row slice.
type ViewStore interface {
	Select(ctx context.Context, view string, filters ...Filter) ([]Row, error)
}
