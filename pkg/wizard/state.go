// Package wizard defines the intermediate representation of a visually-built
// rule: the data sources, joins, filter groups, aggregation window and field
// projections assembled by the console's rule wizard. The structures here are
// a read-only snapshot handed to the SQL compiler; they are created and
// mutated exclusively by the UI layer.
package wizard

// Source resource types as reported by the rule engine.
const (
	SourceStream = "stream"
	SourceTable  = "table"
	SourceTopic  = "topic"
)

// Cast policies for filter expressions.
const (
	CastAuto   = "auto"
	CastNumber = "number"
	CastString = "string"
)

// SourceConfig describes one data source selected in the wizard.
// The first source in WizardState.Sources is the main source and drives
// the FROM clause.
type SourceConfig struct {
	ID           string `json:"id"`
	ResourceName string `json:"resourceName"`
	ResourceType string `json:"resourceType"`
	Alias        string `json:"alias,omitempty"`
}

// IsStream reports whether the source is an unbounded event source.
func (s SourceConfig) IsStream() bool {
	return s.ResourceType == SourceStream
}

// JoinCondition is one equality (or other comparison) between fields of the
// joined sources.
type JoinCondition struct {
	LeftField  string `json:"leftField"`
	Operator   string `json:"operator"`
	RightField string `json:"rightField"`
}

// JoinConfig joins the main source against another configured source.
// TargetSourceID must reference a SourceConfig.ID; unresolved references
// are skipped by the compiler.
type JoinConfig struct {
	JoinType       string          `json:"joinType"`
	TargetSourceID string          `json:"targetSourceId"`
	Conditions     []JoinCondition `json:"conditions,omitempty"`
}

// FilterExpression is a single comparison inside a filter group.
// Value is always carried as a string at this layer; CastType controls how
// the compiler coerces the two sides.
type FilterExpression struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
	CastType string `json:"castType,omitempty"`
}

// FilterConfig is one filter group. Logic is the connective joining this
// group to the previous group and is meaningless for the first group.
// Expressions within a group are always ANDed.
type FilterConfig struct {
	Logic       string             `json:"logic"`
	Expressions []FilterExpression `json:"expressions,omitempty"`
}

// AggregateConfig holds the optional aggregation step: group-by fields plus
// a window definition. Zero values for WindowLength and WindowInterval mean
// unset.
type AggregateConfig struct {
	Enabled        bool     `json:"enabled"`
	WindowType     string   `json:"windowType,omitempty"`
	WindowUnit     string   `json:"windowUnit,omitempty"`
	WindowLength   int      `json:"windowLength,omitempty"`
	WindowInterval int      `json:"windowInterval,omitempty"`
	GroupByFields  []string `json:"groupByFields,omitempty"`
}

// SelectionConfig is one explicit projection column.
type SelectionConfig struct {
	Field string `json:"field"`
	Alias string `json:"alias,omitempty"`
}

// Field is one schema entry for a source, as reported by the rule engine's
// metadata endpoint.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// WizardState is the full wizard snapshot for one compilation. Step and
// TestOutput track UI state and are ignored by the compiler.
type WizardState struct {
	Sources     []SourceConfig     `json:"sources"`
	Joins       []JoinConfig       `json:"joins,omitempty"`
	Filters     []FilterConfig     `json:"filters,omitempty"`
	Aggregation AggregateConfig    `json:"aggregation"`
	Selections  []SelectionConfig  `json:"selections,omitempty"`
	Fields      map[string][]Field `json:"fields,omitempty"`

	Step       int    `json:"step,omitempty"`
	TestOutput string `json:"testOutput,omitempty"`
}

// MainSource returns the first configured source, or nil if none exist.
func (s *WizardState) MainSource() *SourceConfig {
	if s == nil || len(s.Sources) == 0 {
		return nil
	}
	return &s.Sources[0]
}

// SourceByID resolves a source by its wizard-assigned ID.
// Returns nil if no source matches.
func (s *WizardState) SourceByID(id string) *SourceConfig {
	if s == nil || id == "" {
		return nil
	}
	for i := range s.Sources {
		if s.Sources[i].ID == id {
			return &s.Sources[i]
		}
	}
	return nil
}
