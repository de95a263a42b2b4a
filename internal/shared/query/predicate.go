package query

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Predicate-tree filter: a node is either a group (Op AND/OR over child
// Conditions) or a leaf (Field plus a comparison Op with Values). The tree
// is compiled to a parameterized WHERE fragment against a column whitelist
// so caller-supplied field names never reach the SQL text unchecked.

const (
	GroupAnd = "AND"
	GroupOr  = "OR"

	OpEq    = "="
	OpIn    = "IN"
	OpNotIn = "NOT IN"
	OpILike = "ILIKE"
)

type FilterNode struct {
	Op         string       `json:"op"`
	Conditions []FilterNode `json:"conditions,omitempty"`
	Field      string       `json:"field,omitempty"`
	Values     []string     `json:"values,omitempty"`
}

// IsLeaf reports whether the node is a field condition rather than a group.
func (n *FilterNode) IsLeaf() bool {
	return n.Field != ""
}

// ParseFilterNode decodes a JSON predicate tree.
func ParseFilterNode(raw string) (*FilterNode, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var node FilterNode
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return &node, nil
}

// Compile renders the tree to a WHERE fragment and its arguments. The
// allowed map whitelists filterable columns.
func (n *FilterNode) Compile(allowed map[string]bool) (string, []interface{}, error) {
	if n.IsLeaf() {
		return n.compileLeaf(allowed)
	}

	op := strings.ToUpper(n.Op)
	if op != GroupAnd && op != GroupOr {
		return "", nil, fmt.Errorf("unknown group operator %q", n.Op)
	}
	if len(n.Conditions) == 0 {
		return "", nil, fmt.Errorf("empty %s group", op)
	}

	parts := make([]string, 0, len(n.Conditions))
	var args []interface{}
	for i := range n.Conditions {
		sql, childArgs, err := n.Conditions[i].Compile(allowed)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}

	return "(" + strings.Join(parts, " "+op+" ") + ")", args, nil
}

func (n *FilterNode) compileLeaf(allowed map[string]bool) (string, []interface{}, error) {
	field := strings.ToLower(n.Field)
	if !allowed[field] {
		return "", nil, fmt.Errorf("field %q is not filterable", n.Field)
	}
	if len(n.Values) == 0 {
		return "", nil, fmt.Errorf("condition on %q has no values", n.Field)
	}

	switch strings.ToUpper(n.Op) {
	case OpEq:
		return field + " = ?", []interface{}{n.Values[0]}, nil
	case OpIn:
		return field + " IN ?", []interface{}{n.Values}, nil
	case OpNotIn:
		return field + " NOT IN ?", []interface{}{n.Values}, nil
	case OpILike:
		// MySQL has no ILIKE; fold both sides instead.
		return "LOWER(" + field + ") LIKE LOWER(?)", []interface{}{"%" + n.Values[0] + "%"}, nil
	default:
		return "", nil, fmt.Errorf("unknown condition operator %q", n.Op)
	}
}
