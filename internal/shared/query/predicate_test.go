package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAllowed = map[string]bool{
	"status":     true,
	"number":     true,
	"factory_id": true,
}

func TestFilterNode_Compile_Leaf(t *testing.T) {
	tests := []struct {
		name     string
		node     FilterNode
		wantSQL  string
		wantArgs int
	}{
		{
			name:     "equality",
			node:     FilterNode{Field: "status", Op: "=", Values: []string{"open"}},
			wantSQL:  "status = ?",
			wantArgs: 1,
		},
		{
			name:     "in",
			node:     FilterNode{Field: "status", Op: "IN", Values: []string{"open", "released"}},
			wantSQL:  "status IN ?",
			wantArgs: 1,
		},
		{
			name:     "not in",
			node:     FilterNode{Field: "factory_id", Op: "NOT IN", Values: []string{"3"}},
			wantSQL:  "factory_id NOT IN ?",
			wantArgs: 1,
		},
		{
			name:     "ilike folds case",
			node:     FilterNode{Field: "number", Op: "ILIKE", Values: []string{"PAL-AUS"}},
			wantSQL:  "LOWER(number) LIKE LOWER(?)",
			wantArgs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.node.Compile(testAllowed)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func TestFilterNode_Compile_Group(t *testing.T) {
	node := FilterNode{
		Op: "OR",
		Conditions: []FilterNode{
			{Field: "status", Op: "=", Values: []string{"open"}},
			{
				Op: "AND",
				Conditions: []FilterNode{
					{Field: "factory_id", Op: "IN", Values: []string{"1", "2"}},
					{Field: "number", Op: "ILIKE", Values: []string{"pal"}},
				},
			},
		},
	}

	sql, args, err := node.Compile(testAllowed)
	require.NoError(t, err)
	assert.Equal(t, "(status = ? OR (factory_id IN ? AND LOWER(number) LIKE LOWER(?)))", sql)
	assert.Len(t, args, 3)
}

func TestFilterNode_Compile_Errors(t *testing.T) {
	tests := []struct {
		name string
		node FilterNode
	}{
		{"unknown field", FilterNode{Field: "password", Op: "=", Values: []string{"x"}}},
		{"unknown operator", FilterNode{Field: "status", Op: "LIKE", Values: []string{"x"}}},
		{"no values", FilterNode{Field: "status", Op: "="}},
		{"bad group op", FilterNode{Op: "XOR", Conditions: []FilterNode{{Field: "status", Op: "=", Values: []string{"x"}}}}},
		{"empty group", FilterNode{Op: "AND"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.node.Compile(testAllowed)
			assert.Error(t, err)
		})
	}
}

func TestParseFilterNode(t *testing.T) {
	node, err := ParseFilterNode(`{"op":"AND","conditions":[{"field":"status","op":"=","values":["open"]}]}`)
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Len(t, node.Conditions, 1)
	assert.Equal(t, "status", node.Conditions[0].Field)

	node, err = ParseFilterNode("")
	require.NoError(t, err)
	assert.Nil(t, node)

	_, err = ParseFilterNode("{not json")
	assert.Error(t, err)
}
