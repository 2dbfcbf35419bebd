package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionsEmpty(t *testing.T) {
	var cond Conditions

	assert.Empty(t, cond.Where())
	assert.Empty(t, cond.Args())
}

func TestConditionsJoinsWithAnd(t *testing.T) {
	var cond Conditions
	cond.Add("plate LIKE ?", "%123%")
	cond.Add("status = ?", "complete")

	assert.Equal(t, "WHERE plate LIKE ? AND status = ?", cond.Where())
	assert.Equal(t, []any{"%123%", "complete"}, cond.Args())
}

func TestConditionsTrailingArgs(t *testing.T) {
	var cond Conditions
	cond.Add("status = ?", "complete")

	assert.Equal(t, []any{"complete", 10, 0}, cond.Args(10, 0))
}

func TestConditionsMultiArgPredicate(t *testing.T) {
	var cond Conditions
	cond.Add("(plate LIKE ? OR make LIKE ? OR model LIKE ?)", "%a%", "%a%", "%a%")

	assert.Equal(t, "WHERE (plate LIKE ? OR make LIKE ? OR model LIKE ?)", cond.Where())
	assert.Len(t, cond.Args(), 3)
}
