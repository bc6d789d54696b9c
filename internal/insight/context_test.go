package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFirstPrecedence(t *testing.T) {
	got := ResolveFirst(
		FieldCandidate{Source: "account", Value: "Riley"},
		FieldCandidate{Source: "preferences", Value: "Ry"},
	)
	assert.Equal(t, "Riley", got.Value)
	assert.Equal(t, "account", got.Source)
}

func TestResolveFirstSkipsEmpty(t *testing.T) {
	got := ResolveFirst(
		FieldCandidate{Source: "account", Value: ""},
		FieldCandidate{Source: "preferences", Value: "Ry"},
	)
	assert.Equal(t, "Ry", got.Value)
	assert.Equal(t, "preferences", got.Source)
}

func TestResolveFirstAllEmpty(t *testing.T) {
	got := ResolveFirst(
		FieldCandidate{Source: "account", Value: ""},
		FieldCandidate{Source: "preferences", Value: ""},
	)
	assert.Equal(t, "", got.Value)
	assert.Equal(t, "", got.Source)
}
