package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/collaborox/collaboro-gateway/internal/auth"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		password string
		score    int
		label    string
	}{
		{name: "empty", password: "", score: 0, label: "Very Weak"},
		{name: "lowercase only", password: "abc", score: 1, label: "Very Weak"},
		{name: "short mixed case", password: "abcDEF", score: 2, label: "Weak"},
		{name: "long mixed case", password: "abcdEFGH", score: 3, label: "Fair"},
		{name: "with digit", password: "abcdEFG1", score: 4, label: "Good"},
		{name: "all checks", password: "abcdEF1!", score: 5, label: "Strong"},
		{name: "no lowercase", password: "ABCDEF1!", score: 4, label: "Good"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := auth.Score(tt.password)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestScore_Checks(t *testing.T) {
	got := auth.Score("abcdEF1!")
	assert.True(t, got.Checks.Length)
	assert.True(t, got.Checks.Uppercase)
	assert.True(t, got.Checks.Lowercase)
	assert.True(t, got.Checks.Number)
	assert.True(t, got.Checks.Special)

	got = auth.Score("abcdefg")
	assert.False(t, got.Checks.Length)
	assert.False(t, got.Checks.Uppercase)
	assert.True(t, got.Checks.Lowercase)
	assert.False(t, got.Checks.Number)
	assert.False(t, got.Checks.Special)
}
