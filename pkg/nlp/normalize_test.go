package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello,   World! ", "hello world"},
		{"C++ / C#", "c++ c#"},
		{"Node.js", "node js"},
		{"CI/CD", "ci cd"},
		{"REST-API", "rest api"},
		{"", ""},
		{"///", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}

func TestContainsPhrase(t *testing.T) {
	text := Normalize("Built REST API services with PostgreSQL and Go")

	assert.True(t, ContainsPhrase(text, "rest api"))
	assert.True(t, ContainsPhrase(text, "go"))
	assert.False(t, ContainsPhrase(text, "postgres"))  // whole words only
	assert.False(t, ContainsPhrase(text, "api servic")) // no prefix match
	assert.False(t, ContainsPhrase(text, ""))
}

func TestSkillVariants(t *testing.T) {
	assert.ElementsMatch(t, []string{"go", "golang"}, SkillVariants("Go"))
	assert.ElementsMatch(t, []string{"k8s", "kubernetes"}, SkillVariants("K8s"))
	assert.ElementsMatch(t, []string{"rust"}, SkillVariants("rust"))
	assert.Empty(t, SkillVariants("  "))
}
