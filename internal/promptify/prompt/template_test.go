package prompt

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIsDeterministic(t *testing.T) {
	first, err := Build("write a haiku")
	require.NoError(t, err)
	second, err := Build("write a haiku")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildEmbedsRequestVerbatim(t *testing.T) {
	tests := []struct {
		name    string
		request string
	}{
		{name: "plain", request: "write a haiku"},
		{name: "surrounding whitespace", request: "  spaced out \n"},
		{name: "quotes and markup", request: `say "hi" <b>&amp;</b> {{.Request}}`},
		{name: "percent signs", request: "100% sure %s %d"},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				out, err := Build(tt.request)
				require.NoError(t, err)
				assert.Equal(t, 1, strings.Count(out, `user request: "`+tt.request+`"`))
			},
		)
	}
}

func TestBuildDiffersOnlyAtSubstitution(t *testing.T) {
	a, err := Build("alpha")
	require.NoError(t, err)
	b, err := Build("beta")
	require.NoError(t, err)

	assert.Equal(t, strings.Replace(a, `"alpha"`, `"beta"`, 1), b)
}

func TestBuildCarriesInstructions(t *testing.T) {
	out, err := Build("anything")
	require.NoError(t, err)

	assert.Contains(t, out, "expert Prompt Engineer")
	assert.Contains(t, out, "these 30 advanced prompting techniques")
	for i, tech := range Techniques {
		assert.Contains(t, out, tech.Name, "technique %d missing", i+1)
	}
	assert.Contains(t, out, "30. Simulated Feedback Prompting - Include feedback loops")

	markers := regexp.MustCompile(`(Simple|Balanced|Advanced) Prompt \(Accuracy: \d{2}%\)`)
	assert.Len(t, markers.FindAllString(out, -1), 3)

	assert.Contains(t, out, "Overall Analysis")
	assert.Contains(t, out, "Recommendations")
	assert.Contains(t, out, "Do not use any asterisks (*) or markdown formatting")
	assert.Contains(t, out, "not as code or structured data")
}

func TestCatalogueMarkdown(t *testing.T) {
	md := CatalogueMarkdown()

	assert.Len(t, Techniques, 30)
	assert.True(t, strings.HasPrefix(md, "# Prompting techniques\n"))
	assert.Contains(t, md, "1. **Chain-of-Thought Prompting**: Break complex tasks into step-by-step reasoning\n")
	assert.Equal(t, 30, strings.Count(md, "**: "))
}
