package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractStageCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StageCode
	}{
		{"conventional label", "U2 - Uncover", StageU2},
		{"code embedded mid-string", "Phase U4 rollout", StageU4},
		{"stage one maps to U2", "Stage 1", StageU2},
		{"stage four maps to U5", "Stage 4 - Delivery", StageU5},
		{"stage beyond range caps at U6", "Stage 9", StageU6},
		{"U1 is not a valid code", "U1 - Qualify", StageUnknown},
		{"no code at all", "Kickoff", StageUnknown},
		{"empty", "", StageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractStageCode(tt.input))
		})
	}
}

func TestStageCodeAt(t *testing.T) {
	// Embedded codes win over position.
	assert.Equal(t, StageU5, StageCodeAt("U5 - Launch", 0))

	// Positional synthesis: index 0 -> U2 and so on, capped at U6.
	assert.Equal(t, StageU2, StageCodeAt("Kickoff", 0))
	assert.Equal(t, StageU3, StageCodeAt("Kickoff", 1))
	assert.Equal(t, StageU6, StageCodeAt("Kickoff", 4))
	assert.Equal(t, StageU6, StageCodeAt("Kickoff", 12))
}

func TestConsolidatedTemplateShape(t *testing.T) {
	// Each default stage carries activities; U6 is label-only.
	for _, code := range DefaultStageOrder {
		st, ok := Consolidated[code]
		assert.True(t, ok, "stage %s must exist", code)
		assert.NotEmpty(t, st.Activities, "stage %s must have activities", code)
	}
	u6, ok := Consolidated[StageU6]
	assert.True(t, ok)
	assert.Empty(t, u6.Activities)

	assert.Equal(t, "U2 - Uncover", StageName(Consolidated, StageU2))
}
