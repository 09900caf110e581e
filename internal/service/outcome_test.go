package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveOutcomePredicates(t *testing.T) {
	tests := []struct {
		name       string
		outcome    SaveOutcome
		fullySaved bool
		localOnly  bool
	}{
		{"both ok", SaveOutcome{Local: WriteOK, Remote: WriteOK}, true, false},
		{"remote skipped", SaveOutcome{Local: WriteOK, Remote: WriteSkipped}, false, true},
		{"remote failed", SaveOutcome{Local: WriteOK, Remote: WriteErr}, false, true},
		{"local failed", SaveOutcome{Local: WriteErr, Remote: WriteSkipped}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fullySaved, tt.outcome.FullySaved())
			assert.Equal(t, tt.localOnly, tt.outcome.LocalOnly())
		})
	}
}

func TestSaveOutcomeDescribe(t *testing.T) {
	assert.Equal(t, "saved locally and to the remote database",
		SaveOutcome{Local: WriteOK, Remote: WriteOK}.Describe())
	assert.Equal(t, "saved locally (remote database not configured, skipped)",
		SaveOutcome{Local: WriteOK, Remote: WriteSkipped}.Describe())
	assert.Equal(t, "saved locally, remote save failed",
		SaveOutcome{Local: WriteOK, Remote: WriteErr}.Describe())
	assert.Equal(t, "save failed",
		SaveOutcome{Local: WriteErr, Remote: WriteSkipped}.Describe())
}
