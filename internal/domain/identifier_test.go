package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCustomerCode(t *testing.T) {
	tests := []struct {
		name     string
		customer string
		want     string
	}{
		{"simple name", "Acme", "ACM"},
		{"already uppercase", "IBM", "IBM"},
		{"punctuation skipped", "O'Neill & Co", "ONE"},
		{"digits count", "3M Corp", "3MC"},
		{"non-ascii letters count", "Über GmbH", "ÜBE"},
		{"accented lowercase uppercased", "élan Systems", "ÉLA"},
		{"spaces skipped", "A B C D", "ABC"},
		{"shorter than three", "AB", "AB"},
		{"no alphanumerics", "!!!", "UC"},
		{"empty", "", "UC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CustomerCode(tt.customer))
		})
	}
}

func TestFormatPlanID(t *testing.T) {
	at := time.Date(2025, time.September, 14, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "ACM-2025-09-003", FormatPlanID("Acme", at, 3))
	assert.Equal(t, "UC-2025-09-001", FormatPlanID("!!!", at, 1))

	// Month and sequence are zero padded.
	jan := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "IBM-2026-01-012", FormatPlanID("IBM", jan, 12))
}

func TestActivityEffectiveDuration(t *testing.T) {
	assert.Equal(t, 7, Activity{DurationDays: 7}.EffectiveDuration())
	assert.Equal(t, DefaultActivityDays, Activity{}.EffectiveDuration())
	assert.Equal(t, DefaultActivityDays, Activity{DurationDays: -2}.EffectiveDuration())
}

func TestPlanValidate(t *testing.T) {
	valid := Plan{
		Name:              "Churn prediction",
		Customer:          "Acme",
		SolutionArchitect: "Ana Flores",
		AccountExecutive:  "Ben Ochieng",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Plan)
	}{
		{"missing name", func(p *Plan) { p.Name = "" }},
		{"missing customer", func(p *Plan) { p.Customer = "" }},
		{"missing solution architect", func(p *Plan) { p.SolutionArchitect = "" }},
		{"missing account executive", func(p *Plan) { p.AccountExecutive = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}
