// Package template holds the consolidated MAP template and the resolver that
// materializes it (or a database template, or an existing plan's activities)
// into a concrete stage/activity list for a new plan.
package template

import (
	"fmt"
	"regexp"
	"strconv"
)

// Conditional tags controlling whether a template activity is included.
type Conditional string

const (
	CondNone Conditional = ""
	CondSSA  Conditional = "ssa"
	CondPOC  Conditional = "poc"
)

// StageCode identifies a MAP stage. Unknown marks a label that carries no
// recognizable code; callers decide how to display it.
type StageCode string

const (
	StageU2      StageCode = "U2"
	StageU3      StageCode = "U3"
	StageU4      StageCode = "U4"
	StageU5      StageCode = "U5"
	StageU6      StageCode = "U6"
	StageUnknown StageCode = ""
)

// DefaultStageOrder is the stage-code order used when materializing the
// default template. U6 exists in the stage map for labeling but carries no
// default activities.
var DefaultStageOrder = []StageCode{StageU2, StageU3, StageU4, StageU5}

// maxStageIndex caps positional synthesis: any stage at index >= 4 labels as U6.
const maxStageIndex = 4

var (
	uCodePattern  = regexp.MustCompile(`U[2-6]`)
	stageNPattern = regexp.MustCompile(`Stage\s+(\d+)`)
)

// ExtractStageCode pulls a stage code out of a free-text stage name. It first
// looks for a literal U2..U6 token, then for a "Stage N" pattern (Stage 1 maps
// to U2 and so on). Returns StageUnknown when neither matches.
func ExtractStageCode(stageName string) StageCode {
	if m := uCodePattern.FindString(stageName); m != "" {
		return StageCode(m)
	}
	if m := stageNPattern.FindStringSubmatch(stageName); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 {
			if n > maxStageIndex+1 {
				return StageU6
			}
			return StageCode(fmt.Sprintf("U%d", n+1))
		}
	}
	return StageUnknown
}

// StageCodeAt resolves the display code for a stage: the code embedded in its
// name when present, otherwise one synthesized from its position in the plan
// (index 0 -> U2, capped at U6). Labeling is cosmetic and never feeds back
// into scheduling.
func StageCodeAt(stageName string, index int) StageCode {
	if code := ExtractStageCode(stageName); code != StageUnknown {
		return code
	}
	if index >= maxStageIndex {
		return StageU6
	}
	return StageCode(fmt.Sprintf("U%d", index+2))
}

// StageTemplate is one stage of the consolidated template: a display name,
// a description, and an ordered activity list.
type StageTemplate struct {
	Name        string
	Description string
	Activities  []TemplateActivity
}

// TemplateActivity is a single template row. Owner holds role tokens such as
// "AE/SA" that the resolver substitutes with real names.
type TemplateActivity struct {
	Outcome     string
	Questions   string
	Owner       string
	Conditional Conditional
}

// StageName formats the conventional "U2 - Uncover" style display name for a
// stage code present in the given template map. Codes without a template
// entry render as the bare code.
func StageName(templates map[StageCode]StageTemplate, code StageCode) string {
	if st, ok := templates[code]; ok {
		return fmt.Sprintf("%s - %s", code, st.Name)
	}
	return string(code)
}
