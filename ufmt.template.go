package ufmt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/itsatony/go-ufmt/internal"
)

// varLookup resolves a named variable to its stored string form.
type varLookup func(name string) (string, bool)

// substitutionIssue records a problem found during substitution.
// Issues never alter the rendered output; they feed strict mode and
// context logging.
type substitutionIssue struct {
	Kind        IssueKind
	Placeholder string
	// Offset is the position of the placeholder in the working buffer
	// at the time the issue was found, after earlier substitutions.
	Offset   int
	ArgIndex int
	ArgCount int
	Variable string
	Value    string
	Spec     string
}

// substitute renders template in three passes: positional placeholders
// with specs {i:spec} first, bare positional placeholders {i} second,
// named placeholders {name} and {name:spec} last. Placeholders that
// cannot be resolved stay in the output verbatim.
func substitute(template string, args []boundArg, vars varLookup) (string, []substitutionIssue) {
	result := template
	var issues []substitutionIssue
	if vars == nil {
		vars = func(string) (string, bool) { return "", false }
	}

	// Pass 1: positional placeholders carrying a spec. An opening
	// marker without a closing brace ends the scan for that argument.
	for i := range args {
		marker := StrPlaceholderOpen + strconv.Itoa(i) + StrSpecSeparator
		pos := 0
		for {
			idx := strings.Index(result[pos:], marker)
			if idx < 0 {
				break
			}
			start := pos + idx
			endIdx := strings.Index(result[start:], StrPlaceholderClose)
			if endIdx < 0 {
				break
			}
			end := start + endIdx
			rendered := args[i].render(result[start+len(marker) : end])
			result = result[:start] + rendered + result[end+1:]
			pos = start + len(rendered)
		}
	}

	// Pass 2: bare positional placeholders take the default rendering.
	for i := range args {
		marker := StrPlaceholderOpen + strconv.Itoa(i) + StrPlaceholderClose
		pos := 0
		for {
			idx := strings.Index(result[pos:], marker)
			if idx < 0 {
				break
			}
			start := pos + idx
			result = result[:start] + args[i].text + result[start+len(marker):]
			pos = start + len(args[i].text)
		}
	}

	// Pass 3: named placeholders. Digit-led content at this point is a
	// positional index without an argument; it is reported and left in
	// place. Unknown variables are likewise reported and left in place.
	pos := 0
	for {
		idx := strings.Index(result[pos:], StrPlaceholderOpen)
		if idx < 0 {
			break
		}
		start := pos + idx
		endIdx := strings.Index(result[start:], StrPlaceholderClose)
		if endIdx < 0 {
			issues = append(issues, substitutionIssue{
				Kind:        IssueUnterminatedPlaceholder,
				Placeholder: result[start:],
				Offset:      start,
			})
			break
		}
		end := start + endIdx
		content := result[start+1 : end]
		if content == "" {
			pos = end + 1
			continue
		}
		if content[0] >= '0' && content[0] <= '9' {
			issues = append(issues, argRangeIssue(content, result[start:end+1], start, len(args)))
			pos = end + 1
			continue
		}

		name, spec, _ := strings.Cut(content, StrSpecSeparator)
		value, ok := vars(name)
		if !ok {
			issues = append(issues, substitutionIssue{
				Kind:        IssueUnknownVariable,
				Placeholder: result[start : end+1],
				Offset:      start,
				Variable:    name,
			})
			pos = end + 1
			continue
		}
		rendered := value
		if spec != "" {
			applied, err := internal.ApplySpec(value, spec)
			if err != nil {
				issues = append(issues, substitutionIssue{
					Kind:        IssueNumericParse,
					Placeholder: result[start : end+1],
					Offset:      start,
					Variable:    name,
					Value:       value,
					Spec:        spec,
				})
			}
			rendered = applied
		}
		result = result[:start] + rendered + result[end+1:]
		pos = start + len(rendered)
	}

	return result, issues
}

// argRangeIssue describes a digit-led placeholder that survived the
// positional passes, which means its index has no argument.
func argRangeIssue(content, placeholder string, offset, argCount int) substitutionIssue {
	digits := content
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			digits = digits[:i]
			break
		}
	}
	index, _ := strconv.Atoi(digits)
	return substitutionIssue{
		Kind:        IssueArgumentRange,
		Placeholder: placeholder,
		Offset:      offset,
		ArgIndex:    index,
		ArgCount:    argCount,
	}
}

// issuesError folds substitution issues into a single error, or nil
// when there are none.
func issuesError(issues []substitutionIssue) error {
	if len(issues) == 0 {
		return nil
	}
	errs := make([]error, len(issues))
	for i, is := range issues {
		errs[i] = issueError(is)
	}
	return errors.Join(errs...)
}
