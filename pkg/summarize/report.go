package summarize

import (
	"fmt"
	"regexp"

	"github.com/gnames/gn"
)

// Exclusion is an entity left out of the dataset with the reason.
type Exclusion struct {
	Name   string
	Reason string
}

// Report collects everything a run wants to tell about the data.
// Entries keep the order in which they were found.
type Report struct {
	ExcludedItems     []Exclusion
	ExcludedResources []Exclusion
	SkippedCrafters   []Exclusion
	ExcludedRecipes   []Exclusion
	Warnings          []string

	// Usable is the number of items that take part in crafting.
	Usable int
	// Unusable lists items that take part in no recipe, sorted.
	Unusable []string
}

// Lines renders the report as plain text lines of the run log.
func (r *Report) Lines() []string {
	var res []string
	section := func(title string, ee []Exclusion) {
		res = append(res, title+":")
		for _, v := range ee {
			res = append(res, fmt.Sprintf("- %s: %s", v.Name, v.Reason))
		}
	}
	section("Excluded items", r.ExcludedItems)
	section("Excluded resources", r.ExcludedResources)
	section("Skipped crafters", r.SkippedCrafters)
	section("Excluded recipes", r.ExcludedRecipes)

	res = append(res, "Warnings:")
	for _, v := range r.Warnings {
		res = append(res, "- "+v)
	}

	res = append(res, fmt.Sprintf(
		"Of the non-excluded items, %d are usable in crafting, "+
			"the following %d are not:",
		r.Usable, len(r.Unusable),
	))
	for _, v := range r.Unusable {
		res = append(res, "- "+v)
	}
	return res
}

func (r *Report) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

var tagRe = regexp.MustCompile(`</?(em|warn|err|title)>`)

// ErrorText returns the user message of an error without markup.
func ErrorText(err error) string {
	if gnErr, ok := err.(*gn.Error); ok && gnErr.Msg != "" {
		msg := tagRe.ReplaceAllString(gnErr.Msg, "")
		return fmt.Sprintf(msg, gnErr.Vars...)
	}
	return err.Error()
}
