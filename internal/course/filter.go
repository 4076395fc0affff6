package course

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"NYCU-SDC/course-catalog-backend/internal"
)

const (
	MaxSearchLength = 255

	FieldDescription  = "description"
	FieldSubject      = "subject"
	FieldCourseNumber = "courseNumber"
)

// patternMetacharacters is the complete set of characters that carry meaning in a
// regular expression. Everything else is copied through unchanged.
const patternMetacharacters = `.*+?^${}()|[]\`

type MatchKind string

const (
	MatchSubstring MatchKind = "substring"
	MatchPrefix    MatchKind = "prefix"
)

// Match describes how one column is compared against user input. Pattern is the
// regular expression handed to the store, already escaped and anchored.
type Match struct {
	Kind            MatchKind
	Text            string
	Pattern         string
	CaseInsensitive bool
}

// Filter maps a field name to its match. Fields without an entry match every record.
type Filter map[string]Match

// EscapePattern prefixes every regular expression metacharacter with a backslash so
// the result matches text literally. Input is expected to be valid UTF-8; invalid
// bytes come out as U+FFFD.
func EscapePattern(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(patternMetacharacters, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

type searchParam struct {
	paramName string
	searchStr string
}

// newSearchParam drops NUL characters and invalid UTF-8 bytes, which no stored
// course can contain, before trimming and checking the length in characters.
func newSearchParam(paramName, searchStr string) (searchParam, error) {
	cleaned := strings.ReplaceAll(strings.ToValidUTF8(searchStr, ""), "\x00", "")
	s := searchParam{
		paramName: paramName,
		searchStr: strings.TrimSpace(cleaned),
	}
	if length := utf8.RuneCountInString(s.searchStr); length > MaxSearchLength {
		return searchParam{}, fmt.Errorf("%w: %s has %d characters", internal.ErrSearchTooLong, paramName, length)
	}
	return s, nil
}

func (s searchParam) match(kind MatchKind) Match {
	pattern := EscapePattern(s.searchStr)
	if kind == MatchPrefix {
		pattern = "^" + pattern
	}
	return Match{
		Kind:            kind,
		Text:            s.searchStr,
		Pattern:         pattern,
		CaseInsensitive: true,
	}
}

// BuildFilter turns optional search parameters into a Filter. Empty or blank
// parameters contribute nothing, so calling it with no input matches all courses.
func BuildFilter(description, subject, courseNumber string) (Filter, error) {
	inputs := []struct {
		name  string
		value string
		kind  MatchKind
	}{
		{FieldDescription, description, MatchSubstring},
		{FieldSubject, subject, MatchSubstring},
		{FieldCourseNumber, courseNumber, MatchPrefix},
	}

	filter := Filter{}
	for _, in := range inputs {
		param, err := newSearchParam(in.name, in.value)
		if err != nil {
			return nil, err
		}
		if param.searchStr == "" {
			continue
		}
		filter[in.name] = param.match(in.kind)
	}

	return filter, nil
}

// Params converts the filter into the store's query arguments.
func (f Filter) Params() SearchParams {
	return SearchParams{
		Description:  f[FieldDescription].Pattern,
		Subject:      f[FieldSubject].Pattern,
		CourseNumber: f[FieldCourseNumber].Pattern,
	}
}
