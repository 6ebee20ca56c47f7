package tenant

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"siparisqr/internal/pkg/errs"
)

const (
	// MinSlugLength and MaxSlugLength bound an issuable slug, inclusive.
	MinSlugLength = 3
	MaxSlugLength = 50

	// MaxSlugAttempts bounds the numeric suffixes GenerateUniqueSlug tries after the base.
	MaxSlugAttempts = 1000

	// MaxSuggestions is the number of slugs SuggestSlugs returns at most, primary included.
	MaxSuggestions = 5
)

var (
	slugPattern        = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	disallowedChars    = regexp.MustCompile(`[^a-z0-9\s-]`)
	separatorRuns      = regexp.MustCompile(`[\s-]+`)
	suggestionSuffixes = []string{"restaurant", "cafe", "bistro", "kitchen", "place"}
)

// reservedSlugs are labels used by platform routes. They are never issued to a tenant.
var reservedSlugs = map[string]struct{}{
	"www": {}, "api": {}, "admin": {}, "portal": {}, "yonetim": {}, "app": {}, "mail": {},
	"ftp": {}, "blog": {}, "help": {}, "support": {}, "contact": {}, "about": {}, "pricing": {},
	"terms": {}, "privacy": {}, "login": {}, "register": {}, "dashboard": {}, "kitchen": {}, "menu": {},
}

// GenerateSlug derives a URL identifier from a display name.
//
// The transform lowercases the name, drops every character outside [a-z0-9], whitespace
// and hyphen, collapses whitespace and hyphen runs into one hyphen and trims hyphens at
// both ends. Non-ASCII letters are dropped, not transliterated. The result is deterministic
// and may be empty; callers check it with IsValidSlug.
//
// Example:
//
//	GenerateSlug("Kahve  Durağı!") // "kahve-dura"
func GenerateSlug(name string) string {
	s := strings.ToLower(name)
	s = disallowedChars.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug reports whether slug is lowercase alphanumeric words joined by single
// hyphens and between MinSlugLength and MaxSlugLength characters long.
func IsValidSlug(slug string) bool {
	return len(slug) >= MinSlugLength && len(slug) <= MaxSlugLength && slugPattern.MatchString(slug)
}

// IsReserved reports whether slug names a platform route. The check ignores case.
func IsReserved(slug string) bool {
	_, ok := reservedSlugs[strings.ToLower(slug)]
	return ok
}

// IsIssuable reports whether slug may be given to a tenant, ignoring uniqueness.
func IsIssuable(slug string) bool {
	return IsValidSlug(slug) && !IsReserved(slug)
}

// TruncateSlug shortens slug to at most n characters. The cut is moved back to the
// last hyphen when it would split a word, and trailing hyphens are dropped.
//
// Example:
//
//	TruncateSlug("kahve-duragi-moda", 14) // "kahve-duragi"
func TruncateSlug(slug string, n int) string {
	if len(slug) <= n {
		return slug
	}
	if n <= 0 {
		return ""
	}
	cut := slug[:n]
	if slug[n] != '-' {
		if i := strings.LastIndexByte(cut, '-'); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.Trim(cut, "-")
}

// GenerateUniqueSlug returns base when it is issuable and not in existing, otherwise the
// first free "base-N" for N in 1..MaxSlugAttempts. When "base-N" would exceed
// MaxSlugLength, base is shortened with TruncateSlug to make room for the suffix.
//
// base must be lowercase alphanumeric words joined by single hyphens and at most
// MaxSlugLength long, otherwise ValueIsInvalidError is returned. It returns
// errs.ExhaustedError when every candidate is taken or not issuable.
func GenerateUniqueSlug(base string, existing []string) (string, error) {
	if base == "" {
		return "", errs.NewValueIsRequiredError("slug")
	}
	if len(base) > MaxSlugLength || !slugPattern.MatchString(base) {
		return "", errs.NewValueIsInvalidErrorWithCause("slug",
			fmt.Errorf("%q must match %s and be at most %d characters", base, slugPattern, MaxSlugLength))
	}

	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}
	free := func(candidate string) bool {
		_, used := taken[candidate]
		return !used && IsIssuable(candidate)
	}

	if free(base) {
		return base, nil
	}
	for n := 1; n <= MaxSlugAttempts; n++ {
		suffix := fmt.Sprintf("-%d", n)
		stem := TruncateSlug(base, MaxSlugLength-len(suffix))
		if stem == "" {
			break
		}
		if candidate := stem + suffix; free(candidate) {
			return candidate, nil
		}
	}
	return "", errs.NewExhaustedError("slug", MaxSlugAttempts)
}

// SuggestSlugs derives a primary unique slug from name and appends unique variations
// with the suffixes restaurant, cafe, bistro, kitchen and place. Names producing a
// slug longer than MaxSlugLength are shortened with TruncateSlug. At most
// MaxSuggestions slugs are returned, the primary one first.
func SuggestSlugs(name string, existing []string) (string, []string, error) {
	base := TruncateSlug(GenerateSlug(name), MaxSlugLength)
	if !IsValidSlug(base) {
		return "", nil, errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q does not produce a valid slug", name))
	}

	primary, err := GenerateUniqueSlug(base, existing)
	if err != nil {
		return "", nil, err
	}

	suggestions := []string{primary}
	for _, suffix := range suggestionSuffixes {
		if len(suggestions) == MaxSuggestions {
			break
		}
		stem := TruncateSlug(base, MaxSlugLength-len(suffix)-1)
		if stem == "" {
			continue
		}
		variation, err := GenerateUniqueSlug(stem+"-"+suffix, existing)
		if err != nil {
			continue
		}
		if !slices.Contains(suggestions, variation) {
			suggestions = append(suggestions, variation)
		}
	}
	return primary, suggestions, nil
}

// Slug is an issuable tenant identifier. Once assigned to a tenant it never changes.
type Slug struct {
	value string
}

// NewSlug validates s as an issuable slug.
func NewSlug(s string) (Slug, error) {
	if s == "" {
		return Slug{}, errs.NewValueIsRequiredError("slug")
	}
	if !IsValidSlug(s) {
		return Slug{}, errs.NewValueIsInvalidErrorWithCause("slug",
			fmt.Errorf("%q must match %s and be %d-%d characters", s, slugPattern, MinSlugLength, MaxSlugLength))
	}
	if IsReserved(s) {
		return Slug{}, errs.NewValueIsInvalidErrorWithCause("slug", fmt.Errorf("%q is reserved", s))
	}
	return Slug{value: s}, nil
}

func (s Slug) String() string {
	return s.value
}

// IsZero reports whether the slug was never constructed.
func (s Slug) IsZero() bool {
	return s.value == ""
}
