package stores

import (
	"strings"

	"golang.org/x/text/language"
)

const fallbackLocale = "en"

// Environment is what the host tells us about the user's taste.
type Environment struct {
	PrefersDark bool
	Languages   []string
}

// DetectEnvironment inspects the terminal environment through getenv.
//
// Dark mode: MANTIS_COLOR_SCHEME=dark|light wins; otherwise COLORFGBG with
// a background index of 0-6 or 8 counts as dark.
// Languages: LANGUAGE (colon separated), LC_ALL, LC_MESSAGES, LANG, in
// that order of precedence.
func DetectEnvironment(getenv func(string) string) Environment {
	env := Environment{}

	switch strings.ToLower(strings.TrimSpace(getenv("MANTIS_COLOR_SCHEME"))) {
	case "dark":
		env.PrefersDark = true
	case "light":
		env.PrefersDark = false
	default:
		env.PrefersDark = darkBackground(getenv("COLORFGBG"))
	}

	for _, v := range strings.Split(getenv("LANGUAGE"), ":") {
		if v = strings.TrimSpace(v); v != "" {
			env.Languages = append(env.Languages, v)
		}
	}
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			env.Languages = append(env.Languages, v)
		}
	}

	return env
}

func darkBackground(colorfgbg string) bool {
	if colorfgbg == "" {
		return false
	}
	parts := strings.Split(colorfgbg, ";")
	switch parts[len(parts)-1] {
	case "0", "1", "2", "3", "4", "5", "6", "8":
		return true
	}
	return false
}

// PreferredLocale returns the first usable language as a BCP 47 tag.
func (e Environment) PreferredLocale() string {
	for _, l := range e.Languages {
		if tag, ok := normalizeLocale(l); ok {
			return tag
		}
	}
	return fallbackLocale
}

// normalizeLocale turns POSIX values like "de_DE.UTF-8" into "de-DE".
// "C" and "POSIX" carry no language.
func normalizeLocale(v string) (string, bool) {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil || tag == language.Und {
		return "", false
	}
	return tag.String(), true
}
