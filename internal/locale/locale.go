// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Language identifies a supported copy table.
type Language string

const (
	English    Language = "en"
	Portuguese Language = "br"
)

// DefaultLanguage is used when nothing better can be negotiated.
const DefaultLanguage = English

// supported lists the tags in matcher order; the first entry is the fallback.
var supported = []struct {
	lang Language
	tag  language.Tag
}{
	{English, language.English},
	{Portuguese, language.BrazilianPortuguese},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

// Supported returns the supported languages in display order.
func Supported() []Language {
	out := make([]Language, len(supported))
	for i, s := range supported {
		out[i] = s.lang
	}
	return out
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	for _, s := range supported {
		if s.lang == l {
			return s.tag
		}
	}
	return language.Und
}

// Parse resolves a user-supplied language string to a supported Language.
// It accepts the table keys ("en", "br"), BCP 47 tags ("pt-BR", "en-GB") and
// POSIX locale strings ("pt_BR.UTF-8").
func Parse(s string) (Language, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", errors.New("empty language")
	}
	if l := Language(strings.ToLower(raw)); l == English || l == Portuguese {
		return l, nil
	}

	tag, err := language.Parse(normalizePOSIX(raw))
	if err != nil {
		return "", errors.Wrapf(err, "invalid language %q", s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", errors.Errorf("unsupported language %q", s)
	}
	return supported[idx].lang, nil
}

// Detect negotiates a language from a POSIX locale value such as $LANG,
// falling back to DefaultLanguage.
func Detect(posix string) Language {
	if lang, err := Parse(posix); err == nil {
		return lang
	}
	return DefaultLanguage
}

// normalizePOSIX turns "pt_BR.UTF-8@euro" into "pt-BR".
func normalizePOSIX(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return "en"
	}
	return strings.ReplaceAll(s, "_", "-")
}
