// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{in: "en", want: English},
		{in: "BR", want: Portuguese},
		{in: "pt", want: Portuguese},
		{in: "pt-BR", want: Portuguese},
		{in: "pt_BR.UTF-8", want: Portuguese},
		{in: "en_US.UTF-8", want: English},
		{in: "en-GB", want: English},
		{in: "C", want: English},
		{in: "", wantErr: true},
		{in: "fr", wantErr: true},
		{in: "not a tag!", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "language")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetect_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, English, Detect(""))
	assert.Equal(t, English, Detect("ja_JP.UTF-8"))
	assert.Equal(t, Portuguese, Detect("pt_BR.UTF-8"))
}

func TestFor_ReturnsIndependentCopies(t *testing.T) {
	a := For(English)
	a.Suggestions[0] = "mutated"
	a.MockReplies[0].Reply = "mutated"

	b := For(English)
	assert.Equal(t, "What's your experience?", b.Suggestions[0])
	assert.NotEqual(t, "mutated", b.MockReplies[0].Reply)
}

func TestFor_UnknownLanguageIsEnglish(t *testing.T) {
	assert.Equal(t, English, For(Language("xx")).Language)
}

func TestCopyTables_Complete(t *testing.T) {
	for _, lang := range Supported() {
		t.Run(string(lang), func(t *testing.T) {
			c := For(lang)
			assert.Equal(t, lang, c.Language)
			assert.NotEmpty(t, c.Greeting)
			assert.NotEmpty(t, c.OfflineGreeting)
			assert.NotEmpty(t, c.ProviderError)
			assert.NotEmpty(t, c.SourcesHeading)
			assert.NotEmpty(t, c.MockFallback)
			require.Len(t, c.Suggestions, 4)
			require.Len(t, c.MockReplies, 4)

			// Every chip must hit its own canned reply when the mock
			// provider is active.
			for i, s := range c.Suggestions {
				assert.True(t, strings.EqualFold(s, c.MockReplies[i].Trigger),
					"suggestion %q does not match trigger %q", s, c.MockReplies[i].Trigger)
			}
		})
	}
}

func TestLanguage_Tag(t *testing.T) {
	assert.Equal(t, "pt-BR", Portuguese.Tag().String())
	assert.Equal(t, "en", English.Tag().String())
}
