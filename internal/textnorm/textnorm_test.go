package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "lowercases and strips diacritics",
			in:   "Café à L'Étoile",
			want: []string{"cafe", "a", "l", "etoile"},
		},
		{
			name: "punctuation becomes separators",
			in:   "serveur/serveuse, urgent!!",
			want: []string{"serveur", "serveuse", "urgent"},
		},
		{
			name: "digits survive",
			in:   "2 extras pour samedi",
			want: []string{"2", "extras", "pour", "samedi"},
		},
		{
			name: "arabic text passes through",
			in:   "مطلوب نادل",
			want: []string{"مطلوب", "نادل"},
		},
		{
			name: "mixed scripts",
			in:   "Serveur نادل wanted",
			want: []string{"serveur", "نادل", "wanted"},
		},
		{
			name: "empty input",
			in:   "",
			want: []string{},
		},
		{
			name: "whitespace only",
			in:   "  \t \n ",
			want: []string{},
		},
		{
			name: "collapses repeated separators",
			in:   "  plombier --- Lyon  ",
			want: []string{"plombier", "lyon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spacing collapsed", in: "  Besoin   d'un  MAÇON ", want: "besoin d un macon"},
		{name: "already normalized", in: "cherche extra soir", want: "cherche extra soir"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTokenSetHelpers(t *testing.T) {
	set := TokenSet([]string{"cherche", "serveur", "lille"})

	assert.True(t, ContainsAll(set, []string{"serveur"}))
	assert.True(t, ContainsAll(set, []string{"cherche", "lille"}))
	assert.False(t, ContainsAll(set, []string{"serveur", "paris"}))
	assert.True(t, ContainsAll(set, nil), "empty want is vacuously contained")

	assert.True(t, ContainsAny(set, []string{"paris", "lille"}))
	assert.False(t, ContainsAny(set, []string{"paris", "lyon"}))
	assert.False(t, ContainsAny(set, nil))
}
