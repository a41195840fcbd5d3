package lexicon

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overlay is an operator-supplied extension of the embedded resources.
// Entries are additive; role keyword lists replace the embedded list for the same role
type Overlay struct {
	Roles      map[string][]string `yaml:"roles"`
	Fillers    []string            `yaml:"fillers"`
	Stopwords  []string            `yaml:"stopwords"`
	Hesitation []string            `yaml:"hesitation"`
	Assertive  []string            `yaml:"assertive"`
	Valence    map[string]float64  `yaml:"valence"`
}

// ReadOverlay parses a YAML overlay file
func ReadOverlay(path string) (Overlay, error) {
	var o Overlay
	b, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("lexicon: read overlay %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &o); err != nil {
		return o, fmt.Errorf("lexicon: parse overlay %s: %w", path, err)
	}
	return o, nil
}

// WithOverlay returns a copy of r with o merged in. r is not modified
func (r *Resources) WithOverlay(o Overlay) *Resources {
	out := *r
	out.Stopwords = maps.Clone(r.Stopwords)
	out.Valence = maps.Clone(r.Valence)
	out.Roles = maps.Clone(r.Roles)

	for _, s := range o.Stopwords {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out.Stopwords[s] = struct{}{}
		}
	}
	for k, v := range o.Valence {
		out.Valence[strings.ToLower(k)] = v
	}
	for role, kws := range o.Roles {
		if role = strings.TrimSpace(role); role != "" {
			out.Roles[role] = lowerList(kws)
		}
	}
	out.Fillers = lowerList(append(append([]string(nil), r.Fillers...), o.Fillers...))
	out.Hesitation = lowerList(append(append([]string(nil), r.Hesitation...), o.Hesitation...))
	out.Assertive = lowerList(append(append([]string(nil), r.Assertive...), o.Assertive...))
	return &out
}

// LoadWithOverlay applies the overlay at path to the shared set. An empty path returns the
// shared set unchanged. Embedded resources that fail to compile yield Fallback (Degraded is set);
// only a bad overlay file is an error
func LoadWithOverlay(path string) (*Resources, error) { return loadWithOverlay(Shared, path) }

func loadWithOverlay(load func() (*Resources, error), path string) (*Resources, error) {
	base, err := load()
	if err != nil {
		base = Fallback()
	}
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	o, err := ReadOverlay(path)
	if err != nil {
		return nil, err
	}
	return base.WithOverlay(o), nil
}
