package menu

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog is the static menu content: shop details, the regular sections and
// the two addition cards that are interleaved among them.
type Catalog struct {
	Name           string    `yaml:"name"`
	Tagline        string    `yaml:"tagline"`
	Address        []string  `yaml:"address"`
	Delivery       string    `yaml:"delivery"`
	Sections       []Section `yaml:"sections"`
	PizzaAdditions *Section  `yaml:"pizza_additions,omitempty"`
	CrepeAdditions *Section  `yaml:"crepe_additions,omitempty"`
}

// DefaultCatalog parses the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(embeddedCatalog)
}

// LoadCatalog reads a catalog from path. An empty path selects the built-in
// catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu %s: %w", path, err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("menu %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	if len(cat.Sections) == 0 && cat.PizzaAdditions == nil && cat.CrepeAdditions == nil {
		return nil, ErrEmptyCatalog
	}
	return &cat, nil
}

func (c *Catalog) pizzaAdditions() (Section, bool) {
	return additionSection(c.PizzaAdditions)
}

func (c *Catalog) crepeAdditions() (Section, bool) {
	return additionSection(c.CrepeAdditions)
}

func additionSection(sec *Section) (Section, bool) {
	if sec == nil {
		return Section{}, false
	}
	out := *sec
	out.Addition = true
	return out, true
}
