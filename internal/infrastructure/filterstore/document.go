package filterstore

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/poetis/backend/internal/domain"
	"github.com/poetis/backend/internal/modtext"
	"gopkg.in/yaml.v3"
)

// commonKey names the list of category-wide mods under a category1
const commonKey = "mods"

// totalsKey names summed-modifier groups, which are not scored and are skipped
const totalsKey = "totals"

// Format is the syntax of a filter document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// FormatFromPath picks the document format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("%w: unsupported file extension %q", domain.ErrInvalidFilterConfiguration, filepath.Ext(path))
	}
}

// Parse builds a filter configuration from a document
func Parse(data []byte, format Format) (*domain.FilterConfig, error) {
	var (
		doc document
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = parseYAML(data)
	case FormatXML:
		doc, err = parseXML(data)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFilterConfiguration, err)
	}

	cfg, err := doc.build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFilterConfiguration, err)
	}
	return cfg, nil
}

// document is the format-neutral shape: category1 -> (mods | category2) -> mod texts
type document map[string]map[string][]string

func (d document) build() (*domain.FilterConfig, error) {
	if len(d) == 0 {
		return nil, fmt.Errorf("document has no categories")
	}

	cfg := domain.NewFilterConfig()
	for rawCat1, groups := range d {
		cat1 := domain.Category1(strings.ToLower(rawCat1))
		if !domain.ValidCategory(cat1) {
			return nil, fmt.Errorf("unknown category %q", rawCat1)
		}
		cfg.Category(cat1)

		for group, mods := range groups {
			if strings.EqualFold(group, totalsKey) {
				continue
			}
			if strings.EqualFold(group, commonKey) {
				for _, text := range mods {
					key, value := normalize(text)
					if key == "" {
						continue
					}
					cfg.SetCommon(cat1, key, value)
				}
				continue
			}

			cat2 := domain.Category2(strings.ToLower(group))
			if parent, ok := domain.ParentCategory(cat2); !ok || parent != cat1 {
				return nil, fmt.Errorf("unknown subtype %q under %q", group, rawCat1)
			}
			for _, text := range mods {
				key, value := normalize(text)
				if key == "" {
					continue
				}
				cfg.SetSubtype(cat1, cat2, key, value)
			}
		}
	}
	return cfg, nil
}

func normalize(text string) (string, float64) {
	return modtext.Normalize(strings.ToLower(text))
}

func parseYAML(data []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// xmlNode is a generic element; the tag names carry the categories
type xmlNode struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

// parseXML reads <root><cat1><mod/>...<cat2><mod/></cat2></cat1></root>.
// Mods sitting directly under cat1, or inside a <mods> element, are category-wide.
func parseXML(data []byte) (document, error) {
	var root xmlNode
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		return nil, err
	}

	doc := make(document)
	for _, cat1 := range root.Children {
		groups := make(map[string][]string)
		for _, child := range cat1.Children {
			switch {
			case strings.EqualFold(child.XMLName.Local, totalsKey):
				continue
			case child.XMLName.Local == "mod":
				groups[commonKey] = append(groups[commonKey], child.Text)
			case strings.EqualFold(child.XMLName.Local, commonKey):
				groups[commonKey] = append(groups[commonKey], modTexts(child)...)
			case len(child.Children) > 0:
				groups[child.XMLName.Local] = append(groups[child.XMLName.Local], modTexts(child)...)
			}
		}
		doc[cat1.XMLName.Local] = groups
	}
	return doc, nil
}

func modTexts(n xmlNode) []string {
	texts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c.XMLName.Local == "mod" {
			texts = append(texts, c.Text)
		}
	}
	return texts
}
