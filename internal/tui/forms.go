package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// AllItems is the tag picker value meaning "no tag filter"
const AllItems = ""

// TagChoice is one entry of the tag picker
type TagChoice struct {
	Tag   string
	Count int
}

// BrowseValues holds the answers collected by the interactive prompts
type BrowseValues struct {
	SiteURL string
	Tag     string
	Search  string
}

// FormOptions tunes how forms are presented
type FormOptions struct {
	Accessible bool
}

func (o FormOptions) theme() *huh.Theme {
	if o.Accessible {
		return GetAccessibleTheme()
	}
	return GetTheme()
}

// CreateSiteForm asks for the site to load
func CreateSiteForm(values *BrowseValues, opts FormOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("site").
				Title("Site").
				Description("Host or URL of a site publishing site.json").
				Value(&values.SiteURL).
				Placeholder("example.org").
				Validate(ValidateSiteURL),
		),
	).WithTheme(opts.theme()).WithAccessible(opts.Accessible)
}

// CreateBrowseForm asks for a tag filter and an optional title search
func CreateBrowseForm(values *BrowseValues, tags []TagChoice, totalItems int, opts FormOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("tag").
				Title("Filter by tag").
				Options(TagOptions(tags, totalItems)...).
				Value(&values.Tag),

			huh.NewInput().
				Key("search").
				Title("Search titles").
				Description("Leave empty to show every item").
				Value(&values.Search),
		),
	).WithTheme(opts.theme()).WithAccessible(opts.Accessible)
}

// TagOptions builds the picker entries: "All items" first, then one entry
// per tag with its item count.
func TagOptions(tags []TagChoice, totalItems int) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(tags)+1)
	options = append(options, huh.NewOption(fmt.Sprintf("All items (%d)", totalItems), AllItems))
	for _, tc := range tags {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%d)", tc.Tag, tc.Count), tc.Tag))
	}
	return options
}

// PromptSite runs the site form and returns the trimmed answer
func PromptSite(opts FormOptions) (string, error) {
	values := &BrowseValues{}
	if err := CreateSiteForm(values, opts).Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(values.SiteURL), nil
}

// PromptBrowse runs the browse form. The returned tag is AllItems when no
// filter was chosen.
func PromptBrowse(tags []TagChoice, totalItems int, opts FormOptions) (BrowseValues, error) {
	values := BrowseValues{Tag: AllItems}
	if err := CreateBrowseForm(&values, tags, totalItems, opts).Run(); err != nil {
		return BrowseValues{}, err
	}
	values.Search = strings.TrimSpace(values.Search)
	return values, nil
}
