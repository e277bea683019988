package render

import (
	"github.com/quantmind-br/siteview/internal/domain"
	"github.com/quantmind-br/siteview/internal/manifest"
	"github.com/quantmind-br/siteview/internal/utils"
)

// View is a display-ready snapshot of a store: URLs resolved, tags counted,
// items already filtered.
type View struct {
	URL         string     `json:"url" yaml:"url"`
	Title       string     `json:"title,omitempty" yaml:"title,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Site        SiteView   `json:"site" yaml:"site"`
	Theme       ThemeView  `json:"theme" yaml:"theme"`
	Tags        []TagCount `json:"tags" yaml:"tags"`
	SelectedTag string     `json:"selected_tag,omitempty" yaml:"selected_tag,omitempty"`
	Search      string     `json:"search,omitempty" yaml:"search,omitempty"`
	TotalItems  int        `json:"total_items" yaml:"total_items"`
	Items       []ItemView `json:"items" yaml:"items"`
}

// SiteView describes the site
type SiteView struct {
	Name    string             `json:"name,omitempty" yaml:"name,omitempty"`
	Logo    string             `json:"logo,omitempty" yaml:"logo,omitempty"`
	Created manifest.Timestamp `json:"created,omitempty" yaml:"created,omitempty"`
	Updated manifest.Timestamp `json:"updated,omitempty" yaml:"updated,omitempty"`
}

// ThemeView describes the theme
type ThemeView struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	HexCode string `json:"hex_code,omitempty" yaml:"hex_code,omitempty"`
}

// TagCount pairs a tag with the number of items carrying it
type TagCount struct {
	Tag   string `json:"tag" yaml:"tag"`
	Count int    `json:"count" yaml:"count"`
}

// ItemView is one item card
type ItemView struct {
	ID          string             `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string             `json:"title,omitempty" yaml:"title,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	ContentURL  string             `json:"content_url" yaml:"content_url"`
	SourceURL   string             `json:"source_url" yaml:"source_url"`
	Image       string             `json:"image,omitempty" yaml:"image,omitempty"`
	Tags        []string           `json:"tags" yaml:"tags"`
	Updated     manifest.Timestamp `json:"updated,omitempty" yaml:"updated,omitempty"`
}

// ViewOptions selects what NewView puts in the view
type ViewOptions struct {
	// Search fuzzy-filters the store's filtered items by title
	Search string
}

// NewView builds a View from the store's current state. It returns
// domain.ErrNoDocument when the store holds no manifest.
func NewView(store *manifest.Store, opts ViewOptions) (*View, error) {
	doc := store.Document()
	if doc == nil {
		return nil, domain.ErrNoDocument
	}

	canonical := store.URL()
	counts := store.TagCounts()
	tags := store.UniqueTags()
	tagCounts := make([]TagCount, 0, len(tags))
	for _, tag := range tags {
		tagCounts = append(tagCounts, TagCount{Tag: tag, Count: counts[tag]})
	}

	selected, _ := store.SelectedTag()
	items := manifest.SearchItems(store.FilteredItems(), opts.Search)

	view := &View{
		URL:         canonical,
		Title:       doc.Title.String(),
		Description: doc.Description.String(),
		Site: SiteView{
			Name:    doc.Metadata.Site.Name.String(),
			Logo:    resolveAsset(canonical, doc.Metadata.Site.Logo.String()),
			Created: doc.Metadata.Site.Created,
			Updated: doc.Metadata.Site.Updated,
		},
		Theme: ThemeView{
			Name:    doc.Metadata.Theme.Name.String(),
			HexCode: doc.Metadata.Theme.Variables.HexCode.String(),
		},
		Tags:        tagCounts,
		SelectedTag: selected,
		Search:      opts.Search,
		TotalItems:  len(doc.Items),
		Items:       make([]ItemView, 0, len(items)),
	}

	for _, item := range items {
		view.Items = append(view.Items, ItemView{
			ID:          item.ID.String(),
			Title:       item.Title.String(),
			Description: item.Description.String(),
			ContentURL:  store.ResolveContentURL(item),
			SourceURL:   store.ResolveSourceURL(item),
			Image:       resolveAsset(canonical, itemImage(item)),
			Tags:        item.Tags(),
			Updated:     item.Metadata.Updated,
		})
	}

	return view, nil
}

// itemImage prefers the item's own image over the first metadata image
func itemImage(item manifest.Item) string {
	if item.Image != "" {
		return item.Image.String()
	}
	if len(item.Metadata.Images) > 0 {
		return item.Metadata.Images[0]
	}
	return ""
}

func resolveAsset(canonical, ref string) string {
	if ref == "" {
		return ""
	}
	return utils.ResolveItemURL(canonical, ref)
}
