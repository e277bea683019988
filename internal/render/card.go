package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/quantmind-br/siteview/internal/manifest"
)

// Placeholders shown when a manifest leaves a field out
const (
	NoTitle       = "No title available"
	NoDescription = "No description available"
	NoSiteName    = "No site name available"
	NoTheme       = "No theme available"
	NoCreated     = "No creation date available"
	NoUpdated     = "No update date available"
	NoTags        = "No tags"
	NoItems       = "No items available"
)

// CardRenderer renders a View as lipgloss cards
type CardRenderer struct {
	// DateLayout formats timestamps, as accepted by time.Time.Format
	DateLayout string
	// Width caps card width. Zero leaves cards unconstrained.
	Width int
}

// NewCardRenderer creates a card renderer
func NewCardRenderer(dateLayout string, width int) *CardRenderer {
	if dateLayout == "" {
		dateLayout = "2006-01-02"
	}
	return &CardRenderer{DateLayout: dateLayout, Width: width}
}

// Render writes the overview followed by one card per item
func (r *CardRenderer) Render(w io.Writer, view *View) error {
	blocks := []string{r.overview(view), r.tagLine(view)}

	if len(view.Items) == 0 {
		blocks = append(blocks, DescriptionStyle.Render(NoItems))
	}
	for _, item := range view.Items {
		blocks = append(blocks, r.card(item))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}

// RenderTags writes the tag list with counts, one per line
func (r *CardRenderer) RenderTags(w io.Writer, view *View) error {
	if len(view.Tags) == 0 {
		_, err := fmt.Fprintln(w, DescriptionStyle.Render(NoTags))
		return err
	}
	for _, tc := range view.Tags {
		if _, err := fmt.Fprintf(w, "%s %s\n", TagStyle.Render(tc.Tag), DescriptionStyle.Render(fmt.Sprintf("(%d)", tc.Count))); err != nil {
			return err
		}
	}
	return nil
}

func (r *CardRenderer) overview(view *View) string {
	theme := orPlaceholder(view.Theme.Name, NoTheme)
	if view.Theme.HexCode != "" {
		theme = fmt.Sprintf("%s %s %s", theme, swatch(view.Theme.HexCode), view.Theme.HexCode)
	}

	lines := []string{
		TitleStyle.Render(orPlaceholder(view.Title, NoTitle)),
		DescriptionStyle.Render(orPlaceholder(PlainText(view.Description), NoDescription)),
		"",
		field("Site", orPlaceholder(view.Site.Name, NoSiteName)),
		field("URL", LinkStyle.Render(view.URL)),
	}
	if view.Site.Logo != "" {
		lines = append(lines, field("Logo", LinkStyle.Render(view.Site.Logo)))
	}
	lines = append(lines,
		field("Theme", theme),
		field("Created", r.date(view.Site.Created, NoCreated)),
		field("Updated", r.date(view.Site.Updated, NoUpdated)),
	)

	style := HeaderStyle
	if r.Width > 0 {
		style = style.Width(r.Width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (r *CardRenderer) tagLine(view *View) string {
	summary := fmt.Sprintf("Showing %d of %d items", len(view.Items), view.TotalItems)
	if view.SelectedTag != "" {
		summary += fmt.Sprintf(" tagged %q", view.SelectedTag)
	}
	if view.Search != "" {
		summary += fmt.Sprintf(" matching %q", view.Search)
	}

	tags := NoTags
	if len(view.Tags) > 0 {
		chips := make([]string, 0, len(view.Tags))
		for _, tc := range view.Tags {
			chips = append(chips, fmt.Sprintf("%s (%d)", tc.Tag, tc.Count))
		}
		tags = strings.Join(chips, ", ")
	}

	return strings.Join([]string{
		"",
		SubtitleStyle.Render(summary),
		field("Tags", TagStyle.Render(tags)),
		"",
	}, "\n")
}

func (r *CardRenderer) card(item ItemView) string {
	lines := []string{
		SubtitleStyle.Render(orPlaceholder(item.Title, NoTitle)),
		DescriptionStyle.Render(orPlaceholder(PlainText(item.Description), NoDescription)),
		"",
		field("Open", LinkStyle.Render(item.ContentURL)),
		field("Source", LinkStyle.Render(item.SourceURL)),
	}
	if item.Image != "" {
		lines = append(lines, field("Image", LinkStyle.Render(item.Image)))
	}

	tags := NoTags
	if len(item.Tags) > 0 {
		tags = strings.Join(item.Tags, ", ")
	}
	lines = append(lines,
		field("Tags", TagStyle.Render(tags)),
		field("Updated", r.date(item.Updated, NoUpdated)),
	)

	style := CardStyle
	if r.Width > 0 {
		style = style.Width(r.Width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (r *CardRenderer) date(ts manifest.Timestamp, placeholder string) string {
	if ts.IsZero() {
		return DescriptionStyle.Render(placeholder)
	}
	return ts.Time().Format(r.DateLayout)
}

func field(label, value string) string {
	return LabelStyle.Render(label) + value
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
