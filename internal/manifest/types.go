package manifest

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Document is a parsed site.json manifest
type Document struct {
	Title       Text     `json:"title,omitempty" yaml:"title,omitempty"`
	Description Text     `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata    Metadata `json:"metadata" yaml:"metadata"`
	Items       []Item   `json:"items" yaml:"items"`
}

// Metadata holds site-wide manifest metadata
type Metadata struct {
	Site  Site  `json:"site" yaml:"site"`
	Theme Theme `json:"theme" yaml:"theme"`
}

// Site describes the site itself
type Site struct {
	Name    Text      `json:"name,omitempty" yaml:"name,omitempty"`
	Logo    Text      `json:"logo,omitempty" yaml:"logo,omitempty"`
	Created Timestamp `json:"created,omitempty" yaml:"created,omitempty"`
	Updated Timestamp `json:"updated,omitempty" yaml:"updated,omitempty"`
}

// Theme describes the site's theme
type Theme struct {
	Name      Text           `json:"name,omitempty" yaml:"name,omitempty"`
	Variables ThemeVariables `json:"variables" yaml:"variables"`
}

// ThemeVariables holds theme settings used for display
type ThemeVariables struct {
	HexCode Text `json:"hexCode,omitempty" yaml:"hexCode,omitempty"`
}

// Item is one content entry of a manifest
type Item struct {
	ID          Text         `json:"id,omitempty" yaml:"id,omitempty"`
	Title       Text         `json:"title,omitempty" yaml:"title,omitempty"`
	Description Text         `json:"description,omitempty" yaml:"description,omitempty"`
	Location    Text         `json:"location" yaml:"location"`
	Slug        Text         `json:"slug,omitempty" yaml:"slug,omitempty"`
	Image       Text         `json:"image,omitempty" yaml:"image,omitempty"`
	Metadata    ItemMetadata `json:"metadata" yaml:"metadata"`

	// tags is filled by Decode so reads never re-split Metadata.Tags
	tags []string
}

// ItemMetadata holds per-item metadata
type ItemMetadata struct {
	Tags    Text      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Images  TextList  `json:"images,omitempty" yaml:"images,omitempty"`
	Updated Timestamp `json:"updated,omitempty" yaml:"updated,omitempty"`
}

// Nested optional objects decode leniently: a value that is not an object
// leaves the zero value instead of failing the manifest.

func (s *Site) UnmarshalJSON(data []byte) error {
	type site Site
	return decodeObject(data, (*site)(s))
}

func (t *Theme) UnmarshalJSON(data []byte) error {
	type theme Theme
	return decodeObject(data, (*theme)(t))
}

func (v *ThemeVariables) UnmarshalJSON(data []byte) error {
	type variables ThemeVariables
	return decodeObject(data, (*variables)(v))
}

func (m *ItemMetadata) UnmarshalJSON(data []byte) error {
	type itemMetadata ItemMetadata
	return decodeObject(data, (*itemMetadata)(m))
}

func decodeObject[T any](data []byte, v *T) error {
	if err := json.Unmarshal(data, v); err != nil {
		var zero T
		*v = zero
	}
	return nil
}

// Text is an optional manifest string. JSON strings are kept; null,
// numbers, booleans, arrays and objects decode to "".
type Text string

// UnmarshalJSON never fails
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Text(s)
	return nil
}

func (t Text) String() string {
	return string(t)
}

// TextList is an optional list of strings. A value that is not an array
// decodes to nil; non-string elements become "".
type TextList []string

// UnmarshalJSON never fails
func (l *TextList) UnmarshalJSON(data []byte) error {
	var raw []Text
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		*l = nil
		return nil
	}
	list := make(TextList, len(raw))
	for i, t := range raw {
		list[i] = string(t)
	}
	*l = list
	return nil
}

// Tags returns the item's normalized tags in first-seen order
func (it Item) Tags() []string {
	if it.tags != nil {
		return it.tags
	}
	return SplitTags(string(it.Metadata.Tags))
}

// HasTag reports whether the item carries tag
func (it Item) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	if tag == "" {
		return false
	}
	for _, t := range it.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}

// ContentPath returns the path to the rendered content, preferring the slug
func (it Item) ContentPath() string {
	if it.Slug != "" {
		return string(it.Slug)
	}
	return string(it.Location)
}

// Timestamp is a unix time in seconds. Manifests carry it as a number or as
// a numeric string; anything unparseable decodes to zero.
type Timestamp int64

// UnmarshalJSON accepts numbers, numeric strings, empty strings and null
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*ts = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*ts = 0
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	*ts = Timestamp(parseSeconds(raw))
	return nil
}

// Time returns the timestamp as a time.Time in UTC
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts), 0).UTC()
}

// IsZero reports whether the timestamp is unset
func (ts Timestamp) IsZero() bool {
	return ts == 0
}

func parseSeconds(s string) int64 {
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int64(f)
	}
	return 0
}
