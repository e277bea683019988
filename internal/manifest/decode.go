package manifest

import (
	"encoding/json"

	"github.com/quantmind-br/siteview/internal/domain"
)

// Required top-level keys
const (
	KeyItems    = "items"
	KeyMetadata = "metadata"
)

// Decode parses a manifest body. It fails with *domain.ParseError when the
// body is not JSON and with *domain.SchemaError when the items or metadata
// keys are absent or null, when items is not an array of objects, or when
// metadata is not an object. Optional fields of the wrong type decode to
// their zero value. Item tags are split here,
// once, so later reads do not re-parse them.
func Decode(data []byte) (*Document, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, domain.NewParseError("", err)
	}

	obj, ok := probe.(map[string]any)
	if !ok {
		return nil, domain.NewSchemaError("", []string{KeyItems, KeyMetadata}, nil)
	}

	var missing []string
	for _, key := range []string{KeyItems, KeyMetadata} {
		if v, present := obj[key]; !present || v == nil {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewSchemaError("", missing, nil)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewSchemaError("", nil, err)
	}

	if doc.Items == nil {
		doc.Items = []Item{}
	}
	for i := range doc.Items {
		doc.Items[i].tags = SplitTags(string(doc.Items[i].Metadata.Tags))
	}

	return &doc, nil
}
