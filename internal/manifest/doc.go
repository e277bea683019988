// Package manifest loads a site's site.json manifest and exposes its items
// filtered by tag.
//
// # Manifest Format
//
// A manifest is a JSON object. Only items and metadata are required:
//
//	{
//	  "title": "My Site",
//	  "metadata": {
//	    "site": {"name": "mysite", "logo": "files/logo.png", "created": 1700000000},
//	    "theme": {"name": "clean-one", "variables": {"hexCode": "#3f51b5"}}
//	  },
//	  "items": [
//	    {"title": "Intro", "location": "pages/intro/index.html", "slug": "intro",
//	     "metadata": {"tags": "news, events", "updated": "1700000500"}}
//	  ]
//	}
//
// # Usage
//
//	store := manifest.NewStore(client, manifest.WithLogger(log))
//	if _, err := store.FetchManifest(ctx, "example.org"); err != nil {
//	    // store.Document() is nil here
//	}
//	store.SelectTag("news")
//	for _, item := range store.FilteredItems() {
//	    fmt.Println(item.Title, store.ResolveContentURL(item))
//	}
//
// # Error Handling
//
// FetchManifest fails with one of the typed errors from the domain package:
//   - *domain.ValidationError: blank URL, no request made
//   - *domain.FetchError: the request did not complete
//   - *domain.HTTPError: non-2xx status
//   - *domain.ParseError: body is not JSON
//   - *domain.SchemaError: items or metadata missing
package manifest
