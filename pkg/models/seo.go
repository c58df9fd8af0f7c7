package models

import "github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"

// SEO is the optional search metadata block attached to a page.
type SEO struct {
	MetaTitle       Nullable[string]          `json:"metaTitle,omitzero"`
	MetaDescription Nullable[string]          `json:"metaDescription,omitzero"`
	Keywords        Nullable[[]string]        `json:"keywords,omitzero"`
	CanonicalURL    Nullable[string]          `json:"canonicalUrl,omitzero"`
	SchemaMarkup    Nullable[jsonvalue.Value] `json:"schemaMarkup,omitzero"`
}
