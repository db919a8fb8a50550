package model

// Collection is a single UMM-C record as returned by the CMR collection
// search API. Only the fields the toolkit surfaces are decoded.
type Collection struct {
	Meta CollectionMeta `json:"meta"`
	UMM  CollectionUMM  `json:"umm"`
}

// CollectionMeta holds the CMR catalog fields of a collection
type CollectionMeta struct {
	ConceptID    string `json:"concept-id"`
	ProviderID   string `json:"provider-id"`
	GranuleCount int    `json:"granule-count"`
}

// CollectionUMM holds the provider-authored metadata fields of a collection
type CollectionUMM struct {
	ShortName   string       `json:"ShortName"`
	Version     string       `json:"Version"`
	EntryTitle  string       `json:"EntryTitle"`
	Abstract    string       `json:"Abstract"`
	RelatedUrls []RelatedURL `json:"RelatedUrls"`
}

// LandingPage returns the first landing page link of the collection, or an
// empty string if it has none
func (c Collection) LandingPage() string {
	for _, link := range c.UMM.RelatedUrls {
		if link.Type == "LANDING PAGE" {
			return link.URL
		}
	}
	return ""
}

// GetDataLinks returns the GET DATA links of the collection, usually a DAAC
// portal or an FTP location
func (c Collection) GetDataLinks() []string {
	var links []string
	for _, link := range c.UMM.RelatedUrls {
		if link.Type == string(GetData) {
			links = append(links, link.URL)
		}
	}
	return links
}
