package model

// RelatedURLType is an enum type for recognized CMR related-URL link types
type RelatedURLType string

// GetData corresponds to HTTPS download links
const GetData RelatedURLType = "GET DATA"

// GetDataDirectAccess corresponds to in-region S3 download links
const GetDataDirectAccess RelatedURLType = "GET DATA VIA DIRECT ACCESS"

// GetRelatedVisualization corresponds to browse imagery links
const GetRelatedVisualization RelatedURLType = "GET RELATED VISUALIZATION"

// TabularURLTypes are the link types retained on tabulated results
var TabularURLTypes = []RelatedURLType{GetData, GetDataDirectAccess, GetRelatedVisualization}
