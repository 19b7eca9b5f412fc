package assets

import "fmt"

const (
	// DefaultCloudName is the account the portfolio media lives under.
	DefaultCloudName = "ddsq7yryf"

	defaultResourceType = "image"
	deliveryTransform   = "f_auto:video,q_auto"
)

// CloudName is the account used by MediaURL. config.Load may override it.
var CloudName = DefaultCloudName

type MediaOptions struct {
	// ResourceType is the delivery type segment: image, video or raw.
	// Empty means image.
	ResourceType string
	// Secure is accepted for compatibility; URLs are always https.
	Secure bool
}

// MediaURL builds the delivery URL for a public id. The id is inserted
// verbatim, without escaping or validation.
func MediaURL(publicID string, opts MediaOptions) string {
	resourceType := opts.ResourceType
	if resourceType == "" {
		resourceType = defaultResourceType
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/%s/upload/%s/%s", CloudName, resourceType, deliveryTransform, publicID)
}
