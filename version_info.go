package vapi

// Version information for the vapi annotation library
const (
	// Version is the current library version
	Version = "development"

	// APIVersion is the current annotation API version
	APIVersion = "v1"
)
