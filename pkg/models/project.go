package models

import "time"

// ProjectMetadata describes the project a miyabi workspace belongs to.
// It is persisted in the project configuration file.
type ProjectMetadata struct {
	// Name is the project name.
	Name string `json:"name"`
	// Repository is the GitHub repository in owner/repo form, if linked.
	Repository string `json:"repository,omitempty"`
	// CreatedAt is when the workspace was initialized.
	CreatedAt time.Time `json:"created_at"`
	// DeviceIdentifier distinguishes the machine this workspace lives on.
	DeviceIdentifier string `json:"device_identifier"`
}
