package models

import "time"

// ExportResult describes a generated banner image
type ExportResult struct {
	ExportID  string    `json:"exportId"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Bytes     int       `json:"bytes"`
	DriveID   string    `json:"driveFileId,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}
