package model

// FuelModel is a single model record as served by the Fuel catalog API.
// Field names follow the wire format; createdAt/updatedAt are the only
// camelCase keys the server emits.
type FuelModel struct {
	// CreatedAt is the server-side creation timestamp (opaque string)
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is the server-side update timestamp (opaque string)
	UpdatedAt string `json:"updatedAt"`

	// Name is the model name
	Name string `json:"name"`

	// Owner is the publishing user or organization
	Owner string `json:"owner"`

	// Description is the free-form model description
	Description string `json:"description"`

	// Likes is the like count
	Likes int `json:"likes"`

	// Downloads is the download count
	Downloads int `json:"downloads"`

	// Filesize is the archive size in bytes
	Filesize int `json:"filesize"`

	// UploadDate is when the model archive was uploaded
	UploadDate string `json:"upload_date"`

	// ModifyDate is when the model archive was last modified
	ModifyDate string `json:"modify_date"`

	// License identification as reported by the server
	LicenseID    int    `json:"license_id"`
	LicenseName  string `json:"license_name"`
	LicenseURL   string `json:"license_url"`
	LicenseImage string `json:"license_image"`

	// Permission is the server-side permission level
	Permission int `json:"permission"`

	// URLName is the URL-safe model name
	URLName string `json:"url_name"`

	// Private indicates the model is not publicly listed
	Private bool `json:"private"`

	// Tags may be absent on the wire; absent decodes as empty
	Tags []string `json:"tags"`

	// Categories may be absent on the wire; absent decodes as empty
	Categories []string `json:"categories"`
}

// HasTag reports whether the record carries the exact tag.
func (m *FuelModel) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}

	return false
}
