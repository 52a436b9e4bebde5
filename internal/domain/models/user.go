package models

// AuthUser is the authentication identity (phone + password hash). The
// registration name is kept as metadata so a missing profile can be
// recreated from it.
type AuthUser struct {
	ID           string `json:"id"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	CreatedAt    string `json:"created_at"`
}

// User is the application-level profile linked one-to-one with an AuthUser.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`

	DOB                   string `json:"dob,omitempty"`
	Address               string `json:"address,omitempty"`
	BloodGroup            string `json:"blood_group,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
	GovIDType             string `json:"gov_id_type,omitempty"`
	GovIDNumber           string `json:"gov_id_number,omitempty"`
	GovIDImageURL         string `json:"gov_id_image_url,omitempty"`
	ProfileImageURL       string `json:"profile_image_url,omitempty"`
}

// ProfileUpdate carries the editable profile fields. Image URLs are plain
// strings; the client uploads first and sends back whatever URL it holds,
// so an unchanged URL round-trips untouched.
type ProfileUpdate struct {
	Name                  string `json:"name"`
	Phone                 string `json:"phone"`
	DOB                   string `json:"dob"`
	Address               string `json:"address"`
	BloodGroup            string `json:"blood_group"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	GovIDType             string `json:"gov_id_type"`
	GovIDNumber           string `json:"gov_id_number"`
	GovIDImageURL         string `json:"gov_id_image_url"`
	ProfileImageURL       string `json:"profile_image_url"`
}
