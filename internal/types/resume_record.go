// Package types provides type definitions for structured data used throughout the resume-restyle system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the canonical structured representation of a resume.
// Every field is always present as a string; a field that could not be
// extracted is the empty string, never omitted. The field set is the
// superset of both record generations found in the product: the older
// form carried References, the newer form carries Website, LinkedIn and
// Achievements. Achievements and References stay distinct fields.
type ResumeRecord struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	Website        string `json:"website"`
	LinkedIn       string `json:"linkedin"`
	Summary        string `json:"summary"`
	Experience     string `json:"experience"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	Projects       string `json:"projects"`
	Certifications string `json:"certifications"`
	Languages      string `json:"languages"`
	Achievements   string `json:"achievements"`
	References     string `json:"references"`
}

// ConfidenceMap maps a record field key to a heuristic quality score in [0,1].
// A field with an empty value always maps to 0. The score is advisory only
// (UI badges), never a calibrated probability.
type ConfidenceMap map[string]float64

// FieldKeys lists the record field keys in canonical order. Contact fields
// come first, section fields after, matching the order templates are filled.
var FieldKeys = []string{
	"name",
	"email",
	"phone",
	"location",
	"website",
	"linkedin",
	"summary",
	"experience",
	"education",
	"skills",
	"projects",
	"certifications",
	"languages",
	"achievements",
	"references",
}

// Field returns the value of the named field, or "" for an unknown key.
func (r ResumeRecord) Field(key string) string {
	switch key {
	case "name":
		return r.Name
	case "email":
		return r.Email
	case "phone":
		return r.Phone
	case "location":
		return r.Location
	case "website":
		return r.Website
	case "linkedin":
		return r.LinkedIn
	case "summary":
		return r.Summary
	case "experience":
		return r.Experience
	case "education":
		return r.Education
	case "skills":
		return r.Skills
	case "projects":
		return r.Projects
	case "certifications":
		return r.Certifications
	case "languages":
		return r.Languages
	case "achievements":
		return r.Achievements
	case "references":
		return r.References
	default:
		return ""
	}
}

// SetField sets the named field to value. Unknown keys are ignored so that
// a remote extraction reply carrying extra keys cannot corrupt the record.
func (r *ResumeRecord) SetField(key, value string) {
	switch key {
	case "name":
		r.Name = value
	case "email":
		r.Email = value
	case "phone":
		r.Phone = value
	case "location":
		r.Location = value
	case "website":
		r.Website = value
	case "linkedin":
		r.LinkedIn = value
	case "summary":
		r.Summary = value
	case "experience":
		r.Experience = value
	case "education":
		r.Education = value
	case "skills":
		r.Skills = value
	case "projects":
		r.Projects = value
	case "certifications":
		r.Certifications = value
	case "languages":
		r.Languages = value
	case "achievements":
		r.Achievements = value
	case "references":
		r.References = value
	}
}

// IsEmpty reports whether every field of the record is empty.
func (r ResumeRecord) IsEmpty() bool {
	for _, key := range FieldKeys {
		if r.Field(key) != "" {
			return false
		}
	}
	return true
}
