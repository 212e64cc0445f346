package extract

import (
	"strings"

	"github.com/jonathan/resume-restyle/internal/types"
)

// Three-tier confidence signal for UI badges. Not a calibrated
// probability; an empty field is always 0.
const (
	confidenceLow    = 0.35
	confidenceMedium = 0.7
	confidenceHigh   = 0.95
)

// scoreRecord derives a per-field confidence map from the extracted
// record: presence plus one cheap quality signal per field.
func scoreRecord(record types.ResumeRecord) types.ConfidenceMap {
	scores := make(types.ConfidenceMap, len(types.FieldKeys))
	for _, key := range types.FieldKeys {
		scores[key] = scoreField(key, record.Field(key))
	}
	return scores
}

func scoreField(key, value string) float64 {
	if value == "" {
		return 0
	}

	switch key {
	case "name":
		switch {
		case len(value) >= 10:
			return confidenceHigh
		case len(value) >= 5:
			return confidenceMedium
		default:
			return confidenceLow
		}
	case "email":
		if strings.Contains(value, "@") {
			return confidenceHigh
		}
		return confidenceLow
	case "phone":
		digits := len(digitRe.FindAllString(value, -1))
		switch {
		case digits >= 10:
			return confidenceHigh
		case digits >= 7:
			return confidenceMedium
		default:
			return confidenceLow
		}
	case "location":
		if strings.Contains(value, ",") {
			return confidenceHigh
		}
		return confidenceMedium
	case "website", "linkedin":
		if strings.HasPrefix(value, "https://") {
			return confidenceHigh
		}
		return confidenceMedium
	case "skills":
		entries := len(strings.Split(value, ","))
		switch {
		case entries >= 5:
			return confidenceHigh
		case entries >= 2:
			return confidenceMedium
		default:
			return confidenceLow
		}
	default:
		// Section fields: longer accumulated bodies read as more reliable.
		switch {
		case len(value) >= 200:
			return confidenceHigh
		case len(value) >= 60:
			return confidenceMedium
		default:
			return confidenceLow
		}
	}
}
