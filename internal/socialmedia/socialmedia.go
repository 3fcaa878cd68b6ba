package socialmedia

import "fmt"

// Platforms lists every platform the detector knows how to check.
var Platforms = []string{
	"WhatsApp",
	"Telegram",
	"Signal",
	"Viber",
	"Facebook",
	"Instagram",
	"Twitter/X",
	"Snapchat",
	"TikTok",
	"LinkedIn",
}

// CheckResult describes one platform lookup. Every check is currently a
// placeholder: the boolean is always false and the note says what a real
// implementation would need.
type CheckResult struct {
	RegisteredOrPossible bool   `json:"registered_or_possible"`
	Method               string `json:"method"`
	Confidence           string `json:"confidence"`
	Note                 string `json:"note"`
}

// Report aggregates the per-platform results for one phone number.
type Report struct {
	PhoneNumber      string                 `json:"phone_number"`
	PlatformsFound   []string               `json:"platforms_found"`
	PlatformsChecked []string               `json:"platforms_checked"`
	Details          map[string]CheckResult `json:"details"`
}

// Detector checks phone-number associations with social media platforms.
type Detector struct {
	platforms []string
}

// NewDetector returns a detector covering all supported platforms.
func NewDetector() *Detector {
	return &Detector{platforms: Platforms}
}

// CheckAllPlatforms runs every platform check for the given number.
func (d *Detector) CheckAllPlatforms(phoneNumber string) Report {
	report := Report{
		PhoneNumber:      phoneNumber,
		PlatformsFound:   []string{},
		PlatformsChecked: d.platforms,
		Details:          map[string]CheckResult{},
	}

	for _, platform := range d.platforms {
		result := d.check(platform)
		if result.RegisteredOrPossible {
			report.PlatformsFound = append(report.PlatformsFound, platform)
		}
		report.Details[platform] = result
	}

	return report
}

func (d *Detector) check(platform string) CheckResult {
	switch platform {
	case "WhatsApp":
		// Real detection needs the Business API or the Web protocol.
		return CheckResult{
			Method:     "API check",
			Confidence: "low",
			Note:       "Requires WhatsApp Business API or third-party service",
		}
	case "Telegram":
		return CheckResult{
			Method:     "Telegram API",
			Confidence: "low",
			Note:       "Requires Telegram API credentials",
		}
	case "Signal":
		return CheckResult{
			Method:     "Limited detection",
			Confidence: "very-low",
			Note:       "Signal prioritizes privacy - limited detection possible",
		}
	default:
		// Most platforms expose no public registration lookup.
		return CheckResult{
			Method:     "Manual verification required",
			Confidence: "very-low",
			Note:       fmt.Sprintf("%s requires manual verification or account access", platform),
		}
	}
}
