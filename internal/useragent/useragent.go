// Package useragent derives a coarse device/browser/OS classification from a
// raw User-Agent string. It is a fallback only: values supplied explicitly by
// the tracking client always take precedence over anything derived here.
package useragent

import (
	"regexp"
	"strings"
)

// ValueUnknown is returned when no pattern matches
const ValueUnknown = "unknown"

var (
	mobileRe  = regexp.MustCompile(`(?i)mobile|android|iphone|ipod|blackberry|iemobile|opera mini`)
	tabletRe  = regexp.MustCompile(`(?i)tablet|ipad`)
	androidRe = regexp.MustCompile(`(?i)android`)
)

// Classification is the derived device/browser/OS triple
type Classification struct {
	DeviceType string
	Browser    string
	OS         string
}

// Classify inspects ua and returns the derived classification. Matching is
// first-match-wins and the mobile check takes precedence over the tablet one,
// so an Android phone UA (which contains both "android" and "mobile") lands
// on mobile.
func Classify(ua string) Classification {
	return Classification{
		DeviceType: DeviceType(ua),
		Browser:    Browser(ua),
		OS:         OS(ua),
	}
}

// DeviceType returns "mobile", "tablet" or "desktop"
func DeviceType(ua string) string {
	switch {
	case mobileRe.MatchString(ua):
		return "mobile"
	case tabletRe.MatchString(ua),
		androidRe.MatchString(ua) && !strings.Contains(strings.ToLower(ua), "mobile"):
		return "tablet"
	default:
		return "desktop"
	}
}

// Browser returns the browser family, matching substrings in priority order.
// Safari only counts when Chrome is absent, since Chrome UAs carry a Safari
// token as well.
func Browser(ua string) string {
	switch {
	case strings.Contains(ua, "Chrome"):
		return "Chrome"
	case strings.Contains(ua, "Firefox"):
		return "Firefox"
	case strings.Contains(ua, "Safari"):
		return "Safari"
	case strings.Contains(ua, "Edge"):
		return "Edge"
	case strings.Contains(ua, "Opera"):
		return "Opera"
	default:
		return ValueUnknown
	}
}

// OS returns the operating system family
func OS(ua string) string {
	switch {
	case strings.Contains(ua, "Windows"):
		return "Windows"
	case strings.Contains(ua, "Mac"):
		return "macOS"
	case strings.Contains(ua, "Linux"):
		return "Linux"
	case strings.Contains(ua, "Android"):
		return "Android"
	case strings.Contains(ua, "iOS"):
		return "iOS"
	default:
		return ValueUnknown
	}
}
