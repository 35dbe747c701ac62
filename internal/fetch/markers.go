package fetch

import "strings"

// Anti-bot heuristics live here, not in Fetch control flow, so new markers
// can be added without touching the fetcher.

// Statuses job boards return for challenge pages.
var captchaStatuses = map[int]bool{
	403: true,
	429: true,
	503: true,
}

// Script/iframe/text signatures of the common challenge vendors.
var captchaMarkers = []string{
	// Cloudflare
	"cf-challenge",
	"_cf_chl_opt",
	"challenge-platform",
	"just a moment...",
	// Google reCAPTCHA
	"g-recaptcha",
	"recaptcha/api.js",
	// hCaptcha
	"h-captcha",
	"hcaptcha.com",
	// PerimeterX / HUMAN
	"px-captcha",
	"_pxhd",
	// DataDome
	"datadome",
	// generic interstitial copy
	"verify you are human",
	"are you a human",
	"unusual traffic from your",
}

// Redirect targets that mean the real page was swapped for a challenge.
var challengePathHints = []string{
	"/challenge",
	"/captcha",
	"/checkpoint",
	"/authwall",
}

const tinyBodyBytes = 2048

// SuspectCaptcha decides whether a response looks like an anti-bot
// challenge rather than the posting itself.
func SuspectCaptcha(status int, body, finalURL string) bool {
	if captchaStatuses[status] {
		return true
	}

	lower := strings.ToLower(body)
	for _, m := range captchaMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}

	// A suspiciously small body combined with a redirect onto a known
	// challenge path is the last tell.
	if len(body) < tinyBodyBytes {
		lu := strings.ToLower(finalURL)
		for _, hint := range challengePathHints {
			if strings.Contains(lu, hint) {
				return true
			}
		}
	}
	return false
}
