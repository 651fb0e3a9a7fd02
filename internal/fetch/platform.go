package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies the job board hosting a posting. Each board wraps the
// description in its own markup, so selector sets are tuned per platform.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformLinkedIn   Platform = "linkedin"
	PlatformIndeed     Platform = "indeed"
	PlatformUnknown    Platform = "unknown"
)

// DetectPlatform identifies the job board from the URL host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	case strings.Contains(host, "indeed.com"):
		return PlatformIndeed
	default:
		return PlatformUnknown
	}
}

// PlatformContentSelectors returns content selectors for a platform, most
// specific first.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".WDXK",
			".gwt-HTML",
			".job-description",
		}
	case PlatformLinkedIn:
		return []string{
			".show-more-less-html__markup",
			".description__text",
			".jobs-description__content",
			".decorated-job-posting__details",
		}
	case PlatformIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-jobDescriptionText",
			".jobsearch-JobComponent-description",
			".jobsearch-BodyContainer",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns selectors for elements stripped before text
// extraction: application forms, EEO boilerplate, share widgets and the like.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		// Application forms
		"form",
		"#application-form",
		".application-form",
		".application--container",
		".apply-button-container",
		"[data-testid='application-form']",

		// EEO and legal boilerplate
		".voluntary-disclosure",
		".eeo-statement",
		".eeo-section",
		"[data-testid='eeo']",
		".legal-disclosure",
		".self-identification",

		// Share widgets
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR banners
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			".voluntary-self-id-wrapper",
			"#usa_self_id_section",
			".post-apply",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	case PlatformWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
			".application-section",
			".WDAF",
		)
	case PlatformLinkedIn:
		return append(common,
			".similar-jobs",
			".top-card-layout__cta-container",
			".sign-up-modal",
			".contextual-sign-in-modal",
			".global-footer",
		)
	case PlatformIndeed:
		return append(common,
			"#indeedApplyButton",
			".jobsearch-CompanyReview",
			".jobsearch-OtherJobs",
			".jobsearch-ViewJobButtons",
		)
	default:
		return common
	}
}
