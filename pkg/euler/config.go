package euler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SiteConfig identifies the source site and where to find a challenge
// description on its pages. The defaults target projecteuler.net; all values
// can be overridden for mirrors.
type SiteConfig struct {
	// BaseURL is the root of the site. Resource and about links in challenge
	// descriptions are relative to it.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// ChallengeBaseURL is the base of challenge pages; the problem number is
	// appended to form a page URL.
	ChallengeBaseURL string `mapstructure:"challenge_base_url" validate:"required,url"`

	// ContentSelector locates the description block on a challenge page.
	ContentSelector string `mapstructure:"content_selector" validate:"required"`

	// TitleSelector locates the challenge title on a challenge page.
	TitleSelector string `mapstructure:"title_selector" validate:"required"`
}

// DefaultSite returns the projecteuler.net configuration.
func DefaultSite() SiteConfig {
	return SiteConfig{
		BaseURL:          "https://projecteuler.net/",
		ChallengeBaseURL: "https://projecteuler.net/problem=",
		ContentSelector:  "div.problem_content",
		TitleSelector:    "h2",
	}
}

var validate = validator.New()

// Validate checks the site configuration.
func (s SiteConfig) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid site config: %w", err)
	}
	return nil
}
