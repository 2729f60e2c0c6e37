package content

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/detroitcommercial/microsite/internal/validate"
)

const (
	SectionFeatures = "features"
	SectionGallery  = "gallery"
	SectionContact  = "contact"
)

const DefaultEmbedBase = "https://www.youtube.com/embed"

type NavItem struct {
	Label  string `json:"label" yaml:"label"`
	Target string `json:"target" yaml:"target"`
}

type GalleryImage struct {
	Src  string `json:"src" yaml:"src"`
	Alt  string `json:"alt" yaml:"alt"`
	Desc string `json:"desc" yaml:"desc"`
}

type FeatureVideo struct {
	Title   string `json:"title" yaml:"title"`
	EmbedID string `json:"embedId" yaml:"embedId"`
}

type FeatureClaim struct {
	Icon string `json:"icon" yaml:"icon"`
	Text string `json:"text" yaml:"text"`
}

// Page is everything the landing page renders. It is built once and never
// mutated afterwards; a reload swaps the whole value.
type Page struct {
	Brand         string         `json:"brand" yaml:"brand"`
	Title         string         `json:"title" yaml:"title"`
	Description   string         `json:"description" yaml:"description"`
	Headline      string         `json:"headline" yaml:"headline"`
	CTALabel      string         `json:"ctaLabel" yaml:"ctaLabel"`
	CTAURL        string         `json:"ctaUrl" yaml:"ctaUrl"`
	HeroVideo     string         `json:"heroVideo" yaml:"heroVideo"`
	Audio         string         `json:"audio" yaml:"audio"`
	GalleryTitle  string         `json:"galleryTitle" yaml:"galleryTitle"`
	VideosTitle   string         `json:"videosTitle" yaml:"videosTitle"`
	ClaimsTitle   string         `json:"claimsTitle" yaml:"claimsTitle"`
	ContactEmail  string         `json:"contactEmail" yaml:"contactEmail"`
	EmbedBase     string         `json:"embedBase" yaml:"embedBase"`
	Nav           []NavItem      `json:"nav" yaml:"nav"`
	Gallery       []GalleryImage `json:"gallery" yaml:"gallery"`
	FeatureVideos []FeatureVideo `json:"featureVideos" yaml:"featureVideos"`
	Claims        []FeatureClaim `json:"claims" yaml:"claims"`
}

func Default() *Page {
	return &Page{
		Brand:        "Rivian",
		Title:        "Rivian – Discover Your Next Adventure",
		Description:  "Electric adventure vehicles, proudly built in Detroit.",
		Headline:     "Discover Your Next Adventure",
		CTALabel:     "Learn More",
		CTAURL:       "https://rivian.com",
		HeroVideo:    "/video/RivianPromote.mp4",
		Audio:        "/audio/cinemati.mp3",
		GalleryTitle: "Models Gallery",
		VideosTitle:  "Feature Videos",
		ClaimsTitle:  "Why Choose Rivian?",
		ContactEmail: "contact@rivian.com",
		EmbedBase:    DefaultEmbedBase,
		Nav: []NavItem{
			{Label: "Features", Target: SectionFeatures},
			{Label: "Gallery", Target: SectionGallery},
			{Label: "Contact", Target: SectionContact},
		},
		Gallery: []GalleryImage{
			{Src: "/images/truck.jpg", Alt: "Rivian Truck", Desc: "R1T: Ultimate Electric Truck"},
			{Src: "/images/suv.jpg", Alt: "R1S SUV", Desc: "R1S: Adventure Meets Luxury"},
			{Src: "/images/interior.jpg", Alt: "Rivian Interior", Desc: "Spacious Interior, Cutting-Edge Tech"},
		},
		FeatureVideos: []FeatureVideo{
			{Title: "Vidéo Night Promo", EmbedID: "HMH3IJ16E0M"},
			{Title: "Tank Turn", EmbedID: "yzwM8KE2L3I"},
			{Title: "Performance Testing Launch", EmbedID: "0Tu7oLGVCoI"},
		},
		Claims: []FeatureClaim{
			{Icon: "✔️", Text: "Top-tier quality in every component"},
			{Icon: "🚀", Text: "Trend-setting design that turns heads"},
			{Icon: "⚡", Text: "Zero emissions with our electric powertrain"},
			{Icon: "🏭", Text: "Proudly built in Detroit, the innovation hub"},
		},
	}
}

// Load reads a YAML override file on top of Default. Keys missing from the
// file keep their default value; lists present in the file replace the
// default list wholesale.
func Load(path string) (*Page, error) {
	page := Default()
	if path == "" {
		return page, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, page); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content file %s: %w", path, err)
	}
	return page, nil
}

var embedIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func (p *Page) Validate() error {
	var errs []error

	if strings.TrimSpace(p.Brand) == "" {
		errs = append(errs, errors.New("brand is required"))
	}
	for _, msg := range []string{
		validate.Brand(p.Brand),
		validate.Title(p.Title),
		validate.Description(p.Description),
		validate.Headline(p.Headline),
		validate.Label(p.CTALabel),
		validate.Title(p.GalleryTitle),
		validate.Title(p.VideosTitle),
		validate.Title(p.ClaimsTitle),
	} {
		if msg != "" {
			errs = append(errs, errors.New(msg))
		}
	}
	if len(p.Nav) != 3 {
		errs = append(errs, fmt.Errorf("nav must have 3 items, got %d", len(p.Nav)))
	}
	seen := make(map[string]bool, len(p.Nav))
	for i, item := range p.Nav {
		if item.Label == "" {
			errs = append(errs, fmt.Errorf("nav[%d]: label is required", i))
		} else if msg := validate.Label(item.Label); msg != "" {
			errs = append(errs, fmt.Errorf("nav[%d]: %s", i, msg))
		}
		if !isSection(item.Target) {
			errs = append(errs, fmt.Errorf("nav[%d]: unknown target %q", i, item.Target))
		} else if seen[item.Target] {
			errs = append(errs, fmt.Errorf("nav[%d]: duplicate target %q", i, item.Target))
		}
		seen[item.Target] = true
	}

	if len(p.Gallery) != 3 {
		errs = append(errs, fmt.Errorf("gallery must have 3 images, got %d", len(p.Gallery)))
	}
	for i, img := range p.Gallery {
		if img.Src == "" {
			errs = append(errs, fmt.Errorf("gallery[%d]: src is required", i))
		}
		if msg := validate.Caption(img.Desc); msg != "" {
			errs = append(errs, fmt.Errorf("gallery[%d]: %s", i, msg))
		}
	}

	if len(p.FeatureVideos) != 3 {
		errs = append(errs, fmt.Errorf("featureVideos must have 3 entries, got %d", len(p.FeatureVideos)))
	}
	for i, v := range p.FeatureVideos {
		if !embedIDPattern.MatchString(v.EmbedID) {
			errs = append(errs, fmt.Errorf("featureVideos[%d]: invalid embed id %q", i, v.EmbedID))
		}
	}

	if len(p.Claims) != 4 {
		errs = append(errs, fmt.Errorf("claims must have 4 entries, got %d", len(p.Claims)))
	}
	for i, c := range p.Claims {
		if msg := validate.Claim(c.Text); msg != "" {
			errs = append(errs, fmt.Errorf("claims[%d]: %s", i, msg))
		}
	}

	if !isAbsoluteHTTP(p.CTAURL) {
		errs = append(errs, fmt.Errorf("ctaUrl must be an absolute http(s) URL, got %q", p.CTAURL))
	}
	if !isAbsoluteHTTP(p.EmbedBase) {
		errs = append(errs, fmt.Errorf("embedBase must be an absolute http(s) URL, got %q", p.EmbedBase))
	}
	if _, err := mail.ParseAddress(p.ContactEmail); err != nil {
		errs = append(errs, fmt.Errorf("contactEmail: %w", err))
	}

	return errors.Join(errs...)
}

// EmbedURL builds the iframe source for a feature video. Autoplay only
// works muted in most browsers, so both flags are always set.
func (p *Page) EmbedURL(v FeatureVideo) string {
	base := strings.TrimRight(p.EmbedBase, "/")
	if base == "" {
		base = DefaultEmbedBase
	}
	q := url.Values{}
	q.Set("autoplay", "1")
	q.Set("mute", "1")
	return base + "/" + url.PathEscape(v.EmbedID) + "?" + q.Encode()
}

func (p *Page) MailTo() string {
	return "mailto:" + p.ContactEmail
}

func CopyrightLine(brand string, year int) string {
	return fmt.Sprintf("© %d %s – All rights reserved", year, brand)
}

func isSection(target string) bool {
	switch target {
	case SectionFeatures, SectionGallery, SectionContact:
		return true
	}
	return false
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
