package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/detroitcommercial/microsite/internal/content"
)

// DOM hooks shared with the WebAssembly client.
const (
	AudioID          = "ambient-audio"
	CTAID            = "hero-cta"
	NavIndexAttr     = "data-nav-index"
	GalleryIndexAttr = "data-gallery-index"
	HoveredAttr      = "data-hovered"
)

func AmbientAudio(page *content.Page) g.Node {
	return Audio(
		ID(AudioID),
		Class("ambient-audio"),
		g.Attr("autoplay"),
		g.Attr("loop"),
		g.Attr("preload", "auto"),
		Source(Src(page.Audio), Type("audio/mpeg")),
	)
}

func NavBar(page *content.Page) g.Node {
	items := make([]g.Node, 0, len(page.Nav))
	for i, item := range page.Nav {
		items = append(items, Li(
			Button(
				Type("button"),
				Class("nav-item"),
				g.Attr(NavIndexAttr, strconv.Itoa(i)),
				g.Attr("data-scroll-target", item.Target),
				g.Attr(HoveredAttr, "false"),
				g.Text(item.Label),
			),
		))
	}

	return Nav(
		Class("nav"),
		Div(
			Class("nav-inner"),
			H1(Class("nav-title"), g.Text(page.Brand)),
			Ul(Class("nav-list"), g.Group(items)),
		),
	)
}

func HeroSection(page *content.Page) g.Node {
	return Section(
		Class("hero"),
		Video(
			Class("hero-video"),
			Src(page.HeroVideo),
			g.Attr("autoplay"),
			g.Attr("muted"),
			g.Attr("loop"),
			g.Attr("playsinline"),
		),
		Div(Class("hero-overlay")),
		Div(
			Class("hero-text"),
			H2(Class("hero-title"), g.Text(page.Headline)),
			A(
				ID(CTAID),
				Class("hero-button"),
				Href(page.CTAURL),
				g.Attr("target", "_blank"),
				g.Attr("rel", "noopener"),
				g.Attr("role", "button"),
				g.Text(page.CTALabel),
			),
		),
	)
}

func GallerySection(page *content.Page) g.Node {
	tiles := make([]g.Node, 0, len(page.Gallery))
	for i, img := range page.Gallery {
		tiles = append(tiles, Div(
			Class("gallery-item"),
			Img(Src(img.Src), Alt(img.Alt), Class("gallery-image"), g.Attr("loading", "lazy")),
			Div(
				Class("gallery-overlay"),
				g.Attr(GalleryIndexAttr, strconv.Itoa(i)),
				g.Attr(HoveredAttr, "false"),
				P(g.Text(img.Desc)),
			),
		))
	}

	return Section(
		ID(content.SectionGallery),
		Class("gallery"),
		H3(Class("gallery-title"), g.Text(page.GalleryTitle)),
		Div(Class("gallery-grid"), g.Group(tiles)),
	)
}

func FeaturesSection(page *content.Page) g.Node {
	return Section(
		ID(content.SectionFeatures),
		Class("features"),
		Div(
			Class("features-container"),
			H2(Class("features-title"), g.Text(page.VideosTitle)),
			Div(
				Class("video-row"),
				g.Group(g.Map(page.FeatureVideos, func(v content.FeatureVideo) g.Node {
					return Div(
						Class("video-item"),
						Div(Class("video-desc"), g.Text(v.Title)),
						IFrame(
							Class("video-embed"),
							Src(page.EmbedURL(v)),
							g.Attr("title", v.Title),
							g.Attr("allow", "autoplay; encrypted-media"),
							g.Attr("allowfullscreen"),
						),
					)
				})),
			),
			H2(Class("features-title"), g.Text(page.ClaimsTitle)),
			Ul(
				Class("claims"),
				g.Group(g.Map(page.Claims, func(c content.FeatureClaim) g.Node {
					return Li(
						Class("claim"),
						Span(g.Attr("aria-hidden", "true"), g.Text(c.Icon)),
						Span(g.Text(c.Text)),
					)
				})),
			),
		),
	)
}

func PageFooter(page *content.Page, year int) g.Node {
	return Footer(
		ID(content.SectionContact),
		Class("footer"),
		g.Text(content.CopyrightLine(page.Brand, year)),
		Br(),
		A(Href(page.MailTo()), g.Text("Contact Us")),
	)
}
