package handlers

import (
	"encoding/xml"
	"net/http"
	"time"

	"firmsite/helper"
	"firmsite/models"
	"firmsite/services"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated read surface of the site:
// published posts, approved testimonials, the blog RSS feed and sitemap.
type PublicHandler struct {
	blogService        services.BlogService
	testimonialService services.TestimonialService
	siteName           string
	baseURL            string
	Helper             *helper.HTTPHelper
}

func NewPublicHandler(blogService services.BlogService, testimonialService services.TestimonialService, siteName, baseURL string) *PublicHandler {
	return &PublicHandler{
		blogService:        blogService,
		testimonialService: testimonialService,
		siteName:           siteName,
		baseURL:            baseURL,
		Helper:             &helper.HTTPHelper{},
	}
}

func (h *PublicHandler) GetPosts(c *gin.Context) {
	var params models.PostListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	posts, total, err := h.blogService.GetPosts(params, true)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"posts":  posts,
		"paging": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *PublicHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.blogService.GetPostBySlug(c.Param("slug"), true)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", post)
}

func (h *PublicHandler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetTestimonials(true)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", testimonials)
}

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

func (h *PublicHandler) RSS(c *gin.Context) {
	posts, _, err := h.blogService.GetPosts(models.PostListParams{
		Page:      1,
		Limit:     20,
		SortBy:    "published_at",
		SortOrder: "desc",
	}, true)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if p.PublishedAt != nil {
			pubDate = p.PublishedAt.Format(time.RFC1123Z)
		}
		postURL := h.baseURL + "/blogs/" + p.Slug
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title: h.siteName,
			Link:  h.baseURL,
			Items: items,
		},
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.Status(http.StatusOK)
	c.Writer.WriteString(xml.Header)
	xml.NewEncoder(c.Writer).Encode(feed)
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (h *PublicHandler) Sitemap(c *gin.Context) {
	posts, _, err := h.blogService.GetPosts(models.PostListParams{
		Page:      1,
		Limit:     1000,
		SortBy:    "published_at",
		SortOrder: "desc",
	}, true)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	urls := []sitemapURL{
		{Loc: h.baseURL},
		{Loc: h.baseURL + "/about"},
		{Loc: h.baseURL + "/services"},
		{Loc: h.baseURL + "/blogs"},
		{Loc: h.baseURL + "/contact"},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     h.baseURL + "/blogs/" + p.Slug,
			LastMod: p.UpdatedAt.Format("2006-01-02"),
		})
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Status(http.StatusOK)
	c.Writer.WriteString(xml.Header)
	xml.NewEncoder(c.Writer).Encode(sitemap)
}
