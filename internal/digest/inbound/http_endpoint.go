package inbound

import (
	"github.com/inkpress/inkpress/internal/digest/entity"
	"github.com/inkpress/inkpress/internal/pkg/router"
	"github.com/samber/lo"
)

type HTTPEndpoint struct {
	uc uc
}

type ArticleResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Articles lists the links harvested from the external digest source.
// @Summary List digest articles
// @Description Scrapes the configured source page and returns its article links.
// @Tags Digest
// @Produce json
// @Success 200 {object} router.successResponse{data=[]ArticleResponse} "Articles"
// @Failure 500 {object} router.errorResponse "Source unreachable or unparsable"
// @Router /api/v1/digest/articles [get]
func (h *HTTPEndpoint) Articles(r *router.Request) (any, error) {
	articles, err := h.uc.Articles(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(articles, func(a entity.Article, _ int) ArticleResponse {
		return ArticleResponse{Title: a.Title, URL: a.URL}
	}), nil
}
