package inbound

import (
	"context"

	"github.com/inkpress/inkpress/internal/digest/entity"
	"github.com/inkpress/inkpress/internal/pkg/router"
)

type uc interface {
	Articles(ctx context.Context) ([]entity.Article, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/digest/articles", end.Articles)
}
