package usecase

import (
	"context"
	"log/slog"

	"github.com/inkpress/inkpress/internal/digest/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"go.opentelemetry.io/otel/trace"
)

type articleSource interface {
	FetchArticles(ctx context.Context) ([]entity.Article, error)
}

type Usecase struct {
	source articleSource
	ins    instrument.Instrumentation
}

type Dependency struct {
	Source     articleSource
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		source: dep.Source,
		ins:    dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("digest.usecase").Start(ctx, name)
}

func (s *Usecase) Articles(ctx context.Context) ([]entity.Article, error) {
	ctx, span := s.startSpan(ctx, "Articles")
	defer span.End()

	articles, err := s.source.FetchArticles(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch digest articles", "error", err)
		return nil, goerror.NewServer(err)
	}

	return articles, nil
}
