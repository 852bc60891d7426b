package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	productdomain "github.com/Apurer/store-manager/internal/domains/products/domain"
	productports "github.com/Apurer/store-manager/internal/domains/products/ports"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

const tracerName = "github.com/Apurer/store-manager/internal/domains/products/adapters/observability/service"

// Service decorates the product service with tracing, logging, and metrics.
type Service struct {
	inner   productports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core product service.
func New(inner productports.Service, opts ...Option) productports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("products.count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetByID", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load product", slog.Int64("product.id", id))
	}
	return result, nil
}

func (s *Service) Add(ctx context.Context, name string) (*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Add")
	defer span.End()

	s.logInfo(ctx, "adding product", slog.String("product.name", name))
	result, err := s.inner.Add(ctx, name)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add product")
	}
	span.SetAttributes(attribute.Int64("product.id", result.ID))
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "product added", slog.Int64("product.id", result.ID))
	return result, nil
}

func (s *Service) Edit(ctx context.Context, id int64, name string) (*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Edit", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	s.logInfo(ctx, "renaming product", slog.Int64("product.id", id), slog.String("product.name", name))
	result, err := s.inner.Edit(ctx, id, name)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to rename product", slog.Int64("product.id", id))
	}
	s.logInfo(ctx, "product renamed", slog.Int64("product.id", id))
	return result, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.Remove", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	s.logInfo(ctx, "removing product", slog.Int64("product.id", id))
	if err := s.inner.Remove(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to remove product", slog.Int64("product.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "product removed", slog.Int64("product.id", id))
	return nil
}

func (s *Service) SearchByName(ctx context.Context, term string) ([]*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.SearchByName", trace.WithAttributes(attribute.String("search.term", term)))
	defer span.End()

	result, err := s.inner.SearchByName(ctx, term)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "product search failed", slog.String("search.term", term))
	}
	span.SetAttributes(attribute.Int("products.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// handleError records err on the span. Taxonomy errors are expected client
// outcomes and are logged at warn; anything else is an error.
func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	level := slog.LevelError
	if domainErr, ok := apierrors.As(err); ok {
		level = slog.LevelWarn
		span.SetAttributes(attribute.String("error.kind", string(domainErr.Kind)))
	} else {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, level, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	created metric.Int64Counter
	deleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("products.service.created", metric.WithDescription("Number of products created"))
	deleted, _ := m.Int64Counter("products.service.deleted", metric.WithDescription("Number of products deleted"))
	return serviceMetrics{created: created, deleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.created != nil {
		m.created.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.deleted != nil {
		m.deleted.Add(ctx, 1)
	}
}

var _ productports.Service = (*Service)(nil)
