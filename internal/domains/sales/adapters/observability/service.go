package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
	saleports "github.com/Apurer/store-manager/internal/domains/sales/ports"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

const tracerName = "github.com/Apurer/store-manager/internal/domains/sales/adapters/observability/service"

// Service decorates the sale service with tracing, logging, and metrics.
type Service struct {
	inner   saleports.Service
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

// New wraps the core sale service.
func New(inner saleports.Service, opts ...Option) saleports.Service {
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

func (s *Service) List(ctx context.Context) ([]saledomain.ListingRow, error) {
	ctx, span := s.tracer.Start(ctx, "SaleService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list sales")
	}
	span.SetAttributes(attribute.Int("sales.rows", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, saleID int64) ([]saledomain.DetailRow, error) {
	ctx, span := s.tracer.Start(ctx, "SaleService.GetByID", trace.WithAttributes(attribute.Int64("sale.id", saleID)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, saleID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load sale", slog.Int64("sale.id", saleID))
	}
	span.SetAttributes(attribute.Int("sale.items", len(result)))
	return result, nil
}

func (s *Service) Add(ctx context.Context, items []saledomain.ItemInput) (*saledomain.Registration, error) {
	ctx, span := s.tracer.Start(ctx, "SaleService.Add", trace.WithAttributes(attribute.Int("sale.items", len(items))))
	defer span.End()

	s.logInfo(ctx, "registering sale", slog.Int("sale.items", len(items)))
	result, err := s.inner.Add(ctx, items)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to register sale", slog.Int("sale.items", len(items)))
	}
	span.SetAttributes(attribute.Int64("sale.id", result.ID))
	s.metrics.recordRegistered(ctx, items)
	s.logInfo(ctx, "sale registered", slog.Int64("sale.id", result.ID))
	return result, nil
}

func (s *Service) Edit(ctx context.Context, saleID int64, items []saledomain.ItemInput) (*saledomain.Update, error) {
	ctx, span := s.tracer.Start(ctx, "SaleService.Edit",
		trace.WithAttributes(attribute.Int64("sale.id", saleID), attribute.Int("sale.items", len(items))))
	defer span.End()

	s.logInfo(ctx, "updating sale quantities", slog.Int64("sale.id", saleID), slog.Int("sale.items", len(items)))
	result, err := s.inner.Edit(ctx, saleID, items)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update sale", slog.Int64("sale.id", saleID))
	}
	s.logInfo(ctx, "sale updated", slog.Int64("sale.id", saleID))
	return result, nil
}

func (s *Service) Remove(ctx context.Context, saleID int64) error {
	ctx, span := s.tracer.Start(ctx, "SaleService.Remove", trace.WithAttributes(attribute.Int64("sale.id", saleID)))
	defer span.End()

	s.logInfo(ctx, "removing sale", slog.Int64("sale.id", saleID))
	if err := s.inner.Remove(ctx, saleID); err != nil {
		return s.handleError(ctx, span, err, "failed to remove sale", slog.Int64("sale.id", saleID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "sale removed", slog.Int64("sale.id", saleID))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

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
	registered metric.Int64Counter
	deleted    metric.Int64Counter
	itemsSold  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	registered, _ := m.Int64Counter("sales.service.registered", metric.WithDescription("Number of sales registered"))
	deleted, _ := m.Int64Counter("sales.service.deleted", metric.WithDescription("Number of sales deleted"))
	itemsSold, _ := m.Int64Counter("sales.service.items_sold", metric.WithDescription("Units sold across registered sales"))
	return serviceMetrics{registered: registered, deleted: deleted, itemsSold: itemsSold}
}

func (m serviceMetrics) recordRegistered(ctx context.Context, items []saledomain.ItemInput) {
	if m.registered != nil {
		m.registered.Add(ctx, 1)
	}
	if m.itemsSold == nil {
		return
	}
	var units int64
	for _, item := range items {
		units += int64(item.Quantity)
	}
	m.itemsSold.Add(ctx, units)
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.deleted != nil {
		m.deleted.Add(ctx, 1)
	}
}

var _ saleports.Service = (*Service)(nil)
