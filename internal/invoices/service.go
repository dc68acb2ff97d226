package invoices

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"tripbook/internal/bookings"
	"tripbook/internal/notifications"
	"tripbook/internal/shared/apperrors"
	"tripbook/internal/shared/utils/validation"
	"tripbook/pkg/logger"
	"tripbook/pkg/storage"
)

// Render pipeline stages reported in RenderError
const (
	StageTemplate   = "template"
	StageLaunch     = "launch"
	StageScreenshot = "screenshot"
	StagePersist    = "persist"
	StagePDF        = "pdf"
)

// Service is the invoice renderer
type Service interface {
	RenderInvoice(ctx context.Context, req InvoiceRequest) (*InvoiceResult, error)
	RenderReceiptPDF(ctx context.Context, bookingID string) ([]byte, string, error)

	SetPublisher(publisher notifications.Publisher)
}

// Config holds the renderer settings
type Config struct {
	TemplatePath string
	ShareBaseURL string
	// Zero leaves the engine without a deadline.
	RenderTimeout time.Duration
}

type service struct {
	cfg       Config
	launcher  Launcher
	store     storage.Store
	bookings  bookings.Service
	publisher notifications.Publisher
	log       *logger.Logger

	seq atomic.Uint64
	now func() time.Time
}

func NewService(cfg Config, launcher Launcher, store storage.Store, bookingService bookings.Service, log *logger.Logger) Service {
	return &service{
		cfg:       cfg,
		launcher:  launcher,
		store:     store,
		bookings:  bookingService,
		publisher: notifications.NoopPublisher{},
		log:       log,
		now:       time.Now,
	}
}

// SetPublisher injects the event publisher
func (s *service) SetPublisher(publisher notifications.Publisher) {
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	s.publisher = publisher
}

func (s *service) RenderInvoice(ctx context.Context, req InvoiceRequest) (*InvoiceResult, error) {
	req.trim()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	start := s.now()
	if s.cfg.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RenderTimeout)
		defer cancel()
	}

	tpl, err := LoadTemplate(s.cfg.TemplatePath)
	if err != nil {
		return nil, s.renderFailed(ctx, StageTemplate, err)
	}

	seq := s.seq.Add(1)
	html := tpl.Render(map[string]string{
		TokenCustomerName: req.CustomerName,
		TokenFrom:         req.From,
		TokenTo:           req.To,
		TokenDate:         req.Date,
		TokenAmount:       req.Amount.String(),
		TokenContactNo:    req.ContactNo,
		TokenInvoiceNo:    fmt.Sprintf("INV-%s-%04d", start.Format("20060102"), seq),
		TokenIssuedAt:     start.Format("02 Jan 2006 15:04"),
	})

	png, err := s.capture(ctx, html)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("invoice_%d_%d.png", start.UnixNano(), seq)
	imageURL, err := s.store.Save(ctx, name, png, "image/png")
	if err != nil {
		return nil, s.renderFailed(ctx, StagePersist, err)
	}

	result := &InvoiceResult{
		ImageURL:    imageURL,
		WhatsappURL: BuildShareURL(s.cfg.ShareBaseURL, req.ContactNo, ShareMessage(req, imageURL)),
	}

	s.log.LogInvoiceRendered(ctx, imageURL, s.now().Sub(start))
	if err := s.publisher.Publish(ctx, notifications.NewBookingEvent(notifications.EventTypeInvoiceRendered, "", result)); err != nil {
		s.log.WarnWithContext(ctx, "failed to publish invoice event", err, map[string]interface{}{"image_url": imageURL})
	}

	return result, nil
}

// capture owns the engine for the duration of one screenshot
func (s *service) capture(ctx context.Context, html string) ([]byte, error) {
	engine, err := s.launcher.Launch(ctx)
	if err != nil {
		return nil, s.renderFailed(ctx, StageLaunch, err)
	}
	defer func() {
		if cerr := engine.Close(); cerr != nil {
			s.log.WarnWithContext(ctx, "failed to close rendering engine", cerr, nil)
		}
	}()

	png, err := engine.Screenshot(ctx, html)
	if err != nil {
		return nil, s.renderFailed(ctx, StageScreenshot, err)
	}
	return png, nil
}

func (s *service) RenderReceiptPDF(ctx context.Context, bookingID string) ([]byte, string, error) {
	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}

	pdf, filename, err := buildReceiptPDF(booking, s.now())
	if err != nil {
		return nil, "", s.renderFailed(ctx, StagePDF, err)
	}
	return pdf, filename, nil
}

// renderFailed logs a failed stage and wraps it for the caller
func (s *service) renderFailed(ctx context.Context, stage string, err error) error {
	s.log.ErrorWithContext(ctx, "invoice render failed", err, map[string]interface{}{"stage": stage})
	return apperrors.RenderError{Stage: stage, Err: err}
}
