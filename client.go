package adyen_soap_recurring

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hugochinchilla79/adyen_soap_recurring_sdk/models"
)

// SOAP actions of the Recurring service.
const (
	ActionListRecurringDetails   = "listRecurringDetails"
	ActionDisable                = "disable"
	ActionStoreToken             = "storeToken"
	ActionScheduleAccountUpdater = "scheduleAccountUpdater"
)

// Client interacts with the Adyen Recurring SOAP service.
//
// Every call is a single, independent request/response exchange: nothing is
// retried or cached and no state is shared between calls, so a Client may be
// used from multiple goroutines.
type Client struct {
	transport Transport
	logger    *zap.Logger
}

// NewClient creates a new Recurring SOAP client.
// It validates the configuration, loads the optional client certificate, and
// prepares the HTTP transport.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport, err := newSOAPTransport(cfg)
	if err != nil {
		return nil, err
	}

	return NewClientWithTransport(transport, cfg.logger()), nil
}

// NewClientWithTransport creates a client that dispatches through t.
// A nil logger disables logging.
func NewClientWithTransport(t Transport, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{transport: t, logger: logger}
}

// List returns the shopper's stored recurring details.
func (c *Client) List(ctx context.Context, req models.RecurringRequest) (*ListResponse, error) {
	reply, log, err := c.call(ctx, ActionListRecurringDetails, listRequestBody, &req)
	if err != nil {
		return nil, err
	}
	resp := NewListResponse(reply.HTTPStatus, reply.Body)
	logResult(log, ActionListRecurringDetails, reply, resp.Success(), zap.Int("details", len(resp.Details())))
	return resp, nil
}

// Disable disables one stored detail, or all of the shopper's details when
// req.RecurringDetailReference is empty.
func (c *Client) Disable(ctx context.Context, req models.RecurringRequest) (*DisableResponse, error) {
	reply, log, err := c.call(ctx, ActionDisable, disableRequestBody, &req)
	if err != nil {
		return nil, err
	}
	resp := NewDisableResponse(reply.HTTPStatus, reply.Body)
	logResult(log, ActionDisable, reply, resp.Success(), zap.String("result", resp.Result()))
	return resp, nil
}

// StoreToken tokenises a card or ELV account for the shopper.
func (c *Client) StoreToken(ctx context.Context, req models.RecurringRequest) (*StoreTokenResponse, error) {
	var fields []zap.Field
	if req.Card != nil {
		fields = append(fields, zap.String("variant", DetectVariant(req.Card.Number)))
	}

	reply, log, err := c.call(ctx, ActionStoreToken, storeTokenRequestBody, &req, fields...)
	if err != nil {
		return nil, err
	}
	resp := NewStoreTokenResponse(reply.HTTPStatus, reply.Body)
	logResult(log, ActionStoreToken, reply, resp.Success(),
		zap.String("result", resp.Result()),
		zap.String("recurring_detail_reference", resp.RecurringDetailReference()),
	)
	return resp, nil
}

// ScheduleAccountUpdater schedules an account updater job for a card or a stored detail.
func (c *Client) ScheduleAccountUpdater(ctx context.Context, req models.RecurringRequest) (*ScheduleAccountUpdaterResponse, error) {
	reply, log, err := c.call(ctx, ActionScheduleAccountUpdater, scheduleAccountUpdaterRequestBody, &req)
	if err != nil {
		return nil, err
	}
	resp := NewScheduleAccountUpdaterResponse(reply.HTTPStatus, reply.Body)
	logResult(log, ActionScheduleAccountUpdater, reply, resp.Success(), zap.String("result", resp.Result()))
	return resp, nil
}

// call builds the body and invokes the transport. Validation errors are returned
// before anything is sent; transport errors are returned unchanged. The returned
// logger carries the call's action and request id.
func (c *Client) call(
	ctx context.Context,
	action string,
	build func(*models.RecurringRequest) (string, error),
	req *models.RecurringRequest,
	fields ...zap.Field,
) (*Reply, *zap.Logger, error) {
	log := c.logger.With(zap.String("action", action), zap.String("request_id", uuid.NewString()))

	body, err := build(req)
	if err != nil {
		requestsTotal.WithLabelValues(action, outcomeInvalidRequest).Inc()
		log.Warn("invalid recurring request", zap.Error(err))
		return nil, log, err
	}

	log.Debug("sending recurring request", fields...)

	start := time.Now()
	reply, err := c.transport.Invoke(ctx, action, body)
	requestDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(action, outcomeTransportError).Inc()
		log.Error("recurring request failed", zap.Error(err))
		return nil, log, err
	}
	return reply, log, nil
}

func logResult(log *zap.Logger, action string, reply *Reply, success bool, fields ...zap.Field) {
	outcome := outcomeSuccess
	if !success {
		outcome = outcomeUnsuccessful
	}
	requestsTotal.WithLabelValues(action, outcome).Inc()

	log.Info("recurring request completed", append([]zap.Field{
		zap.Int("http_status", reply.HTTPStatus),
		zap.Bool("success", success),
	}, fields...)...)
}
