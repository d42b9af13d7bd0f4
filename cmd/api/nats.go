package main

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/WessleyAI/autospecs/engine/domain"
	"github.com/WessleyAI/autospecs/engine/specs"
	"github.com/WessleyAI/autospecs/pkg/natsutil"
)

// natsNotifier publishes search events. Publish failures are logged and
// never affect the search.
type natsNotifier struct {
	nc     *nats.Conn
	logger *slog.Logger
}

func (n *natsNotifier) Notify(ctx context.Context, ev specs.SearchEvent) {
	if err := natsutil.Publish(ctx, n.nc, specs.SubjectSearchCompleted, ev); err != nil {
		n.logger.Warn("publish search event failed", "err", err)
	}
}

const lookupQueue = "autospecs-api"

// serveLookups answers lookups over NATS with the same envelope as
// GET /api/car-specs.
func serveLookups(nc *nats.Conn, svc *specs.Service, logger *slog.Logger) (*nats.Subscription, error) {
	return natsutil.Serve(nc, specs.SubjectLookup, lookupQueue,
		func(ctx context.Context, req specs.LookupRequest) domain.SearchResult {
			spec, err := svc.Search(ctx, req.Model)
			if err != nil {
				_, msg := errorResponse(err)
				return domain.Failed(msg)
			}
			return domain.Found(spec)
		},
		func(err error) domain.SearchResult {
			logger.Warn("malformed lookup request", "err", err)
			return domain.Failed("Invalid request")
		},
		logger,
	)
}
