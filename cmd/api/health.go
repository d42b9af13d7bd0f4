package main

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// healthServer exposes grpc.health.v1 for orchestrators that probe over gRPC.
type healthServer struct {
	grpc   *grpc.Server
	health *health.Server
}

func newHealthServer() *healthServer {
	hs := &healthServer{grpc: grpc.NewServer(), health: health.NewServer()}
	healthpb.RegisterHealthServer(hs.grpc, hs.health)
	hs.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return hs
}

func (h *healthServer) Serve(lis net.Listener) error { return h.grpc.Serve(lis) }

// Stop reports NOT_SERVING to watchers and then stops the server. Watch
// streams never finish on their own, so there is no graceful stop.
func (h *healthServer) Stop() {
	h.health.Shutdown()
	h.grpc.Stop()
}
