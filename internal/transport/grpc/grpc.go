// Package grpc implements the gRPC transport for usher.
//
// This transport exposes a single unary Dispatch RPC. It is the
// preferred transport for low-latency, strongly-typed communication
// with robots and edge devices. The wire format is JSON, registered as
// a custom codec, so the message types stay the shared Go structs and
// no generated stubs are involved.
package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/usherd/usher/internal/message"
	"github.com/usherd/usher/internal/transport"
)

const (
	serviceName    = "usher.v1.Usher"
	dispatchMethod = "/" + serviceName + "/Dispatch"
)

// jsonCodec marshals RPC messages as JSON.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return "json" }

// dispatchServer is the RPC surface backed by the dispatcher handler.
type dispatchServer interface {
	Dispatch(ctx context.Context, msg *message.Message) (*message.DispatchResult, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*dispatchServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Dispatch",
			Handler:    dispatchRPCHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

func dispatchRPCHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(message.Message)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(dispatchServer).Dispatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: dispatchMethod}
	h := func(ctx context.Context, req any) (any, error) {
		return srv.(dispatchServer).Dispatch(ctx, req.(*message.Message))
	}
	return interceptor(ctx, in, info, h)
}

// server adapts the transport.Handler to the RPC surface.
type server struct {
	handler transport.Handler
}

func (s *server) Dispatch(ctx context.Context, msg *message.Message) (*message.DispatchResult, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return s.handler(ctx, msg)
}

// Transport implements transport.Transport over gRPC.
type Transport struct {
	port   int
	server *grpc.Server
}

// New creates a new gRPC transport on the given port.
func New(port int) *Transport {
	return &Transport{port: port}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "grpc" }

// Listen starts the gRPC server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", t.port))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	t.server = grpc.NewServer(grpc.ForceServerCodec(jsonCodec{}))
	t.server.RegisterService(&serviceDesc, &server{handler: handler})

	slog.Info("grpc transport listening", "port", t.port)

	go func() {
		<-ctx.Done()
		slog.Info("grpc transport shutting down")
		t.server.GracefulStop()
	}()

	return t.server.Serve(lis)
}

// Close gracefully stops the gRPC server.
func (t *Transport) Close() error {
	if t.server != nil {
		t.server.GracefulStop()
	}
	return nil
}

// Dispatch is the client half: it sends one message to a usher gRPC
// endpoint and returns the dispatch outcome.
func Dispatch(ctx context.Context, addr string, msg *message.Message) (*message.DispatchResult, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	defer conn.Close()

	var result message.DispatchResult
	if err := conn.Invoke(ctx, dispatchMethod, msg, &result, grpc.ForceCodec(jsonCodec{})); err != nil {
		return nil, fmt.Errorf("grpc dispatch: %w", err)
	}
	return &result, nil
}
