// Package messaging is the gRPC shim between the engine and a
// provisioned runner. Every transport failure is swallowed into a
// neutral, type-appropriate result: the cycle engine treats runner
// flakiness as an ordinary assertion failure that can recover on the
// next cycle, never as a propagated error.
package messaging

import (
	"context"
	"log/slog"

	"github.com/jtarchie/conductor/engine/model"
	pb "github.com/jtarchie/conductor/proto/runner"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Client dials a single runner address on demand. Runners are ephemeral
// and co-located on a private cluster network, so every channel is
// plaintext — there is no certificate authority to hand them one.
type Client struct {
	logger *slog.Logger
}

// New returns a messaging Client that logs swallowed transport errors
// through logger.
func New(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{logger: logger.WithGroup("messaging")}
}

func dial(address string) (*grpc.ClientConn, error) {
	return grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// SendAction serializes action.Params as UTF-8 JSON, dispatches it to
// address, and returns the reply's outputs as an opaque JSON payload;
// the payload is not parsed or validated, and an empty reply becomes
// "{}". Any RPC failure is logged and reported as an empty mapping,
// never as an error.
func (c *Client) SendAction(ctx context.Context, address string, action model.Action) model.RawValue {
	logger := c.logger.With("address", address, "action", action.Name)

	conn, err := dial(address)
	if err != nil {
		logger.Warn("action.dial.failed", "err", err)

		return model.RawValue("{}")
	}
	defer func() { _ = conn.Close() }()

	params := action.Params
	if len(params) == 0 {
		params = model.RawValue("{}")
	}

	client := pb.NewRunnerClient(conn)

	reply, err := client.Action(ctx, &pb.ActionRequest{
		Type:   action.Type,
		Params: params,
	})
	if err != nil {
		logger.Warn("action.rpc.failed", "code", status.Code(err), "err", err)

		return model.RawValue("{}")
	}

	outputs := model.RawValue(reply.GetOutputs())
	if len(outputs) == 0 {
		outputs = model.RawValue("{}")
	}

	return outputs
}

// SendAssert dispatches asrt to address and copies the reply fields into
// an AssertStatus. Any RPC failure yields a failing status whose
// description carries the error detail.
func (c *Client) SendAssert(ctx context.Context, address string, asrt model.Assert) model.AssertStatus {
	logger := c.logger.With("address", address, "assert", asrt.Name)

	conn, err := dial(address)
	if err != nil {
		logger.Warn("assert.dial.failed", "err", err)

		return model.AssertStatus{Passed: false, Description: err.Error()}
	}
	defer func() { _ = conn.Close() }()

	params := asrt.Params
	if len(params) == 0 {
		params = model.RawValue("{}")
	}

	client := pb.NewRunnerClient(conn)

	reply, err := client.Assert(ctx, &pb.AssertRequest{
		Type:   asrt.Type,
		Params: params,
	})
	if err != nil {
		st, _ := status.FromError(err)
		logger.Warn("assert.rpc.failed", "code", st.Code(), "err", err)

		return model.AssertStatus{Passed: false, Description: st.Message()}
	}

	return model.AssertStatus{
		Passed:      reply.GetPassed(),
		Actual:      reply.GetActual(),
		Expected:    reply.GetExpected(),
		Description: reply.GetDescription(),
	}
}

// Healthcheck reports whether the runner at address answers ready. Any
// RPC error — including a refused connection while the runner is still
// starting — maps to false.
func (c *Client) Healthcheck(ctx context.Context, address string) bool {
	logger := c.logger.With("address", address)

	conn, err := dial(address)
	if err != nil {
		logger.Debug("healthcheck.dial.failed", "err", err)

		return false
	}
	defer func() { _ = conn.Close() }()

	client := pb.NewRunnerClient(conn)

	reply, err := client.Healthcheck(ctx, &pb.HealthcheckRequest{})
	if err != nil {
		logger.Debug("healthcheck.rpc.failed", "code", status.Code(err), "err", err)

		return false
	}

	return reply.GetReady()
}
