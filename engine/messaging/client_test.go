package messaging_test

import (
	"context"
	"net"
	"testing"

	"github.com/jtarchie/conductor/engine/messaging"
	"github.com/jtarchie/conductor/engine/model"
	pb "github.com/jtarchie/conductor/proto/runner"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc"
)

type stubRunner struct {
	pb.UnimplementedRunnerServer
	ready bool
}

func (s *stubRunner) Action(_ context.Context, req *pb.ActionRequest) (*pb.ActionReply, error) {
	return &pb.ActionReply{Outputs: `{"status":200,"echo":"` + req.GetType() + `"}`}, nil
}

func (s *stubRunner) Assert(_ context.Context, req *pb.AssertRequest) (*pb.AssertReply, error) {
	return &pb.AssertReply{Passed: true, Actual: "1", Expected: "1", Description: req.GetType()}, nil
}

func (s *stubRunner) Healthcheck(_ context.Context, _ *pb.HealthcheckRequest) (*pb.HealthcheckReply, error) {
	return &pb.HealthcheckReply{Ready: s.ready}, nil
}

func startStubRunner(t *testing.T, ready bool) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	server := grpc.NewServer()
	pb.RegisterRunnerServer(server, &stubRunner{ready: ready})

	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	return listener.Addr().String()
}

func TestClientSendAction(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	address := startStubRunner(t, true)
	client := messaging.New(nil)

	outputs := client.SendAction(context.Background(), address, model.Action{Type: "POST"})
	assert.Expect(string(outputs)).To(ContainSubstring(`"status":200`))
}

func TestClientSendAssert(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	address := startStubRunner(t, true)
	client := messaging.New(nil)

	status := client.SendAssert(context.Background(), address, model.Assert{Type: "equals"})
	assert.Expect(status.Passed).To(BeTrue())
}

func TestClientHealthcheck(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	readyAddress := startStubRunner(t, true)
	notReadyAddress := startStubRunner(t, false)
	client := messaging.New(nil)

	assert.Expect(client.Healthcheck(context.Background(), readyAddress)).To(BeTrue())
	assert.Expect(client.Healthcheck(context.Background(), notReadyAddress)).To(BeFalse())
}

func TestClientTransportFailureSentinels(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	// nothing listens on this address: every RPC must fail closed.
	const unreachable = "127.0.0.1:1"

	client := messaging.New(nil)

	outputs := client.SendAction(context.Background(), unreachable, model.Action{Type: "POST"})
	assert.Expect(string(outputs)).To(Equal("{}"))

	status := client.SendAssert(context.Background(), unreachable, model.Assert{Type: "equals"})
	assert.Expect(status.Passed).To(BeFalse())

	assert.Expect(client.Healthcheck(context.Background(), unreachable)).To(BeFalse())
}
