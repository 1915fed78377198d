// Package client provides test commands for the stats gRPC service
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/handlers/stats/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the stats service",
	Long:  `Client commands exercise a running stats server with real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Owner commands
	ClientCmd.AddCommand(createOwnerCmd)
	ClientCmd.AddCommand(deleteOwnerCmd)
	ClientCmd.AddCommand(setLevelCmd)
	ClientCmd.AddCommand(awardXPCmd)

	// Stat commands
	ClientCmd.AddCommand(addStatsCmd)
	ClientCmd.AddCommand(updateStatsCmd)
	ClientCmd.AddCommand(getStatCmd)
}

// createStatsClient creates a stats service client
func createStatsClient() (v1alpha1.StatsServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewStatsServiceClient(conn), cleanup, nil
}

func newRequest(fields map[string]any) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return req, nil
}

// callError restores the reason carried by a gRPC status
func callError(action string, err error) error {
	restored := errors.FromGRPCError(err)
	if reason := errors.GetReason(restored); reason != "" {
		return fmt.Errorf("failed to %s (%s): %w", action, reason, restored)
	}
	return fmt.Errorf("failed to %s: %w", action, restored)
}

func printResponse(w io.Writer, resp *structpb.Struct) error {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

type callFunc func(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)

// call sends fields to the method pick selects and prints the response
func call(cmd *cobra.Command, action string, fields map[string]any, pick func(v1alpha1.StatsServiceClient) callFunc) error {
	req, err := newRequest(fields)
	if err != nil {
		return err
	}

	client, cleanup, err := createStatsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := pick(client)(ctx, req)
	if err != nil {
		return callError(action, err)
	}

	return printResponse(cmd.OutOrStdout(), resp)
}
