package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	dashboardv1 "github.com/ogurasousui/codex-hr-dashboard/internal/adapters/grpc/api/dashboard/v1"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/server"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type rootOptions struct {
	Addr      string
	Timeout   time.Duration
	RequestID string
}

// connectFunc はサーバーへの接続を開き、クライアントと後始末用の関数を返します。
type connectFunc func(addr string) (dashboardv1.DashboardServiceClient, func() error, error)

func dialInsecure(addr string) (dashboardv1.DashboardServiceClient, func() error, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("connect %s: %w", addr, err)
	}
	return dashboardv1.NewDashboardServiceClient(conn), conn.Close, nil
}

// app はサブコマンドが共有する接続と出力先です。
type app struct {
	opts    rootOptions
	connect connectFunc
}

// call は接続を開いて fn を実行し、結果を JSON で出力します。
func (a *app) call(cmd *cobra.Command, fn func(context.Context, dashboardv1.DashboardServiceClient) (any, error)) error {
	client, closeFn, err := a.connect(a.opts.Addr)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), a.opts.Timeout)
	defer cancel()
	if a.opts.RequestID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, server.RequestIDHeader, a.opts.RequestID)
	}

	resp, err := fn(ctx, client)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), resp)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRootCmd(connect connectFunc) *cobra.Command {
	a := &app{connect: connect}

	cmd := &cobra.Command{
		Use:           "hrctl",
		Short:         "Command line client for the HR dashboard gRPC service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&a.opts.Addr, "addr", "localhost:50051", "gRPC server address")
	cmd.PersistentFlags().DurationVar(&a.opts.Timeout, "timeout", 5*time.Second, "per-call timeout")
	cmd.PersistentFlags().StringVar(&a.opts.RequestID, "request-id", "", "request id sent as "+server.RequestIDHeader)

	cmd.AddCommand(
		newStateCmd(a),
		newListCmd(a),
		newViewCmd(a),
		newGetCmd(a),
		newQueryCmd(a),
		newPromoteCmd(a),
		newBookmarkCmd(a),
		newStatsCmd(a),
		newOverviewCmd(a),
		newTrendCmd(a),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd(dialInsecure).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
