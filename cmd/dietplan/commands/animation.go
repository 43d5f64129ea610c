// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/storage"
	"github.com/spf13/cobra"

	"github.com/curioswitch/dietmate/internal/file"
)

type assetWriter interface {
	WriteFile(ctx context.Context, path string, contentType string, data []byte) (string, error)
}

type connectAssetsFunc func(ctx context.Context, bucket string) (assetWriter, func() error, error)

func connectStorage(ctx context.Context, bucket string) (assetWriter, func() error, error) {
	storage, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("dietplan: create storage client: %w", err)
	}
	return file.NewIO(storage, bucket), storage.Close, nil
}

func newAnimationCmd(deps dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animation",
		Short: "Manage the animation shown in the page header",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newAnimationUploadCmd(deps))
	return cmd
}

func newAnimationUploadCmd(deps dependencies) *cobra.Command {
	var (
		project string
		bucket  string
		path    string
	)

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a Lottie animation to the public assets bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket == "" {
				if project == "" {
					return errors.New("one of --bucket or --project is required")
				}
				bucket = project + "-public"
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("dietplan: reading animation: %w", err)
			}
			if !json.Valid(data) {
				return fmt.Errorf("%s is not a Lottie JSON file", args[0])
			}

			ctx := cmd.Context()
			files, closeFiles, err := deps.connectAssets(ctx, bucket)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeFiles(); err != nil {
					slog.ErrorContext(ctx, "dietplan: close storage client", "error", err)
				}
			}()

			url, err := files.WriteFile(ctx, path, "application/json", data)
			if err != nil {
				return fmt.Errorf("dietplan: uploading animation: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Google Cloud project, the bucket defaults to <project>-public")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Bucket to upload to")
	cmd.Flags().StringVar(&path, "path", "lottie/diet.json", "Path of the animation in the bucket")

	return cmd
}
