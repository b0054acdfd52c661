// SPDX-License-Identifier: MIT
// Package: kmeanslab/cmd/kmeanslab
//
// stores.go — openStore: config.Store to a concrete snapshot store.

package main

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/katalvlaran/kmeanslab/config"
	"github.com/katalvlaran/kmeanslab/store"
	miniostore "github.com/katalvlaran/kmeanslab/store/minio"
	s3store "github.com/katalvlaran/kmeanslab/store/s3"
)

// openStore builds the snapshot store selected by the configuration.
func openStore(ctx context.Context, sc config.Store) (store.Store, error) {
	switch strings.ToLower(sc.Kind) {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil

	case config.StoreLocal:
		return store.NewLocalStore(sc.Dir), nil

	case config.StoreMinIO:
		client, err := minio.New(sc.Endpoint, &minio.Options{
			Creds:  miniocreds.NewStaticV4(sc.AccessKey, sc.SecretKey, ""),
			Secure: sc.Secure,
			Region: sc.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return miniostore.NewStore(client, sc.Bucket, sc.Prefix), nil

	case config.StoreS3:
		var opts []func(*awsconfig.LoadOptions) error
		if sc.Region != "" {
			opts = append(opts, awsconfig.WithRegion(sc.Region))
		}
		if sc.AccessKey != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(sc.AccessKey, sc.SecretKey, ""),
			))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("aws config: %w", err)
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if sc.Endpoint != "" {
				o.BaseEndpoint = &sc.Endpoint
				o.UsePathStyle = true
			}
		})
		return s3store.NewStore(client, sc.Bucket, sc.Prefix), nil
	}

	return nil, fmt.Errorf("unknown store kind %q", sc.Kind)
}
