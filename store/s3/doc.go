// Package s3 stores snapshots in Amazon S3.
//
//	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("eu-west-1"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	st := s3store.NewStore(s3.NewFromConfig(cfg), "kmeans", "runs/")
//	err = store.SaveState(ctx, st, "blobs.kms", state, snapshot.LZ4)
//
// Uploads and downloads go through the feature/s3/manager transfer helpers,
// so large frames are split into parts transparently.
package s3
