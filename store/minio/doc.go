// Package minio stores snapshots in MinIO or any other S3-compatible server.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	st := miniostore.NewStore(client, "kmeans", "runs/")
//	err = store.SaveState(ctx, st, "blobs.kms", state, snapshot.Zstd)
package minio
