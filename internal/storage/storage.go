// Package storage turns scene media references into URLs ffprobe can read.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	storage_go "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"
)

// DefaultURLExpiry is how long signed URLs stay valid.
const DefaultURLExpiry = 15 * time.Minute

type urlSigner interface {
	CreateSignedUrl(bucketId string, filePath string, expiresIn int) (storage_go.SignedUrlResponse, error)
}

// Resolver maps storage paths in a bucket to signed URLs.
type Resolver struct {
	bucket string
	signer urlSigner
	expiry time.Duration
}

// NewResolver uses the storage API of an initialized Supabase client.
func NewResolver(client *supa.Client, bucket string) *Resolver {
	return &Resolver{bucket: bucket, signer: client.Storage, expiry: DefaultURLExpiry}
}

// Resolve returns a fetchable URL for ref. Absolute http(s) references are
// returned as they are; anything else is a path inside the bucket.
func (r *Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}

	path := strings.TrimPrefix(ref, "/")
	path = strings.TrimPrefix(path, r.bucket+"/")
	if path == "" {
		return "", fmt.Errorf("empty storage path")
	}

	resp, err := r.signer.CreateSignedUrl(r.bucket, path, int(r.expiry.Seconds()))
	if err != nil {
		return "", fmt.Errorf("sign %s/%s: %w", r.bucket, path, err)
	}
	return resp.SignedURL, nil
}
