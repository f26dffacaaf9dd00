package kvstore

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// s3ListConcurrency bounds the number of objects fetched in parallel by List.
const s3ListConcurrency = 8

// S3 stores each item as the object "{store}/{resource}/{id}" in one bucket.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

var _ Resource = (*S3)(nil)

func NewS3(client *s3.Client, bucket, storeID, resource string) (*S3, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("kvstore: s3: bucket is missing")
	}
	if storeID == "" {
		return nil, errors.New("kvstore: s3: store id is missing")
	}
	if resource == "" {
		return nil, errors.New("kvstore: s3: resource name is missing")
	}
	return &S3{
		client: client,
		bucket: bucket,
		prefix: storeID + "/" + resource + "/",
	}, nil
}

func (s *S3) Backend() string { return BackendS3 }

func (s *S3) key(id string) string {
	return s.prefix + id
}

func isS3NotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

func (s *S3) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	return errors.Wrap(err, "kvstore: s3: head bucket")
}

func (s *S3) keys(ctx context.Context) ([]string, error) {
	var keys []string
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "kvstore: s3: list objects")
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}

func (s *S3) List(ctx context.Context) ([][]byte, error) {
	keys, err := s.keys(ctx)
	if err != nil {
		return nil, err
	}

	out := make([][]byte, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s3ListConcurrency)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			b, err := s.getObject(gctx, key)
			if isS3NotFound(err) {
				// removed between listing and fetching
				return nil
			}
			out[i] = b
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := out[:0]
	for _, b := range out {
		if b != nil {
			items = append(items, b)
		}
	}
	return items, nil
}

func (s *S3) getObject(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer obj.Body.Close()
	return io.ReadAll(obj.Body)
}

func (s *S3) Get(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, ErrIDMissing
	}
	b, err := s.getObject(ctx, s.key(id))
	if isS3NotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "kvstore: s3: get")
	}
	return b, nil
}

func (s *S3) Set(ctx context.Context, id string, value []byte) error {
	if id == "" {
		return ErrIDMissing
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(id)),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	return errors.Wrap(err, "kvstore: s3: put")
}

func (s *S3) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDMissing
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	return errors.Wrap(err, "kvstore: s3: delete")
}

func (s *S3) RemoveAll(ctx context.Context) error {
	keys, err := s.keys(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s3ListConcurrency)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			_, err := s.client.DeleteObject(gctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(key),
			})
			return err
		})
	}
	return errors.Wrap(g.Wait(), "kvstore: s3: remove all")
}
