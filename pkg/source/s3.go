package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3Source reads an S3 object through ranged GetObject requests. Only the
// footer and the referenced headers are fetched, never the data pages, so
// analyzing a large file pulls a small fraction of it.
type s3Source struct {
	ctx    context.Context
	client *s3.Client
	bucket string
	key    string
	size   int64
}

// ParseS3URL splits an s3://bucket/key URL.
func ParseS3URL(url string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(url, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 url: %s", url)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 url missing bucket or key: %s", url)
	}
	return bucket, key, nil
}

// OpenS3 opens an S3 object using the default AWS configuration. The object
// size is probed once with HeadObject.
func OpenS3(ctx context.Context, url string) (Source, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return OpenS3WithClient(ctx, s3.NewFromConfig(cfg), url)
}

// OpenS3WithClient opens an S3 object with a caller-supplied client.
func OpenS3WithClient(ctx context.Context, client *s3.Client, url string) (Source, error) {
	bucket, key, err := ParseS3URL(url)
	if err != nil {
		return nil, err
	}

	head, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("head s3://%s/%s: %w", bucket, key, err)
	}

	return &s3Source{
		ctx:    ctx,
		client: client,
		bucket: bucket,
		key:    key,
		size:   aws.ToInt64(head.ContentLength),
	}, nil
}

func (s *s3Source) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= s.size {
		return 0, io.EOF
	}
	end := off + int64(len(p)) - 1
	if end >= s.size {
		end = s.size - 1
	}

	resp, err := s.client.GetObject(s.ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", off, end)),
	})
	if err != nil {
		return 0, fmt.Errorf("get s3://%s/%s range %d-%d: %w", s.bucket, s.key, off, end, err)
	}
	defer resp.Body.Close()

	n, err := io.ReadFull(resp.Body, p[:end-off+1])
	if err != nil {
		return n, fmt.Errorf("read s3 object body: %w", err)
	}
	if int64(n) < int64(len(p)) {
		return n, io.EOF
	}
	return n, nil
}

func (s *s3Source) Size() int64 {
	return s.size
}

func (s *s3Source) Close() error {
	return nil
}
