package storage

import (
	"bytes"
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

type R2Options struct {
	Endpoint   string
	Region     string
	AccessKey  string
	SecretKey  string
	Bucket     string
	PresignTTL time.Duration
}

// R2Client stores images in an S3-compatible bucket and hands out
// presigned GET URLs. It is stateless after construction.
type R2Client struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

func NewR2Client(ctx context.Context, opts R2Options) (*R2Client, error) {
	if opts.Bucket == "" {
		return nil, errors.New("bucket name is required")
	}

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				opts.AccessKey,
				opts.SecretKey,
				"",
			),
		),
		config.WithBaseEndpoint(opts.Endpoint),
	)
	if err != nil {
		return nil, errors.Wrap(err, "load s3 config")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &R2Client{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  opts.Bucket,
		ttl:     opts.PresignTTL,
	}, nil
}

// Put stores data under a freshly generated key and returns the key.
func (r *R2Client) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	key, err := NewImageKey(contentType)
	if err != nil {
		return "", err
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", &BridgeError{Op: "put", Key: key, Err: err}
	}

	return key, nil
}

// GetDownloadURL returns a time-limited GET URL for key. A key with no
// backing object yields ErrObjectNotFound.
func (r *R2Client) GetDownloadURL(ctx context.Context, key string) (string, error) {
	_, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return "", &BridgeError{Op: "head", Key: key, Err: ErrObjectNotFound}
		}
		return "", &BridgeError{Op: "head", Key: key, Err: err}
	}

	req, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		return "", &BridgeError{Op: "presign", Key: key, Err: err}
	}

	return req.URL, nil
}

// Delete removes the object at key. Deleting a missing key is not an error.
func (r *R2Client) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isNotFound(err) {
		return &BridgeError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func isNotFound(err error) bool {
	var nf *s3types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *s3types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}
