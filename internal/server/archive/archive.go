// Package archive stores a JSON record of every triggered emergency alert.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/safewalk/internal/server/config"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Nop drops every result. It is used when no bucket is configured.
type Nop struct{}

func (Nop) Save(context.Context, *models.AlertResult) error { return nil }

// S3Archive writes alert results to an S3-compatible bucket.
type S3Archive struct {
	client objectPutter
	bucket string
}

// NewS3Archive builds an S3 client from the static credentials, region and
// endpoint in cfg.
func NewS3Archive(ctx context.Context, cfg *sc.Config) (*S3Archive, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Archive{client: client, bucket: cfg.S3Bucket}, nil
}

// Key returns the object key of an alert: alerts/<y>/<m>/<d>/<owner>/<id>.json,
// dated by the trigger time in UTC.
func Key(r *models.AlertResult) string {
	d := r.TriggeredAt.UTC()
	return path.Join("alerts",
		fmt.Sprint(d.Year()), fmt.Sprint(int(d.Month())), fmt.Sprint(d.Day()),
		r.OwnerID, r.ID+".json")
}

func (a *S3Archive) Save(ctx context.Context, r *models.AlertResult) error {
	body, err := json.Marshal(r)
	if err != nil {
		return err
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(Key(r)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("error archiving alert %s: %w", r.ID, err)
	}
	return nil
}
