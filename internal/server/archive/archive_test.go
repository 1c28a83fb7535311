package archive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/safewalk/internal/server/config"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func sampleResult() *models.AlertResult {
	return &models.AlertResult{
		ID:          "a-1",
		OwnerID:     "o-1",
		TriggeredAt: time.Date(2025, 3, 7, 23, 30, 0, 0, time.UTC),
		Location:    "Main St",
		Deliveries:  []models.Delivery{{ContactID: 1, ContactName: "Mom", Delivered: true, Attempts: 1}},
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "alerts/2025/3/7/o-1/a-1.json", Key(sampleResult()))
}

func TestS3Archive_Save(t *testing.T) {
	p := &fakePutter{}
	a := &S3Archive{client: p, bucket: "alerts"}

	require.NoError(t, a.Save(context.Background(), sampleResult()))

	assert.Equal(t, "alerts", aws.ToString(p.in.Bucket))
	assert.Equal(t, "alerts/2025/3/7/o-1/a-1.json", aws.ToString(p.in.Key))
	assert.Equal(t, "application/json", aws.ToString(p.in.ContentType))

	var got models.AlertResult
	require.NoError(t, json.Unmarshal(p.body, &got))
	assert.Equal(t, "Main St", got.Location)
	require.Len(t, got.Deliveries, 1)
	assert.True(t, got.Deliveries[0].Delivered)
}

func TestS3Archive_SaveError(t *testing.T) {
	a := &S3Archive{client: &fakePutter{err: errors.New("denied")}, bucket: "b"}

	err := a.Save(context.Background(), sampleResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
}

func TestNewS3Archive_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no creds")
	}

	_, err := NewS3Archive(context.Background(), &sc.Config{S3Bucket: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no creds")
}

func TestNewS3Archive_UsesFactory(t *testing.T) {
	origNew := newS3ClientFromConfig
	t.Cleanup(func() { newS3ClientFromConfig = origNew })

	var opts s3.Options
	p := &fakePutter{}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		for _, fn := range optFns {
			fn(&opts)
		}
		return p
	}

	a, err := NewS3Archive(context.Background(), &sc.Config{
		S3Bucket:       "vault",
		S3Region:       "us-east-1",
		S3RootUser:     "u",
		S3RootPassword: "p",
		S3BaseEndpoint: "http://127.0.0.1:9000",
	})
	require.NoError(t, err)
	assert.Same(t, p, a.client)
	assert.Equal(t, "vault", a.bucket)
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Save(context.Background(), sampleResult()))
}
