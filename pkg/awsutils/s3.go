/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package awsutils

import (
	"errors"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"io"
)

const (
	// Parts must arrive in order, the scanner reads the download while it is being written
	downloadConcurrency = 1
	downloadPartSize    = 64 * 1024 * 1024
	uploadConcurrency   = 4
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_s3.go -package=mocks -source=s3.go
type ObjectStorage interface {
	ListFilesFromS3Bucket(ctx aws.Context, bucket, prefix string, token *string) (*s3.ListObjectsV2Output, error)
	DownloadFromS3Bucket(ctx aws.Context, file io.WriterAt, bucket, item, rangeHeader string) error
	UploadToS3Bucket(ctx aws.Context, data io.Reader, bucket, key string, tagging string) error
	GetTagsFromObject(ctx aws.Context, bucket, key string) (*s3.GetObjectTaggingOutput, error)
	HeadObject(ctx aws.Context, bucket, key string) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx aws.Context, bucket, key string) error
}

type S3 struct {
	svc        *s3.S3
	downloader *s3manager.Downloader
	uploader   *s3manager.Uploader
}

func (s *S3) Init(awsSession *session.Session, awsConfig *aws.Config) {
	s.svc = s3.New(awsSession, awsConfig)

	s.downloader = s3manager.NewDownloaderWithClient(s.svc, func(d *s3manager.Downloader) {
		d.Concurrency = downloadConcurrency
	})

	s.uploader = s3manager.NewUploaderWithClient(s.svc, func(u *s3manager.Uploader) {
		u.PartSize = downloadPartSize
		u.Concurrency = uploadConcurrency
	})
}

func (s *S3) ListFilesFromS3Bucket(ctx aws.Context, bucket, prefix string, token *string) (*s3.ListObjectsV2Output, error) {
	items, err := s.svc.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
		Bucket:            aws.String(bucket),
		Prefix:            aws.String(prefix),
		ContinuationToken: token,
	})

	return items, err
}

// Downloads a file from S3 using some paralellism.
// Refs https://github.com/awsdocs/aws-doc-sdk-examples/blob/main/go/example_code/s3/s3_download_object.go
// https://docs.aws.amazon.com/sdk-for-go/api/service/s3/s3manager/#Downloader
func (s *S3) DownloadFromS3Bucket(ctx aws.Context, file io.WriterAt, bucket, item, rangeHeader string) error {

	object := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(item),
	}

	if rangeHeader != "" {
		object.Range = aws.String(rangeHeader)
	}

	_, err := s.downloader.DownloadWithContext(ctx, file, object)

	return err
}

// Writes file to AWS using some parallelism.
// https://www.matscloud.com/docs/cloud-sdk/go-and-s3/
func (s *S3) UploadToS3Bucket(ctx aws.Context, data io.Reader, bucket, key string, tagging string) error {
	input := &s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   data,
	}

	if tagging != "" {
		input.Tagging = aws.String(tagging)
	}

	_, err := s.uploader.UploadWithContext(ctx, input)

	return err
}

// Get tag from AWS object
func (s *S3) GetTagsFromObject(ctx aws.Context, bucket, key string) (*s3.GetObjectTaggingOutput, error) {
	tag, err := s.svc.GetObjectTaggingWithContext(ctx, &s3.GetObjectTaggingInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	return tag, err
}

func (s *S3) HeadObject(ctx aws.Context, bucket, key string) (*s3.HeadObjectOutput, error) {
	return s.svc.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
}

func (s *S3) DeleteObject(ctx aws.Context, bucket, key string) error {
	_, err := s.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	return err
}

// IsNotFound reports whether err is the answer of S3 to a missing key. HEAD requests carry
// no body, so the error code is the bare "NotFound" status.
func IsNotFound(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}

	switch awsErr.Code() {
	case s3.ErrCodeNoSuchKey, "NotFound":
		return true
	default:
		return false
	}
}
