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

package out

import (
	"context"
	"fmt"
	"io"
	"path"
	"upload-sentry/domain/entities"
	"upload-sentry/domain/ports/out"
	"upload-sentry/logging"
	"upload-sentry/pkg/awsutils"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/eikenb/pipeat"
)

const (
	contentIDTag  = "content-id"
	ownerIDTag    = "owner-id"
	ownerNameTag  = "owner-name"
	ownerPhoneTag = "owner-phone"
)

// S3ArtifactStore keeps uploads as objects of a single bucket. The object key is the target ID.
type S3ArtifactStore struct {
	bucket string
	svc    awsutils.ObjectStorage
	logger logging.Logger
}

func NewS3ArtifactStore(awsSession *session.Session, awsConfig *aws.Config, bucket string, logger logging.Logger) *S3ArtifactStore {
	svc := awsutils.S3{}
	svc.Init(awsSession, awsConfig)

	return newS3ArtifactStore(&svc, bucket, logger)
}

func newS3ArtifactStore(svc awsutils.ObjectStorage, bucket string, logger logging.Logger) *S3ArtifactStore {
	return &S3ArtifactStore{bucket: bucket, svc: svc, logger: logger}
}

func (s *S3ArtifactStore) Bucket() string {
	return s.bucket
}

// Open streams the object through a temporary pipe, so scanning starts before the download ends.
func (s *S3ArtifactStore) Open(ctx context.Context, target entities.ScanTarget) (io.ReadCloser, error) {
	if _, err := s.head(ctx, target.ID); err != nil {
		return nil, err
	}

	reader, writer, err := pipeat.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create internal pipe. %w", err)
	}

	go func() {
		err := s.svc.DownloadFromS3Bucket(ctx, writer, s.bucket, target.ID, "")
		if err != nil {
			s.logger.Debugw("Object download interrupted", "error", err, "bucket", s.bucket, "key", target.ID)
		}

		_ = writer.CloseWithError(err)
	}()

	return reader, nil
}

func (s *S3ArtifactStore) Put(ctx context.Context, target entities.ScanTarget, reader io.Reader) error {
	if err := s.svc.UploadToS3Bucket(ctx, reader, s.bucket, target.ID, ""); err != nil {
		return fmt.Errorf("failed to upload object. bucket: %s, key: %s. %w", s.bucket, target.ID, err)
	}

	return nil
}

func (s *S3ArtifactStore) Delete(ctx context.Context, target entities.ScanTarget) error {
	if _, err := s.head(ctx, target.ID); err != nil {
		return err
	}

	if err := s.svc.DeleteObject(ctx, s.bucket, target.ID); err != nil {
		return fmt.Errorf("failed to delete object. bucket: %s, key: %s. %w", s.bucket, target.ID, err)
	}

	return nil
}

func (s *S3ArtifactStore) List(ctx context.Context) ([]entities.ScanTarget, error) {
	var targets []entities.ScanTarget
	var token *string

	for {
		page, err := s.svc.ListFilesFromS3Bucket(ctx, s.bucket, "", token)
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s. %w", s.bucket, err)
		}

		for _, object := range page.Contents {
			target, err := s.Describe(ctx, aws.StringValue(object.Key))
			if err != nil {
				s.logger.Warnw("Object vanished while listing", "error", err, "bucket", s.bucket, "key", aws.StringValue(object.Key))
				continue
			}

			targets = append(targets, target)
		}

		if !aws.BoolValue(page.IsTruncated) {
			return targets, nil
		}

		token = page.NextContinuationToken
	}
}

// Describe builds the scan target of a stored object. The MIME type is the one declared at upload.
func (s *S3ArtifactStore) Describe(ctx context.Context, key string) (entities.ScanTarget, error) {
	head, err := s.head(ctx, key)
	if err != nil {
		return entities.ScanTarget{}, err
	}

	size := aws.Int64Value(head.ContentLength)
	if size < 0 {
		size = 0
	}

	return entities.NewScanTarget(key, path.Base(key), uint64(size), aws.StringValue(head.ContentType)), nil
}

// ResolveOwner reads the ownership tags attached to the object by the uploading application.
func (s *S3ArtifactStore) ResolveOwner(ctx context.Context, target entities.ScanTarget) (entities.OwnerRef, bool) {
	owner, _, ok := s.Ownership(ctx, target)
	return owner, ok
}

// Ownership returns the owner and the uploader contact data found in the object tags.
func (s *S3ArtifactStore) Ownership(ctx context.Context, target entities.ScanTarget) (entities.OwnerRef, entities.UserRef, bool) {
	tags, err := s.svc.GetTagsFromObject(ctx, s.bucket, target.ID)
	if err != nil {
		s.logger.Debugw("Failed to read object tags", "error", err, "bucket", s.bucket, "key", target.ID)
		return entities.OwnerRef{}, entities.UserRef{}, false
	}

	var owner entities.OwnerRef
	var user entities.UserRef

	for _, tag := range tags.TagSet {
		value := aws.StringValue(tag.Value)

		switch aws.StringValue(tag.Key) {
		case contentIDTag:
			owner.ContentID = value
		case ownerIDTag:
			owner.CreatedBy = value
			user.ID = value
		case ownerNameTag:
			user.Username = value
		case ownerPhoneTag:
			user.Phone = value
		}
	}

	return owner, user, owner.CreatedBy != ""
}

func (s *S3ArtifactStore) head(ctx context.Context, key string) (*s3.HeadObjectOutput, error) {
	head, err := s.svc.HeadObject(ctx, s.bucket, key)
	if awsutils.IsNotFound(err) {
		return nil, fmt.Errorf("%w. bucket: %s, key: %s", out.ErrArtifactNotFound, s.bucket, key)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to stat object. bucket: %s, key: %s. %w", s.bucket, key, err)
	}

	return head, nil
}
