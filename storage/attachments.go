package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadError reports a presigned-URL generation failure.
type UploadError struct {
	TodoID string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("sign upload for todo %s: %v", e.TodoID, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// PresignAPI is the slice of the S3 presign client the store uses.
type PresignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// AttachmentStore issues time-limited PUT credentials for attachment
// objects and derives their public retrieval URLs. One object per todo,
// keyed by the todoId, in a single bucket.
type AttachmentStore struct {
	presigner PresignAPI
	bucket    string
	region    string
	expiry    time.Duration
}

func NewAttachmentStore(presigner PresignAPI, bucket, region string, expiry time.Duration) *AttachmentStore {
	return &AttachmentStore{presigner: presigner, bucket: bucket, region: region, expiry: expiry}
}

// SignedUploadURL returns a presigned URL permitting a single PUT of the
// attachment object for todoID, valid for the configured expiry. The
// file bytes never pass through this service; the caller uploads
// directly against storage.
func (a *AttachmentStore) SignedUploadURL(ctx context.Context, todoID string) (string, error) {
	req, err := a.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(todoID),
	}, s3.WithPresignExpires(a.expiry))
	if err != nil {
		return "", &UploadError{TodoID: todoID, Err: err}
	}
	return req.URL, nil
}

// AttachmentURL is the public retrieval URL for todoID's attachment:
// the signed URL's base with the credential query string stripped.
// Deterministic, so it can be persisted before the credential exists.
func (a *AttachmentStore) AttachmentURL(todoID string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, todoID)
}
