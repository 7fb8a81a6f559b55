/*
Copyright 2024 The goanvil Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dimension

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/owengage/goanvil/region"
)

// S3Loader reads region files and their ".mcc" external-chunk
// overflow siblings from an S3 bucket/prefix, for a world stored in
// object storage rather than on local disk.
type S3Loader struct {
	Client *s3.S3
	Bucket string
	// Prefix, if non-empty, should end in "/" and is prepended to every
	// object key this loader reads or writes.
	Prefix string
}

// NewS3Loader builds an S3Loader from a session and bucket, the same
// session/client construction shape as any aws-sdk-go consumer.
func NewS3Loader(sess *session.Session, bucket, prefix string) *S3Loader {
	return &S3Loader{Client: s3.New(sess), Bucket: bucket, Prefix: prefix}
}

func (l *S3Loader) key(name string) string {
	return l.Prefix + name
}

func (l *S3Loader) Region(rx, rz int32) (*region.Region, bool, error) {
	key := l.key(fmt.Sprintf("r.%d.%d.mca", rx, rz))
	out, err := l.Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(l.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("dimension: s3 get %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, fmt.Errorf("dimension: s3 read %s: %w", key, err)
	}

	reg, err := region.Open(&seekableBuffer{data: data}, &s3ExternalFiles{loader: l})
	if err != nil {
		return nil, false, fmt.Errorf("dimension: s3 parse %s: %w", key, err)
	}
	return reg, true, nil
}

// seekableBuffer adapts an in-memory byte slice to io.ReadWriteSeeker
// for region.Open, which needs random access to the header and sector
// table but does not require the result to be persisted back to S3 by
// this loader (callers that mutate a region loaded from S3 are
// responsible for re-uploading it themselves).
type seekableBuffer struct {
	data []byte
	pos  int64
}

func (s *seekableBuffer) Read(p []byte) (int, error) {
	if s.pos >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.pos:])
	s.pos += int64(n)
	return n, nil
}

func (s *seekableBuffer) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > int64(len(s.data)) {
		grown := make([]byte, end)
		copy(grown, s.data)
		s.data = grown
	}
	copy(s.data[s.pos:end], p)
	s.pos = end
	return len(p), nil
}

func (s *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.pos
	case io.SeekEnd:
		base = int64(len(s.data))
	default:
		return 0, fmt.Errorf("dimension: invalid whence %d", whence)
	}
	s.pos = base + offset
	return s.pos, nil
}

// s3ExternalFiles satisfies region.ExternalFiles against the same
// bucket/prefix as its owning S3Loader, for chunks that overflowed
// into a ".mcc" sibling object.
type s3ExternalFiles struct {
	loader *S3Loader
}

func (e *s3ExternalFiles) Open(x, z int) (io.ReadCloser, error) {
	key := e.loader.key(fmt.Sprintf("c.%d.%d.mcc", x, z))
	out, err := e.loader.Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(e.loader.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("dimension: s3 get %s: %w", key, err)
	}
	return out.Body, nil
}

func (e *s3ExternalFiles) Create(x, z int) (io.WriteCloser, error) {
	return &s3UploadBuffer{ef: e, x: x, z: z}, nil
}

// s3UploadBuffer accumulates an external chunk's bytes in memory and
// uploads them as a single PutObject on Close, since S3 has no
// incremental-append write API.
type s3UploadBuffer struct {
	ef   *s3ExternalFiles
	x, z int
	buf  bytes.Buffer
}

func (u *s3UploadBuffer) Write(p []byte) (int, error) {
	return u.buf.Write(p)
}

func (u *s3UploadBuffer) Close() error {
	key := u.ef.loader.key(fmt.Sprintf("c.%d.%d.mcc", u.x, u.z))
	_, err := u.ef.loader.Client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(u.ef.loader.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(u.buf.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("dimension: s3 put %s: %w", key, err)
	}
	return nil
}
