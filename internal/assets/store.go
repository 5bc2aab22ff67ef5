package assets

import (
	"context"
	"errors"
	"io"
	"mime"
	"path"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

var ErrInvalidRef = errors.New("invalid asset reference")

// Store is the backend's binary asset store: images go in, addressable
// references come out.
type Store struct {
	bucket *gridfs.Bucket
}

func NewStore(db *mongo.Database) (*Store, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, err
	}
	return &Store{bucket: bucket}, nil
}

// Upload stores the file and returns its reference (hex file id).
func (s *Store) Upload(ctx context.Context, filename string, source io.Reader) (string, error) {
	if deadline, ok := ctx.Deadline(); ok {
		if err := s.bucket.SetWriteDeadline(deadline); err != nil {
			return "", err
		}
	}
	id, err := s.bucket.UploadFromStream(filename, source)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// Open returns a read stream for the referenced asset plus its byte length
// and content type (guessed from the stored filename).
func (s *Store) Open(ctx context.Context, ref string) (io.ReadCloser, int64, string, error) {
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil, 0, "", ErrInvalidRef
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := s.bucket.SetReadDeadline(deadline); err != nil {
			return nil, 0, "", err
		}
	}
	stream, err := s.bucket.OpenDownloadStream(id)
	if err != nil {
		return nil, 0, "", err
	}
	file := stream.GetFile()
	contentType := mime.TypeByExtension(path.Ext(file.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return stream, file.Length, contentType, nil
}

// URL builds the fetchable address for an asset reference.
func URL(ref string) string {
	if ref == "" {
		return ""
	}
	return "/assets/" + ref
}
