package storage

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const keyPrefix = "images/"

// Image is a decoded upload ready for Put.
type Image struct {
	Data        []byte
	ContentType string
}

// DecodeImage accepts raw base64 or a data URI ("data:image/png;base64,...")
// and sniffs the bytes; anything that is not an image is rejected. The
// declared data URI type is ignored in favour of the sniffed one.
func DecodeImage(payload string) (*Image, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		header, body, ok := strings.Cut(payload, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, errors.Wrap(ErrInvalidImage, "data uri is not base64")
		}
		payload = body
	}
	if payload == "" {
		return nil, errors.Wrap(ErrInvalidImage, "empty payload")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, errors.Wrap(ErrInvalidImage, "not valid base64")
		}
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrInvalidImage, "empty payload")
	}

	contentType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errors.Wrapf(ErrInvalidImage, "unsupported content type %s", contentType)
	}

	return &Image{Data: data, ContentType: contentType}, nil
}

// NewImageKey returns a collision-free object key for contentType,
// e.g. "images/6f1c...-....png".
func NewImageKey(contentType string) (string, error) {
	mt := mimetype.Lookup(contentType)
	if mt == nil {
		return "", errors.Wrapf(ErrInvalidImage, "unknown content type %s", contentType)
	}
	return keyPrefix + uuid.NewString() + mt.Extension(), nil
}
