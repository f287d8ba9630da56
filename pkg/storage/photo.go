package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"campshop/pkg/errs"
	"campshop/pkg/models"

	"github.com/gabriel-vasile/mimetype"
)

var safeExt = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// File is an uploaded multipart file as the handler received it.
type File struct {
	Name   string
	Size   int64
	Reader io.Reader
}

type PhotoUploader struct {
	store   Store
	maxSize int64
}

func NewPhotoUploader(store Store, maxSize int64) *PhotoUploader {
	return &PhotoUploader{store: store, maxSize: maxSize}
}

// Upload checks that file is an image within the size limit and stores it as
// photo_<id><ext> under dir. It returns the stored file name.
func (u *PhotoUploader) Upload(ctx context.Context, dir, id string, file *File) (string, error) {
	if file == nil || file.Reader == nil {
		return "", errs.BadRequest("Please upload a file")
	}
	if file.Size > u.maxSize {
		return "", errs.BadRequest("Please upload an image less than %d bytes", u.maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(file.Reader, u.maxSize+1))
	if err != nil {
		return "", errs.ServerError("Problem with file upload").Wrap(err)
	}
	if int64(len(data)) > u.maxSize {
		return "", errs.BadRequest("Please upload an image less than %d bytes", u.maxSize)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", errs.BadRequest("Please upload an image file")
	}

	name := PhotoName(id, file.Name, mtype.Extension())
	if err := u.store.Save(ctx, dir, name, bytes.NewReader(data), mtype.String()); err != nil {
		return "", errs.ServerError("Problem with file upload").Wrap(err)
	}
	return name, nil
}

// Remove deletes a previously stored photo. The shared default photo is never
// removed.
func (u *PhotoUploader) Remove(ctx context.Context, dir, name string) error {
	if name == "" || name == models.DefaultPhoto {
		return nil
	}
	return u.store.Delete(ctx, dir, name)
}

// PhotoName keeps the client's extension when it looks sane and falls back to
// the detected one.
func PhotoName(id, original, detectedExt string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if !safeExt.MatchString(ext) {
		ext = detectedExt
	}
	return fmt.Sprintf("photo_%s%s", id, ext)
}
