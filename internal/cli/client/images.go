package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ImageOwner selects whose gallery an image call targets.
type ImageOwner string

const (
	HotelImages ImageOwner = "hotels"
	RoomImages  ImageOwner = "rooms"
)

func imagesPath(owner ImageOwner, id int) (string, error) {
	switch owner {
	case HotelImages, RoomImages:
		return fmt.Sprintf("/admin-api/%s/%d/images/", owner, id), nil
	}
	return "", fmt.Errorf("unknown image owner %q", owner)
}

// ErrGalleryFull means the gallery already holds MaxGalleryImages.
var ErrGalleryFull = errors.New("gallery is full")

// ImageUpload is a single file to add to a gallery.
type ImageUpload struct {
	Filename string `validate:"required"`
	AltText  string
	Data     []byte `validate:"required"`
}

func (c *Client) ListImages(ctx context.Context, owner ImageOwner, id int) ([]Image, error) {
	path, err := imagesPath(owner, id)
	if err != nil {
		return nil, err
	}
	return getList[Image](ctx, c, path, nil)
}

// CheckGalleryRoom fails with ErrGalleryFull when the gallery cannot take
// another image.
func (c *Client) CheckGalleryRoom(ctx context.Context, owner ImageOwner, id int) error {
	images, err := c.ListImages(ctx, owner, id)
	if err != nil {
		return err
	}
	if len(images) >= MaxGalleryImages {
		return fmt.Errorf("%w: %s #%d has %d/%d images; delete one first",
			ErrGalleryFull, strings.TrimSuffix(string(owner), "s"), id, len(images), MaxGalleryImages)
	}
	return nil
}

// UploadImage posts the file as multipart form data.
func (c *Client) UploadImage(ctx context.Context, owner ImageOwner, id int, upload ImageUpload) (*Image, error) {
	path, err := imagesPath(owner, id)
	if err != nil {
		return nil, err
	}
	if len(upload.Data) > MaxImageSize {
		return nil, fmt.Errorf("file size exceeds %dMB limit", MaxImageSize/(1024*1024))
	}
	if err := c.check("upload", upload); err != nil {
		return nil, err
	}
	if upload.AltText == "" {
		upload.AltText = upload.Filename
	}

	kind := mimetype.Detect(upload.Data)
	if !strings.HasPrefix(kind.String(), "image/") {
		return nil, fmt.Errorf("%s is not an image (detected %s)", upload.Filename, kind.String())
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, escapeQuotes(upload.Filename)))
	hdr.Set("Content-Type", kind.String())
	part, err := w.CreatePart(hdr)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if err := w.WriteField("alt_text", upload.AltText); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}

	req, err := c.gw.NewRequest(ctx, http.MethodPost, path+"upload/", nil, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var img Image
	if err := c.send(req, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

func (c *Client) DeleteImage(ctx context.Context, owner ImageOwner, id, imageID int) error {
	path, err := imagesPath(owner, id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s%d/", path, imageID), nil, nil, nil)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
