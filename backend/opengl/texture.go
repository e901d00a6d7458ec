package opengl

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-theft-auto/glyph"
)

// NoTexture is the handle returned when a texture could not be loaded.
// Binding it unbinds the texture unit.
const NoTexture uint32 = 0

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("opengl: empty image")

// TextureLoadError reports that an image file could not be read or decoded.
type TextureLoadError struct {
	Path string
	Err  error
}

func (e *TextureLoadError) Error() string {
	return fmt.Sprintf("opengl: texture failed to load at path %q: %v", e.Path, e.Err)
}

func (e *TextureLoadError) Unwrap() error { return e.Err }

// TextureUploader creates glyph textures. It implements glyph.TextureUploader.
type TextureUploader struct{}

var _ glyph.TextureUploader = (*TextureUploader)(nil)

// NewTextureUploader returns an uploader for the current GL context.
func NewTextureUploader() *TextureUploader {
	return &TextureUploader{}
}

// UploadAlpha implements glyph.TextureUploader. The mask is uploaded as a
// single-channel R8 texture with clamp-to-edge wrapping and linear filtering.
// Empty masks produce a valid 0x0 texture.
func (u *TextureUploader) UploadAlpha(mask *image.Alpha) (uint32, error) {
	w, h, pix := tightAlpha(mask)

	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return 0, errors.New("opengl: glGenTextures returned no name")
	}

	// Rows are tightly packed bytes.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, pixelPtr(pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex, nil
}

// DeleteTexture implements glyph.TextureUploader.
func (u *TextureUploader) DeleteTexture(texture uint32) {
	if texture != 0 {
		gl.DeleteTextures(1, &texture)
	}
}

// LoadTexture decodes an image file (PNG, JPEG, BMP, TIFF or WebP) and
// uploads it with mipmaps, repeat wrapping and trilinear filtering.
// On failure it returns NoTexture and a *TextureLoadError.
func LoadTexture(path string) (uint32, error) {
	img, err := decodeImage(path)
	if err != nil {
		glyph.Logger().Warn("opengl: texture failed to load", "path", path, "err", err)
		return NoTexture, &TextureLoadError{Path: path, Err: err}
	}

	format, w, h, pix := texturePixels(img)
	if w == 0 || h == 0 {
		return NoTexture, &TextureLoadError{Path: path, Err: ErrEmptyImage}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(w), int32(h), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	glyph.Logger().Debug("opengl: texture loaded", "path", path, "texture", tex, "width", w, "height", h)
	return tex, nil
}

// DeleteTexture frees a texture returned by LoadTexture.
func DeleteTexture(texture uint32) {
	if texture != NoTexture {
		gl.DeleteTextures(1, &texture)
	}
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// texturePixels converts a decoded image to tightly packed bytes and picks the
// matching GL format: RED for 1 channel, RGB for opaque color, RGBA otherwise.
func texturePixels(img image.Image) (format uint32, w, h int, pix []byte) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		g := image.NewGray(image.Rect(0, 0, w, h))
		draw.Draw(g, g.Bounds(), src, b.Min, draw.Src)
		return gl.RED, w, h, g.Pix
	case *image.Alpha:
		aw, ah, apix := tightAlpha(src)
		return gl.RED, aw, ah, apix
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if !rgba.Opaque() {
		return gl.RGBA, w, h, rgba.Pix
	}

	rgb := make([]byte, 0, w*h*3)
	for i := 0; i < len(rgba.Pix); i += 4 {
		rgb = append(rgb, rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2])
	}
	return gl.RGB, w, h, rgb
}

// tightAlpha returns mask's pixels with stride == width.
func tightAlpha(mask *image.Alpha) (w, h int, pix []byte) {
	if mask == nil {
		return 0, 0, nil
	}
	b := mask.Bounds()
	w, h = b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return w, h, nil
	}
	if mask.Stride == w && b.Min == (image.Point{}) {
		return w, h, mask.Pix[:w*h]
	}
	pix = make([]byte, w*h)
	for y := 0; y < h; y++ {
		row := mask.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*w:(y+1)*w], mask.Pix[row:row+w])
	}
	return w, h, pix
}

// pixelPtr returns a pointer to the first pixel, or nil for an empty buffer.
func pixelPtr(pix []byte) unsafe.Pointer {
	if len(pix) == 0 {
		return nil
	}
	return gl.Ptr(pix)
}
