package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/nfnt/resize"
	"github.com/patrickmn/go-cache"
	"github.com/sbilibin2017/date-tracker/internal/logger"
)

// TimestampLayout prefixes stored filenames so uploads of the same name do not collide.
const TimestampLayout = "20060102_150405_"

const maxCollisionSuffix = 100

// DefaultMaxThumbnailPixels bounds the decoded size of a thumbnail source.
const DefaultMaxThumbnailPixels = 40_000_000

var (
	// ErrNotFound is returned when a requested image does not exist.
	ErrNotFound = errors.New("image not found")
	// ErrThumbnailUnsupported is returned for formats that cannot be decoded for thumbnails.
	ErrThumbnailUnsupported = errors.New("thumbnail not supported for this format")
)

// ImageStore keeps uploaded images in a single flat directory.
type ImageStore struct {
	dir       string
	urlPrefix string
	now       func() time.Time
	thumbs    *cache.Cache
	thumbSize uint
	maxPixels int
}

// Opt configures an ImageStore.
type Opt func(*ImageStore)

// WithURLPrefix sets the prefix recorded in front of stored names (default "static/images").
func WithURLPrefix(prefix string) Opt {
	return func(s *ImageStore) { s.urlPrefix = strings.TrimSuffix(prefix, "/") }
}

// WithClock overrides the time source used for filename prefixes.
func WithClock(now func() time.Time) Opt {
	return func(s *ImageStore) { s.now = now }
}

// WithThumbnailSize sets the bounding box of generated thumbnails (default 300).
func WithThumbnailSize(size uint) Opt {
	return func(s *ImageStore) { s.thumbSize = size }
}

// WithMaxThumbnailPixels sets the largest width*height that is decoded for a
// thumbnail (default DefaultMaxThumbnailPixels). Bigger images are served as is.
func WithMaxThumbnailPixels(n int) Opt {
	return func(s *ImageStore) { s.maxPixels = n }
}

// WithThumbnailTTL sets how long generated thumbnails stay cached (default 1h).
func WithThumbnailTTL(ttl time.Duration) Opt {
	return func(s *ImageStore) { s.thumbs = cache.New(ttl, 2*ttl) }
}

// NewImageStore creates dir if needed and returns a store rooted there.
func NewImageStore(dir string, opts ...Opt) (*ImageStore, error) {
	s := &ImageStore{
		dir:       dir,
		urlPrefix: "static/images",
		now:       time.Now,
		thumbs:    cache.New(time.Hour, 2*time.Hour),
		thumbSize: 300,
		maxPixels: DefaultMaxThumbnailPixels,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory: %w", err)
	}
	return s, nil
}

// Dir returns the directory images are written to.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save writes src under a timestamp-prefixed, sanitized version of
// originalName. It returns the stored name and the relative path recorded for
// the photo (urlPrefix/storedName).
func (s *ImageStore) Save(originalName string, src io.Reader) (string, string, error) {
	ext, ok := Extension(originalName)
	if !ok {
		return "", "", fmt.Errorf("extension %q not allowed", ext)
	}
	base := s.now().Format(TimestampLayout) + storedBase(originalName, ext)

	out, name, err := s.create(base)
	if err != nil {
		return "", "", err
	}
	defer out.Close()

	n, err := io.Copy(out, src)
	if err != nil {
		return "", "", fmt.Errorf("write image: %w", err)
	}

	logger.Log.Infow("image stored", "name", name, "bytes", n)

	return name, path.Join(s.urlPrefix, name), nil
}

// create opens base exclusively, appending -1, -2, ... before the extension
// when the name is taken.
func (s *ImageStore) create(base string) (*os.File, string, error) {
	stem, ext := base, ""
	if i := strings.LastIndex(base, "."); i > 0 {
		stem, ext = base[:i], base[i:]
	}

	name := base
	for i := 1; ; i++ {
		target, err := secureJoin(s.dir, name)
		if err != nil {
			return nil, "", err
		}
		f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, fs.ErrExist) || i > maxCollisionSuffix {
			return nil, "", fmt.Errorf("create image: %w", err)
		}
		name = stem + "-" + strconv.Itoa(i) + ext
	}
}

// Open opens a stored image for reading.
func (s *ImageStore) Open(name string) (*os.File, fs.FileInfo, error) {
	target, err := secureJoin(s.dir, name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	f, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, ErrNotFound
	}
	return f, info, nil
}

// Thumbnail returns a JPEG scaled to fit the configured bounding box. Results
// are cached by name.
func (s *ImageStore) Thumbnail(name string) ([]byte, error) {
	if cached, found := s.thumbs.Get(name); found {
		return cached.([]byte), nil
	}

	if ext, _ := Extension(name); ext == "webp" {
		return nil, ErrThumbnailUnsupported
	}

	f, _, err := s.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrThumbnailUnsupported, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > s.maxPixels/cfg.Height {
		logger.Log.Warnw("image too large for thumbnail", "name", name, "width", cfg.Width, "height", cfg.Height)
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrThumbnailUnsupported, cfg.Width, cfg.Height, s.maxPixels)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrThumbnailUnsupported, err)
	}

	thumb := resize.Thumbnail(s.thumbSize, s.thumbSize, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}

	s.thumbs.Set(name, buf.Bytes(), cache.DefaultExpiration)
	return buf.Bytes(), nil
}
