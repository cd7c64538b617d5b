package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/logging"
)

// MaxSize is the largest document accepted, in bytes.
const MaxSize = 10 << 20

const providerS3 = "s3"

var allowedExt = map[string]bool{".txt": true, ".md": true}

// Document is a loaded text document.
type Document struct {
	Name string
	Size int64
	Text string
}

// S3Config holds object storage settings. Empty credentials fall back to the
// default AWS credential chain.
type S3Config struct {
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

type objectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newObjectGetter = func(cfg aws.Config, optFns ...func(*s3.Options)) objectGetter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// Loader reads documents from disk or S3.
type Loader struct {
	s3cfg S3Config
	log   logging.Logger
}

func NewLoader(s3cfg S3Config, log logging.Logger) *Loader {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Loader{s3cfg: s3cfg, log: log}
}

// Load reads source and returns its text.
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, common.NewValidationError("document", "")
	}

	if strings.HasPrefix(source, "s3://") {
		return l.loadS3(ctx, source)
	}
	return l.loadFile(source)
}

func checkExt(name string) error {
	if !allowedExt[strings.ToLower(path.Ext(name))] {
		return common.NewValidationError("document", "only .txt and .md files are supported")
	}
	return nil
}

func decode(name string, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) > MaxSize {
		return nil, common.NewValidationError("document", "file is larger than 10 MB")
	}
	if !utf8.Valid(data) {
		return nil, common.NewValidationError("document", "file is not UTF-8 text")
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, common.NewValidationError("document", "file is empty")
	}
	return &Document{Name: name, Size: int64(len(data)), Text: string(data)}, nil
}

func (l *Loader) loadFile(p string) (*Document, error) {
	if err := checkExt(p); err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &common.NotFoundError{Kind: "document", ID: p}
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	return decode(filepath.Base(p), f)
}

func parseS3URI(source string) (bucket, key string, err error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", "", common.NewValidationError("document", "invalid s3 uri")
	}
	bucket, key = u.Host, strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", common.NewValidationError("document", "s3 uri must be s3://bucket/key")
	}
	return bucket, key, nil
}

func (l *Loader) s3Client(ctx context.Context) (objectGetter, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(l.s3cfg.Region)}
	if l.s3cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(l.s3cfg.AccessKey, l.s3cfg.SecretKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return newObjectGetter(cfg, func(o *s3.Options) {
		if l.s3cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(l.s3cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (l *Loader) loadS3(ctx context.Context, source string) (*Document, error) {
	bucket, key, err := parseS3URI(source)
	if err != nil {
		return nil, err
	}
	if err := checkExt(key); err != nil {
		return nil, err
	}

	client, err := l.s3Client(ctx)
	if err != nil {
		return nil, &common.RemoteError{Provider: providerS3, Err: err}
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, &common.NotFoundError{Kind: "document", ID: source}
		}
		l.log.Error(ctx, "s3 get object failed", "bucket", bucket, "key", key, "error", err)
		return nil, &common.RemoteError{Provider: providerS3, Err: err}
	}
	defer out.Body.Close()

	return decode(path.Base(key), out.Body)
}
