package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/luconnect/luconnect/internal/common"
	"github.com/luconnect/luconnect/internal/logging"
	sc "github.com/luconnect/luconnect/internal/server/config"
	"github.com/luconnect/luconnect/internal/server/models"
	"github.com/luconnect/luconnect/internal/server/repositories/repomanager"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// PresignExpiry is how long image upload and download URLs stay valid.
const PresignExpiry = 15 * time.Minute

type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	log         logging.Logger
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config, log logging.Logger) *ProductService {
	return &ProductService{db: db, repomanager: m, config: config, log: log}
}

func (s *ProductService) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	p.Description = common.Truncate(strings.TrimSpace(p.Description), common.MaxFieldLength)
	p.Section = common.TruncatePtr(p.Section, common.MaxFieldLength)
	p.Barcode = common.TruncatePtr(p.Barcode, 64)

	if err := validateStruct(p); err != nil {
		return nil, err
	}

	created, err := s.repomanager.Products(s.db).Create(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	s.log.Info(ctx, "product created", "id", created.ID)
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	return s.repomanager.Products(s.db).GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	if filter.Offset < 0 || filter.Limit < 0 {
		return nil, fmt.Errorf("%w: offset and limit must not be negative", common.ErrorValidation)
	}
	return s.repomanager.Products(s.db).List(ctx, filter)
}

func (s *ProductService) Update(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error) {
	upd.Description = common.TruncatePtr(upd.Description, common.MaxFieldLength)
	upd.Section = common.TruncatePtr(upd.Section, common.MaxFieldLength)
	upd.Barcode = common.TruncatePtr(upd.Barcode, 64)

	if err := validateStruct(upd); err != nil {
		return nil, err
	}

	p, err := s.repomanager.Products(s.db).Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("error updating product %d: %w", id, err)
	}

	s.log.Info(ctx, "product updated", "id", id)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Products(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting product %d: %w", id, err)
	}
	s.log.Info(ctx, "product deleted", "id", id)
	return nil
}

// ImageUploadURL reserves a storage key for a new product image, records it
// on the product and returns a presigned PUT URL for the upload.
func (s *ProductService) ImageUploadURL(ctx context.Context, productID int64) (string, string, error) {
	repo := s.repomanager.Products(s.db)

	if _, err := repo.GetByID(ctx, productID); err != nil {
		return "", "", err
	}

	key, url, err := s.GetPresignedPutUrl(ctx, productID)
	if err != nil {
		return "", "", fmt.Errorf("error presigning upload: %w", err)
	}

	if err := repo.AppendImage(ctx, productID, key); err != nil {
		return "", "", fmt.Errorf("error recording image: %w", err)
	}

	s.log.Info(ctx, "product image reserved", "id", productID, "key", key)
	return key, url, nil
}

// ImageURLs returns presigned GET URLs for every image of a product, in the
// order they were added.
func (s *ProductService) ImageURLs(ctx context.Context, productID int64) ([]string, error) {
	p, err := s.repomanager.Products(s.db).GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(p.Images))
	for _, key := range p.Images {
		url, err := s.GetPresignedGetUrl(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("error presigning download: %w", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func GetRandomStorageKey(productID int64) string {
	d := time.Now().UTC()
	return fmt.Sprintf("products/%d/%d/%02d/%02d/%v", productID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ProductService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (s *ProductService) GetPresignedPutUrl(ctx context.Context, productID int64) (string, string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey(productID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

func (s *ProductService) GetPresignedGetUrl(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
