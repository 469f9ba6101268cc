package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"training-plan-server/config"
	"training-plan-server/internal/model"
	"training-plan-server/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectPutter : часть клиента S3, нужная архиву
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3PlanArchive : хранит сгенерированные планы как JSON-объекты
type S3PlanArchive struct {
	client ObjectPutter
	bucket string
}

func NewS3PlanArchive(client ObjectPutter, bucket string) *S3PlanArchive {
	return &S3PlanArchive{client: client, bucket: bucket}
}

// SetupS3PlanArchive : Local включает MinIO с path-style адресацией
func SetupS3PlanArchive(ctx context.Context, cfg *config.ArchiveConfig) (*S3PlanArchive, error) {
	var client *s3.Client

	if cfg.Local {
		client = s3.New(s3.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				"minioadmin",
				"minioadmin",
				"",
			),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})

		if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
			return nil, err
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3PlanArchive] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
		})
	}

	return NewS3PlanArchive(client, cfg.Bucket), nil
}

func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return nil
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return util.LogError("[S3PlanArchive] ошибка создания бакета", err)
	}

	slog.Info("[S3PlanArchive] бакет создан", "bucket", bucket)
	return nil
}

// SavePlan : ключ plans/{userId|anonymous}/{uuid}.json
func (a *S3PlanArchive) SavePlan(ctx context.Context, userID string, plan *model.TrainingPlanResponse) (string, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return "", util.LogError("[S3PlanArchive] ошибка сериализации плана", err)
	}

	owner := userID
	if owner == "" {
		owner = "anonymous"
	}
	key := fmt.Sprintf("plans/%s/%s.json", url.PathEscape(owner), uuid.NewString())

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", util.LogError("[S3PlanArchive] ошибка загрузки плана", err)
	}

	return key, nil
}
