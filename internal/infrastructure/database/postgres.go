package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	appconfig "bell24h_negotiation/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var ErrEmptySecret = errors.New("database secret has no string value")

// Credentials is the JSON document stored in Secrets Manager for the database user.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type secretGetter interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// ConnectPostgres opens a gorm connection. Explicit DB_USERNAME/DB_PASSWORD win;
// otherwise credentials come from the DB_SECRET_ID secret.
func ConnectPostgres(ctx context.Context, cfg *appconfig.Config, logger *zap.Logger) (*gorm.DB, error) {
	username, password := cfg.DBUsername, cfg.DBPassword
	if username == "" || password == "" {
		awsCfg, err := NewAWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		creds, err := retrieveCredentials(ctx, secretsmanager.NewFromConfig(awsCfg), cfg.DBSecretID)
		if err != nil {
			return nil, err
		}
		username, password = creds.Username, creds.Password
		logger.Info("[database][postgres] credentials loaded from secrets manager", zap.String("secret_id", cfg.DBSecretID))
	}

	db, err := gorm.Open(postgres.Open(buildDSN(cfg, username, password)), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	logger.Info("[database][postgres] connected", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	return db, nil
}

func buildDSN(cfg *appconfig.Config, username, password string) string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d", cfg.DBHost, username, password, cfg.DBName, cfg.DBPort)
	if cfg.DBSSLModeDisabled {
		dsn += " sslmode=disable"
	}
	return dsn
}

func retrieveCredentials(ctx context.Context, sm secretGetter, secretID string) (Credentials, error) {
	out, err := sm.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("get secret %s: %w", secretID, err)
	}
	if out.SecretString == nil {
		return Credentials{}, ErrEmptySecret
	}

	var c Credentials
	if err := json.Unmarshal([]byte(*out.SecretString), &c); err != nil {
		return Credentials{}, fmt.Errorf("decode secret %s: %w", secretID, err)
	}
	return c, nil
}
