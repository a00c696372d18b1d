package config

import (
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel slog.Level    `json:"LogLevel" yaml:"logLevel"`
	Listen   string        `json:"Listen" yaml:"listen" validate:"required"`
	Site     SiteConfig    `json:"Site" yaml:"site" validate:"required"`
	Content  ContentConfig `json:"Content" yaml:"content" validate:"required"`
	Admin    AdminConfig   `json:"Admin" yaml:"admin" validate:"required"`
	Uploads  UploadsConfig `json:"Uploads" yaml:"uploads" validate:"required"`
	Mail     *MailConfig   `json:"Mail" yaml:"mail"`
	Audit    AuditConfig   `json:"Audit" yaml:"audit"`
}

type SiteConfig struct {
	Name         string `json:"Name" yaml:"name" validate:"required"`
	Author       string `json:"Author" yaml:"author" validate:"required"`
	Description  string `json:"Description" yaml:"description"`
	BaseURL      string `json:"BaseURL" yaml:"baseURL" validate:"required,url"`
	PostsPerPage int    `json:"PostsPerPage" yaml:"postsPerPage" validate:"required,min=1"`
}

type ContentConfig struct {
	PostsDir    string `json:"PostsDir" yaml:"postsDir" validate:"required,filepath"`
	ProjectsDir string `json:"ProjectsDir" yaml:"projectsDir" validate:"required,filepath"`
	ResumePath  string `json:"ResumePath" yaml:"resumePath" validate:"required,filepath"`
}

type AdminConfig struct {
	Password string `json:"Password" yaml:"password" validate:"required"`
	Secret   string `json:"Secret" yaml:"secret" validate:"required,min=16"`
	Salt     string `json:"Salt" yaml:"salt" validate:"required"`
}

type UploadsConfig struct {
	Dir        string       `json:"Dir" yaml:"dir" validate:"required,filepath"`
	PublicBase string       `json:"PublicBase" yaml:"publicBase" validate:"required"`
	Mirror     MirrorConfig `json:"Mirror" yaml:"mirror"`
}

type MirrorConfig struct {
	Type string   `json:"Type" yaml:"type" validate:"omitempty,oneof=none b2 s3"`
	B2   B2Config `json:"B2" yaml:"b2"`
	S3   S3Config `json:"S3" yaml:"s3"`
}

type B2Config struct {
	BucketName     string `json:"BucketName" yaml:"bucketName"`
	Prefix         string `json:"Prefix" yaml:"prefix"`
	KeyID          string `json:"KeyID" yaml:"keyID"`
	ApplicationKey string `json:"ApplicationKey" yaml:"applicationKey"`
}

type S3Config struct {
	Bucket          string `json:"Bucket" yaml:"bucket"`
	Region          string `json:"Region" yaml:"region"`
	Endpoint        string `json:"Endpoint" yaml:"endpoint"`
	AccessKeyID     string `json:"AccessKeyID" yaml:"accessKeyID"`
	SecretAccessKey string `json:"SecretAccessKey" yaml:"secretAccessKey"`
	Prefix          string `json:"Prefix" yaml:"prefix"`
}

type MailConfig struct {
	Host           string `json:"Host" yaml:"host" validate:"required"`
	PublicName     string `json:"PublicName" yaml:"publicName" validate:"required"`
	Address        string `json:"Address" yaml:"address" validate:"required,email"`
	Username       string `json:"Username" yaml:"username" validate:"required"`
	Password       string `json:"Password" yaml:"password" validate:"required"`
	ContactAddress string `json:"ContactAddress" yaml:"contactAddress" validate:"required,email"`
}

type AuditConfig struct {
	Schedule string `json:"Schedule" yaml:"schedule"`
}

func LoadConfig(path string, config *Config) error {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	expandedFileBytes := []byte(os.ExpandEnv(string(fileBytes)))

	if err = yaml.Unmarshal(expandedFileBytes, config); err != nil {
		return err
	}

	return nil
}

func InitConfig(path string) (*Config, error) {
	config := &Config{}
	if err := LoadConfig(path, config); err != nil {
		return nil, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}
