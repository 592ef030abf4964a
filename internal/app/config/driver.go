package config

import "time"

type (
	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		Logger     Logger
		RabbitMQ   RabbitMQ
		Minio      Minio
	}
	PostgresDB struct {
		Host                   string
		Port                   string
		Username               string
		Password               string
		DBName                 string
		SSLMode                string
		MaxOpenConns           int
		MaxIdleConns           int
		ConnMaxLifetimeMinutes int
	}
	Redis struct {
		Host        string
		Port        string
		Password    string
		DB          int
		PoolSize    int
		DialTimeout time.Duration
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
