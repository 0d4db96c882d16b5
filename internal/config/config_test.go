package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected default storage driver memory, got %s", cfg.StorageDriver)
	}
	if cfg.SessionDriver != SessionMemory {
		t.Fatalf("expected default session driver memory, got %s", cfg.SessionDriver)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default session ttl 24h, got %s", cfg.SessionTTL)
	}
	if !cfg.IsDev() {
		t.Fatalf("expected dev mode for APP_ENV=dev")
	}
}

func TestLoad_MongoRequiresURI(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", StorageMongo)
	t.Setenv("MONGO_URI", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORAGE_DRIVER=mongo without MONGO_URI")
	}
}

func TestLoad_RedisRequiresAddr(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SESSION_DRIVER", SessionRedis)
	t.Setenv("REDIS_ADDR", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SESSION_DRIVER=redis without REDIS_ADDR")
	}
}

func TestLoad_ProdRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without JWT_SECRET")
	}
}

func TestLoad_InvalidStorageDriver(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "cassandra")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}
