package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("Database.Driver = %q, want sqlite", cfg.Database.Driver)
	}

	if cfg.Redis.Port <= 0 {
		t.Error("Expected positive Redis port")
	}

	if cfg.MySQL.Port <= 0 {
		t.Error("Expected positive MySQL port")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg == nil {
		t.Fatal("Expected default config, got nil")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("TEST_DB_DRIVER", "memory")
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  driver: ${TEST_DB_DRIVER}
rate_limit:
  enabled: true
  requests: 5
  window: 30s
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Driver != DriverMemory {
		t.Errorf("Database.Driver = %q, want memory", cfg.Database.Driver)
	}
	if cfg.RateLimit.Window != 30*time.Second || cfg.RateLimit.Requests != 5 {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want default 8080", cfg.Server.Port)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("database:\n  driver: oracle\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for unsupported driver, got nil")
	}
}

func TestSave(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Driver = DriverMySQL
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	err := cfg.Save(configPath)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// ファイルが存在することを確認
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// 読み込んで確認
	loadedCfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loadedCfg.Database.Driver != DriverMySQL || loadedCfg.Server.ReadTimeout != cfg.Server.ReadTimeout {
		t.Error("Loaded config does not match saved config")
	}
}

func TestSave_InvalidPath(t *testing.T) {
	cfg := DefaultConfig()
	// 親がディレクトリではなくファイル
	parent := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(parent, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	err := cfg.Save(filepath.Join(parent, "config.yaml"))
	if err == nil {
		t.Error("Expected error for invalid path, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	// 無効なYAMLファイルを作成
	err := os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
	if err != nil {
		t.Fatalf("Failed to create invalid YAML file: %v", err)
	}

	// 無効なYAMLの場合はエラーを返すことを確認
	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/tmp/custom.yaml")
	if got := DefaultPath(); got != "/tmp/custom.yaml" {
		t.Errorf("DefaultPath() = %q, want /tmp/custom.yaml", got)
	}
}

func TestMySQLConfig_DSN(t *testing.T) {
	c := MySQLConfig{Host: "db", Port: 3306, User: "u", Password: "p", Database: "construction"}
	want := "u:p@tcp(db:3306)/construction?charset=utf8mb4&parseTime=true&loc=UTC"
	if got := c.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestValidate_TrustedProxies(t *testing.T) {
	tests := []struct {
		name    string
		proxies []string
		wantErr bool
	}{
		{name: "正常系: 未設定", proxies: nil},
		{name: "正常系: IPとCIDR", proxies: []string{"10.0.0.0/8", "192.0.2.50", "::1"}},
		{name: "異常系: 不正なアドレス", proxies: []string{"proxy.local"}, wantErr: true},
		{name: "異常系: 不正なCIDR", proxies: []string{"10.0.0.0/40"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.RateLimit.TrustedProxies = tt.proxies
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
